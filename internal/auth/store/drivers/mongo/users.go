package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const userCollection = "users"

type usersRepo struct {
	db *mongo.Database
}

// userDoc is the persisted shape. IDs are the app-generated ULIDs, not
// ObjectIDs, so lookups by id hit _id directly.
type userDoc struct {
	ID               string     `bson:"_id"`
	Username         string     `bson:"username"`
	PasswordHash     string     `bson:"password_hash"`
	Role             string     `bson:"role"`
	TOTPSecret       *string    `bson:"totp_secret,omitempty"`
	TwoFactorEnabled bool       `bson:"two_factor_enabled"`
	LastLogin        *time.Time `bson:"last_login,omitempty"`
	CreatedAt        time.Time  `bson:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at"`
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.M) (domain.User, error) {
	var doc userDoc
	err := r.db.Collection(userCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, err
	}
	return mapUser(doc), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.Collection(userCollection).InsertOne(ctx, userDoc{
		ID:               u.ID,
		Username:         u.Username,
		PasswordHash:     u.PasswordHash,
		Role:             string(u.Role),
		TOTPSecret:       u.TOTPSecret,
		TwoFactorEnabled: u.TwoFactorEnabled,
		LastLogin:        u.LastLogin,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) ListUsers(ctx context.Context, f domain.UserFilter) (domain.UserPage, error) {
	filter := bson.M{}
	if f.Search != "" {
		filter["username"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}
	if f.Role != "" {
		filter["role"] = string(f.Role)
	}

	coll := r.db.Collection(userCollection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return domain.UserPage{}, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return domain.UserPage{}, err
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0, f.Limit)
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return domain.UserPage{}, err
		}
		users = append(users, mapUser(doc))
	}
	if err := cursor.Err(); err != nil {
		return domain.UserPage{}, err
	}

	return domain.UserPage{Users: users, Total: total}, nil
}

func (r *usersRepo) UpdateUsername(ctx context.Context, userID, username string) error {
	err := r.updateOne(ctx, userID, bson.M{"$set": bson.M{"username": username}})
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return r.updateOne(ctx, userID, bson.M{"$set": bson.M{"password_hash": newHash}})
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	return r.updateOne(ctx, userID, bson.M{"$set": bson.M{"role": string(role)}})
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	return r.updateOne(ctx, userID, bson.M{"$set": bson.M{"last_login": at}})
}

func (r *usersRepo) UpdateTOTPSecret(ctx context.Context, userID, secret string) error {
	return r.updateOne(ctx, userID, bson.M{"$set": bson.M{"totp_secret": secret}})
}

func (r *usersRepo) EnableTwoFactor(ctx context.Context, userID string) error {
	return r.updateOne(ctx, userID, bson.M{"$set": bson.M{"two_factor_enabled": true}})
}

func (r *usersRepo) DisableTwoFactor(ctx context.Context, userID string) error {
	return r.updateOne(ctx, userID, bson.M{
		"$set":   bson.M{"two_factor_enabled": false},
		"$unset": bson.M{"totp_secret": ""},
	})
}

func (r *usersRepo) ClearTOTPSecret(ctx context.Context, userID string) error {
	return r.updateOne(ctx, userID, bson.M{"$unset": bson.M{"totp_secret": ""}})
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	result, err := r.db.Collection(userCollection).DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) updateOne(ctx context.Context, userID string, update bson.M) error {
	set, ok := update["$set"].(bson.M)
	if !ok {
		set = bson.M{}
		update["$set"] = set
	}
	set["updated_at"] = time.Now().UTC()

	result, err := r.db.Collection(userCollection).UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapUser(doc userDoc) domain.User {
	return domain.User{
		ID:               doc.ID,
		Username:         doc.Username,
		PasswordHash:     doc.PasswordHash,
		Role:             domain.Role(doc.Role),
		TOTPSecret:       doc.TOTPSecret,
		TwoFactorEnabled: doc.TwoFactorEnabled,
		LastLogin:        doc.LastLogin,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}
