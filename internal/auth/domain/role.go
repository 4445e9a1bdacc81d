package domain

// Role is a closed two-valued enum. Keeping it typed rather than a free
// string lets role checks stay exhaustive.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
