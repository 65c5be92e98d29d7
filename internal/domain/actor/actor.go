package actor

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

// Actor identifies who performs an operation. It is passed explicitly into
// every audited operation instead of being read from ambient session state.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

// System is the fallback actor for operations with no authenticated user.
var System = Actor{Email: "System"}

func (a Actor) IsZero() bool {
	return a.ID == uuid.Nil && a.Email == ""
}
