package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between the platform's account kinds
type Role string

// Define constants for roles
const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleTrainer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Principal is the authenticated caller as handed over by the identity boundary.
// The service trusts both fields completely.
type Principal struct {
	ID   primitive.ObjectID
	Role Role
}

func (p Principal) IsTrainer() bool {
	return p.Role == RoleTrainer
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
