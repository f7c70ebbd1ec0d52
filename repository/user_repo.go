package repository

import "poimap/models"

// UserRepository defines the credential store surface. Implementations report
// duplicate usernames as errs.ErrConflict, relying on the storage layer's
// uniqueness constraint rather than application-level locking.
type UserRepository interface {
	// CreateUser inserts a user and fills in its assigned ID.
	CreateUser(user *models.User) error
	// GetUserByUsername returns (nil, nil) when no such user exists.
	GetUserByUsername(username string) (*models.User, error)
	ListUsers() ([]models.User, error)
	// DeleteUser removes a user and all POIs it owns as one logical unit.
	// Returns errs.ErrNotFound when the user does not exist.
	DeleteUser(id int64) error
	// HasAdmin reports whether any admin-role user exists.
	HasAdmin() (bool, error)
}
