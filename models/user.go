package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Username  string    `json:"username" bson:"username" db:"username"`
	Password  string    `json:"password,omitempty" bson:"password" db:"password_hash"`
	Role      string    `json:"role" bson:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
