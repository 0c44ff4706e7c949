package models

import "time"

// Role is the portal role of a [User].
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleNurse         Role = "Nurse"
	RoleSupervisor    Role = "Supervisor"
	RoleParticipant   Role = "Participant"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleNurse, RoleSupervisor, RoleParticipant:
		return true
	}
	return false
}

// User represents an account that may sign in to the portal.
// Only administrators are allowed to change the study schema.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Password holds the plaintext password on login requests and the bcrypt
	// hash at the persistence layer. It is never written to responses.
	Password string `json:"password,omitempty"`

	// Role decides which parts of the portal the user may access.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
