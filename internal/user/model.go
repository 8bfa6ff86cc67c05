package user

import "time"

// Roles recognized by the authorization stage. New registrations default to
// RoleUser; only RoleAdmin passes the admin gate.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a directory record keyed by unique email. The email is immutable
// after creation; the role is mutable by admins.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
