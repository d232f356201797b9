package model

import "time"

// User is a registered report viewer.
// TokenHash is the bcrypt hash of the opaque user token; the plain token is
// never stored.
type User struct {
	ID          string
	Username    string
	TokenHash   string
	Groups      []int
	Description string
	CreatedAt   time.Time
}
