package model

// Scope carries the authenticated caller's identity and access-control groups.
// It is attached to the request context by the auth middleware.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Groups   []int  `json:"groups"`
}
