package authentication

type LoginInput struct {
	Username string
	Token    string
}

type LoginOutput struct {
	// AccessToken is the signed session JWT carrying the user's groups.
	AccessToken string
	ExpiresIn   int64 // seconds
	UserID      string
	Username    string
	Groups      []int
}
