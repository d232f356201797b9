package repository

type CreateUserOptions struct {
	Username    string
	TokenHash   string
	Groups      []int
	Description string
}
