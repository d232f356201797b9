package paginator

const (
	// DefaultPage is used when an invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is used when an invalid limit is provided.
	DefaultLimit = 50
	// MaxLimit caps the items per page to prevent excessive queries.
	MaxLimit = 200
)
