package contextkeys

// Custom type avoids collisions with other packages' context keys.
type contextKey string

const (
	// UsernameKey holds the authenticated username in the gin context.
	UsernameKey = contextKey("username")
	// RequestIDKey holds the per-request correlation id.
	RequestIDKey = contextKey("request_id")
)
