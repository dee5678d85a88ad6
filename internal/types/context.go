package types

type contextKey string

// UserIDKey carries the authenticated caller's user id in the request context.
const UserIDKey contextKey = "user_id"
