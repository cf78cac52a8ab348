package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
	UserCtxName  = "user"
)

// Defaults applied when a token omits the claim.
const (
	DefaultRole = "VIEWER"
	AllCarriers = "ALL"
)

// UserContext is the authenticated caller extracted from a verified JWT.
// Role and Carrier are opaque strings forwarded to the warehouse session
// context; this layer never interprets them.
type UserContext struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Carrier  string `json:"carrier_access"`
}
