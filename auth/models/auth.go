package models

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// User is an active row of the API_USERS table, minus the password hash
// once verification is done.
type User struct {
	UserID        string
	Username      string
	PasswordHash  []byte
	Role          string
	CarrierAccess string
	IsActive      bool
}
