package models

// User represents the authenticated dashboard user
type User struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// LoginForm represents the credentials submitted to the login endpoint
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the outcome of a login attempt. Error is shown to the user verbatim.
type LoginResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	User    *User  `json:"user,omitempty"`
}
