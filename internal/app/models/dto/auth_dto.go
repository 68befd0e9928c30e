package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication. RedirectURL is a
// hint for the frontend based on the role.
type LoginResponse struct {
	Token       string `json:"token"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	RedirectURL string `json:"redirectUrl"`
}
