package dto

// RegisterRequest registers a student or, when Subjects is set, a professor
type RegisterRequest struct {
	Name           string  `json:"name" binding:"required" example:"Ivana"`
	Surname        string  `json:"surname" binding:"required" example:"Horvat"`
	Email          string  `json:"email" binding:"required,email" example:"ivana.horvat@fer.hr"`
	Password       string  `json:"password" binding:"required,min=8" example:"tajna1234"`
	ProfilePicture string  `json:"profilePicture" binding:"required" example:"https://cdn.example.com/ivana.png"`
	Subjects       *string `json:"subjects,omitempty" example:"algebra,physics"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ivana.horvat@fer.hr"`
	Password string `json:"password" binding:"required" example:"tajna1234"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}

// LoginResponse is returned by POST /api/login
type LoginResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message" example:"Login successful."`
	Token   TokenResponse `json:"token"`
}
