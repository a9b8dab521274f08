package handler

// Swagger type definitions for API documentation.

// GoogleLoginRequest represents the Google sign-in request body.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required" example:"eyJhbGciOiJSUzI1NiIsImtpZCI6..."`
}

// MeResponse represents the current identity response.
type MeResponse struct {
	Email      string `json:"email" example:"organizer@hackfest.dev"`
	Name       string `json:"name" example:"Organizer"`
	Authorized bool   `json:"authorized" example:"true"`
}

// ContactRequest represents the contact form request body.
type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Ada"`
	Email   string `json:"email" binding:"required,email" example:"ada@example.com"`
	Message string `json:"message" binding:"required" example:"How do I register my team?"`
}
