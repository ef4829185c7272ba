package dto

import "github.com/cariesreview/catalog/internal/app/models"

// LoginRequest represents editor credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// EditorResponse describes the authenticated editor
type EditorResponse struct {
	Username string            `json:"username" example:"mtremblay"`
	Name     string            `json:"name" example:"Dr. M. Tremblay"`
	Role     models.EditorRole `json:"role" example:"verifier" enums:"extractor,verifier"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type" example:"Bearer"`
	ExpiresIn   int64          `json:"expires_in" example:"28800"`
	Editor      EditorResponse `json:"editor"`
}

// FromEditor converts a configured editor to its public view.
func FromEditor(e *models.Editor) EditorResponse {
	return EditorResponse{Username: e.Username, Name: e.DisplayName(), Role: e.Role}
}
