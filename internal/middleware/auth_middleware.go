package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/cariesreview/catalog/internal/app/auth"
	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/auth"
)

const editorKey = "editor"

// TokenValidator checks access tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// JWTAuth requires a valid "Bearer <token>" Authorization header and stores
// the editor it was issued to in the context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(editorKey, claims.Editor())
		c.Next()
	}
}

// RoleRequired aborts with 403 unless the authenticated editor's role grants
// perm. It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(perm appauth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		editor, ok := CurrentEditor(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Editor not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := appauth.Authorize(editor, perm); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Next()
	}
}

// CurrentEditor returns the editor stored by JWTAuth.
func CurrentEditor(c *gin.Context) (models.Editor, bool) {
	v, exists := c.Get(editorKey)
	if !exists {
		return models.Editor{}, false
	}
	editor, ok := v.(models.Editor)
	return editor, ok
}
