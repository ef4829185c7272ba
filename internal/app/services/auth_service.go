package services

import (
	"context"
	"strings"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/auth"
	"github.com/cariesreview/catalog/internal/pkg/logger"
)

// EditorDirectory looks up editor accounts by username.
type EditorDirectory interface {
	Editor(username string) (models.Editor, bool)
}

// TokenIssuer signs access tokens for editors.
type TokenIssuer interface {
	GenerateToken(editor models.Editor) (string, int, error)
}

// AuthService handles editor authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	editors EditorDirectory
	tokens  TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(editors EditorDirectory, tokens TokenIssuer) AuthService {
	return &authServiceImpl{editors: editors, tokens: tokens}
}

// Login checks the credentials against the configured editors and issues an
// access token. Unknown usernames and wrong passwords fail the same way.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	editor, ok := s.editors.Editor(username)
	if !ok || !auth.CheckPassword(editor.PasswordHash, req.Password) {
		logger.Ctx(ctx).Warn().Str("username", username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokens.GenerateToken(editor)
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info().Str("username", editor.Username).Str("role", string(editor.Role)).Msg("Editor logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
		Editor:      dto.FromEditor(&editor),
	}, nil
}
