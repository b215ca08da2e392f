package usecase

import (
	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/services/auth"
)

// AuthUC implements the authentication usecase interface
type AuthUC struct {
	repo   auth.AuthRepo
	tokens *jwtpkg.TokenService
	cfg    *models.Config
}

// NewAuthUC creates a new authentication usecase instance
func NewAuthUC(repo auth.AuthRepo, tokens *jwtpkg.TokenService, cfg *models.Config) *AuthUC {
	return &AuthUC{
		repo:   repo,
		tokens: tokens,
		cfg:    cfg,
	}
}
