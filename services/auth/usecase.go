package auth

import (
	"context"

	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tyrehub/tyrehub/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	LoginCustomer(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error)
	RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (*models.AuthResponse, error)
	LoginShop(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error)
	RegisterShop(ctx context.Context, req models.RegisterShopRequest) (*models.AuthResponse, error)

	// Resolve turns verified claims into a typed principal
	Resolve(ctx context.Context, claims *jwtpkg.Claims) (*models.Principal, error)
}
