package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// Resolve dispatches on the token role and loads the matching identity
// record. The id is a stable internal key but the email is the
// human-meaningful subject; requiring both to match prevents a reused id
// from impersonating a different account after an email change.
func (uc *AuthUC) Resolve(ctx context.Context, claims *jwtpkg.Claims) (*models.Principal, error) {
	switch claims.Role {
	case models.RoleUser:
		customer, err := uc.repo.GetCustomerByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %d", apperrors.ErrUnknownIdentity, claims.UserID)
			}
			return nil, fmt.Errorf("failed to load customer %d: %w", claims.UserID, err)
		}
		if customer.Email != claims.Subject {
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrIdentityMismatch, claims.UserID)
		}
		return models.NewCustomerPrincipal(customer), nil

	case models.RoleShop:
		shop, err := uc.repo.GetShopByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: shop %d", apperrors.ErrUnknownIdentity, claims.UserID)
			}
			return nil, fmt.Errorf("failed to load shop %d: %w", claims.UserID, err)
		}
		if shop.Email != claims.Subject {
			return nil, fmt.Errorf("%w: shop %d", apperrors.ErrIdentityMismatch, claims.UserID)
		}
		return models.NewShopPrincipal(shop), nil

	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownRole, claims.Role)
	}
}
