package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// AddFavorite bookmarks a shop for the calling customer
func (uc *ShopUC) AddFavorite(ctx context.Context, principal *models.Principal, shopID int) (*models.Favorite, error) {
	if !principal.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers keep favorites", apperrors.ErrForbidden)
	}

	// Confirm the shop exists before linking to it
	if _, err := uc.shopRepo.GetShopByID(ctx, shopID); err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		CustomerID: principal.ID(),
		ShopID:     shopID,
		CreatedAt:  time.Now(),
	}
	if err := uc.shopRepo.AddFavorite(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return favorite, nil
}

// ListFavorites returns the calling customer's bookmarked shops
func (uc *ShopUC) ListFavorites(ctx context.Context, principal *models.Principal) ([]models.TireShop, error) {
	if !principal.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers keep favorites", apperrors.ErrForbidden)
	}
	return uc.shopRepo.ListFavoriteShops(ctx, principal.ID())
}

// RemoveFavorite removes a bookmark of the calling customer
func (uc *ShopUC) RemoveFavorite(ctx context.Context, principal *models.Principal, shopID int) error {
	if !principal.IsCustomer() {
		return fmt.Errorf("%w: only customers keep favorites", apperrors.ErrForbidden)
	}
	return uc.shopRepo.RemoveFavorite(ctx, principal.ID(), shopID)
}
