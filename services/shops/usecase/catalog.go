package usecase

import (
	"context"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// ListCatalog returns the offered services of a shop
func (uc *ShopUC) ListCatalog(ctx context.Context, shopID int) ([]models.ShopServiceItem, error) {
	return uc.shopRepo.ListCatalog(ctx, shopID)
}

// AddCatalogItem adds a service to the caller's own catalog
func (uc *ShopUC) AddCatalogItem(ctx context.Context, principal *models.Principal, item models.ShopServiceItem) (*models.ShopServiceItem, error) {
	if !principal.IsShop() {
		return nil, fmt.Errorf("%w: only shops manage their catalog", apperrors.ErrForbidden)
	}
	if item.Name == "" {
		return nil, apperrors.NewValidationError("name", "required")
	}

	item.ShopID = principal.ID()
	if err := uc.shopRepo.CreateCatalogItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to create catalog item: %w", err)
	}

	return &item, nil
}

// UpdateCatalogItem updates a service the caller's shop owns. The caller
// supplies the version it last read; a moved version surfaces a conflict.
func (uc *ShopUC) UpdateCatalogItem(ctx context.Context, principal *models.Principal, item models.ShopServiceItem) (*models.ShopServiceItem, error) {
	if !principal.IsShop() {
		return nil, fmt.Errorf("%w: only shops manage their catalog", apperrors.ErrForbidden)
	}

	existing, err := uc.shopRepo.GetCatalogItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if existing.ShopID != principal.ID() {
		return nil, fmt.Errorf("%w: catalog item belongs to another shop", apperrors.ErrForbidden)
	}

	item.ShopID = principal.ID()
	if err := uc.shopRepo.UpdateCatalogItem(ctx, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// DeleteCatalogItem removes a service the caller's shop owns
func (uc *ShopUC) DeleteCatalogItem(ctx context.Context, principal *models.Principal, itemID int) error {
	if !principal.IsShop() {
		return fmt.Errorf("%w: only shops manage their catalog", apperrors.ErrForbidden)
	}
	return uc.shopRepo.DeleteCatalogItem(ctx, itemID, principal.ID())
}
