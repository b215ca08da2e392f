package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

const shopColumns = `id, shop_name, email, password, phone, address,
	latitude, longitude, opening_hour, closing_hour, created_at, version`

// GetAllShops returns every shop record
func (r *ShopRepo) GetAllShops(ctx context.Context) ([]models.TireShop, error) {
	query := fmt.Sprintf(`SELECT %s FROM tire_shops ORDER BY id`, shopColumns)

	var shops []models.TireShop
	if err := r.db.SelectContext(ctx, &shops, query); err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	return shops, nil
}

// GetShopByID returns a single shop record
func (r *ShopRepo) GetShopByID(ctx context.Context, id int) (*models.TireShop, error) {
	query := fmt.Sprintf(`SELECT %s FROM tire_shops WHERE id = $1`, shopColumns)

	var shop models.TireShop
	if err := r.db.GetContext(ctx, &shop, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: shop", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

// GetShopsByIDs returns the shop records for the given ids
func (r *ShopRepo) GetShopsByIDs(ctx context.Context, ids []int) ([]models.TireShop, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT %s FROM tire_shops WHERE id IN (?)`, shopColumns), ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build shop query: %w", err)
	}
	query = r.db.Rebind(query)

	var shops []models.TireShop
	if err := r.db.SelectContext(ctx, &shops, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list shops by ids: %w", err)
	}

	return shops, nil
}

// ListCatalog returns the service catalog of one shop
func (r *ShopRepo) ListCatalog(ctx context.Context, shopID int) ([]models.ShopServiceItem, error) {
	query := `
		SELECT id, shop_id, name, description, price, version
		FROM shop_services
		WHERE shop_id = $1
		ORDER BY id
	`

	var items []models.ShopServiceItem
	if err := r.db.SelectContext(ctx, &items, query, shopID); err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	return items, nil
}

// GetCatalogItem returns one catalog entry
func (r *ShopRepo) GetCatalogItem(ctx context.Context, id int) (*models.ShopServiceItem, error) {
	query := `
		SELECT id, shop_id, name, description, price, version
		FROM shop_services
		WHERE id = $1
	`

	var item models.ShopServiceItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: catalog item", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}

	return &item, nil
}

// CreateCatalogItem inserts a new catalog entry
func (r *ShopRepo) CreateCatalogItem(ctx context.Context, item *models.ShopServiceItem) error {
	query := `
		INSERT INTO shop_services (shop_id, name, description, price, version)
		VALUES ($1, $2, $3, $4, 1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.ShopID, item.Name, item.Description, item.Price,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert catalog item: %w", err)
	}

	item.Version = 1
	return nil
}

// UpdateCatalogItem updates a catalog entry with an optimistic version
// check; a moved version surfaces a conflict.
func (r *ShopRepo) UpdateCatalogItem(ctx context.Context, item *models.ShopServiceItem) error {
	query := `
		UPDATE shop_services
		SET name = $1, description = $2, price = $3, version = version + 1
		WHERE id = $4 AND shop_id = $5 AND version = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.Price,
		item.ID, item.ShopID, item.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update catalog item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: catalog item %d", apperrors.ErrConflict, item.ID)
	}

	item.Version++
	return nil
}

// DeleteCatalogItem removes a catalog entry owned by the given shop
func (r *ShopRepo) DeleteCatalogItem(ctx context.Context, id, shopID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM shop_services WHERE id = $1 AND shop_id = $2`, id, shopID)
	if err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: catalog item", apperrors.ErrNotFound)
	}

	return nil
}

// AddFavorite bookmarks a shop for a customer; duplicates are idempotent
func (r *ShopRepo) AddFavorite(ctx context.Context, favorite *models.Favorite) error {
	query := `
		INSERT INTO favorites (customer_id, shop_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, shop_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		favorite.CustomerID, favorite.ShopID, favorite.CreatedAt,
	).Scan(&favorite.ID)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	return nil
}

// ListFavoriteShops returns the shops a customer has bookmarked
func (r *ShopRepo) ListFavoriteShops(ctx context.Context, customerID int) ([]models.TireShop, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tire_shops s
		JOIN favorites f ON f.shop_id = s.id
		WHERE f.customer_id = $1
		ORDER BY f.created_at DESC
	`, prefixedShopColumns("s"))

	var shops []models.TireShop
	if err := r.db.SelectContext(ctx, &shops, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list favorite shops: %w", err)
	}

	return shops, nil
}

// RemoveFavorite removes a customer's bookmark
func (r *ShopRepo) RemoveFavorite(ctx context.Context, customerID, shopID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE customer_id = $1 AND shop_id = $2`, customerID, shopID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: favorite", apperrors.ErrNotFound)
	}

	return nil
}

func prefixedShopColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.shop_name, %[1]s.email, %[1]s.password, %[1]s.phone, %[1]s.address,
	%[1]s.latitude, %[1]s.longitude, %[1]s.opening_hour, %[1]s.closing_hour, %[1]s.created_at, %[1]s.version`, alias)
}
