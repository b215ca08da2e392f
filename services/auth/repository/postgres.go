package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// GetCustomerByEmail retrieves a customer by email
func (r *AuthRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	query := `
		SELECT id, name, email, password, phone, created_at, version
		FROM customers
		WHERE email = $1
	`

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// GetCustomerByID retrieves a customer by id
func (r *AuthRepo) GetCustomerByID(ctx context.Context, id int) (*models.Customer, error) {
	query := `
		SELECT id, name, email, password, phone, created_at, version
		FROM customers
		WHERE id = $1
	`

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// CreateCustomer inserts a new customer record
func (r *AuthRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, email, password, phone, created_at, version)
		VALUES ($1, $2, $3, $4, $5, 1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		customer.Name,
		customer.Email,
		customer.Password,
		customer.Phone,
		customer.CreatedAt,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	customer.Version = 1
	return nil
}

// GetShopByEmail retrieves a shop by email
func (r *AuthRepo) GetShopByEmail(ctx context.Context, email string) (*models.TireShop, error) {
	query := `
		SELECT id, shop_name, email, password, phone, address,
			latitude, longitude, opening_hour, closing_hour, created_at, version
		FROM tire_shops
		WHERE email = $1
	`

	var shop models.TireShop
	err := r.db.GetContext(ctx, &shop, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: shop", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

// GetShopByID retrieves a shop by id
func (r *AuthRepo) GetShopByID(ctx context.Context, id int) (*models.TireShop, error) {
	query := `
		SELECT id, shop_name, email, password, phone, address,
			latitude, longitude, opening_hour, closing_hour, created_at, version
		FROM tire_shops
		WHERE id = $1
	`

	var shop models.TireShop
	err := r.db.GetContext(ctx, &shop, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: shop", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

// CreateShop inserts a new shop record
func (r *AuthRepo) CreateShop(ctx context.Context, shop *models.TireShop) error {
	query := `
		INSERT INTO tire_shops (shop_name, email, password, phone, address,
			latitude, longitude, opening_hour, closing_hour, created_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		shop.ShopName,
		shop.Email,
		shop.Password,
		shop.Phone,
		shop.Address,
		shop.Latitude,
		shop.Longitude,
		shop.OpeningHour,
		shop.ClosingHour,
		shop.CreatedAt,
	).Scan(&shop.ID)
	if err != nil {
		return fmt.Errorf("failed to insert shop: %w", err)
	}

	shop.Version = 1
	return nil
}
