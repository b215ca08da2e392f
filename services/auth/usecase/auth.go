package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// LoginCustomer authenticates a customer and issues a USER token.
func (uc *AuthUC) LoginCustomer(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("email/password", "required")
	}

	customer, err := uc.repo.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnknownIdentity)
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnknownIdentity)
	}

	return uc.issue(customer.Email, customer.ID, models.RoleUser, customer.Name)
}

// RegisterCustomer creates a customer account and issues a USER token.
func (uc *AuthUC) RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (*models.AuthResponse, error) {
	if req.Email == "" {
		return nil, apperrors.NewValidationError("email", "required")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password", "required")
	}

	if _, err := uc.repo.GetCustomerByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already in use", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &models.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return uc.issue(customer.Email, customer.ID, models.RoleUser, customer.Name)
}

// LoginShop authenticates a shop operator and issues a SHOP token.
func (uc *AuthUC) LoginShop(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("email/password", "required")
	}

	shop, err := uc.repo.GetShopByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnknownIdentity)
		}
		return nil, fmt.Errorf("failed to look up shop: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(shop.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnknownIdentity)
	}

	return uc.issue(shop.Email, shop.ID, models.RoleShop, shop.ShopName)
}

// RegisterShop creates a shop account and issues a SHOP token. A shop may
// register without a coordinate, but then stays invisible to proximity
// search until one is set.
func (uc *AuthUC) RegisterShop(ctx context.Context, req models.RegisterShopRequest) (*models.AuthResponse, error) {
	if req.Email == "" {
		return nil, apperrors.NewValidationError("email", "required")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password", "required")
	}
	// Partial coordinates are worse than none: reject them outright.
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, apperrors.NewValidationError("latitude/longitude", "both must be set or both omitted")
	}

	if _, err := uc.repo.GetShopByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already in use", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing shop: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	shop := &models.TireShop{
		ShopName:    req.Name,
		Email:       req.Email,
		Password:    string(hash),
		Phone:       req.Phone,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OpeningHour: req.OpeningHour,
		ClosingHour: req.ClosingHour,
		CreatedAt:   time.Now(),
	}

	if err := uc.repo.CreateShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}

	return uc.issue(shop.Email, shop.ID, models.RoleShop, shop.ShopName)
}

func (uc *AuthUC) issue(subject string, identityID int, role models.Role, name string) (*models.AuthResponse, error) {
	ttl := time.Duration(uc.cfg.JWT.Expiration) * time.Minute
	token, expiresAt, err := uc.tokens.Issue(subject, identityID, role, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ID:        identityID,
		Role:      role,
		Name:      name,
		ExpiresAt: expiresAt,
	}, nil
}
