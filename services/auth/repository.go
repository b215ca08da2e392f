package auth

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tyrehub/tyrehub/services/auth AuthRepo

// AuthRepo is the identity store: customer and shop records looked up by
// the resolver and the login/registration flows.
type AuthRepo interface {
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id int) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error

	GetShopByEmail(ctx context.Context, email string) (*models.TireShop, error)
	GetShopByID(ctx context.Context, id int) (*models.TireShop, error)
	CreateShop(ctx context.Context, shop *models.TireShop) error
}
