package emergency

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tyrehub/tyrehub/services/emergency RequestRepo,ShopDirectory,NotifierGW

// RequestRepo represents the help request store interface
type RequestRepo interface {
	CreateRequest(ctx context.Context, request *models.HelpRequest) error
	GetRequestByID(ctx context.Context, id int) (*models.HelpRequest, error)
	ListAllRequests(ctx context.Context) ([]models.HelpRequest, error)
	ListRequestsByCustomer(ctx context.Context, customerID int) ([]models.HelpRequest, error)
	ListRequestsByShop(ctx context.Context, shopID int) ([]models.HelpRequest, error)
	ListRequestsByStatus(ctx context.Context, status models.RequestStatus) ([]models.HelpRequest, error)

	// AcceptRequest assigns the shop to a pending request. The version
	// guards against a concurrent acceptance; losing the race surfaces a
	// conflict.
	AcceptRequest(ctx context.Context, id, shopID int, version int64) error

	// CompleteRequest closes an accepted request, guarded the same way
	CompleteRequest(ctx context.Context, id int, version int64) error
}

// ShopDirectory is the read-only view of shops the dispatcher needs.
// The shops repository satisfies it.
type ShopDirectory interface {
	GetAllShops(ctx context.Context) ([]models.TireShop, error)
	GetShopByID(ctx context.Context, id int) (*models.TireShop, error)
}

// NotifierGW represents the outbound notification gateway interface
type NotifierGW interface {
	NotifyShop(ctx context.Context, notification models.EmergencyNotification) error
}
