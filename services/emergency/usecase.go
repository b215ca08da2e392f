package emergency

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tyrehub/tyrehub/services/emergency EmergencyUC

// EmergencyUC represents the emergency help request usecase interface
type EmergencyUC interface {
	// CreateRequest stores a new help request and dispatches it to shops
	// within the configured radius
	CreateRequest(ctx context.Context, principal *models.Principal, input models.CreateHelpRequestInput) (*models.HelpRequest, error)

	GetRequest(ctx context.Context, id int) (*models.HelpRequest, error)
	ListRequests(ctx context.Context, principal *models.Principal) ([]models.HelpRequest, error)
	ListPendingRequests(ctx context.Context) ([]models.HelpRequest, error)

	// NearbyRequests returns pending requests within the dispatch radius
	// of the calling shop
	NearbyRequests(ctx context.Context, principal *models.Principal) ([]models.HelpRequest, error)

	AcceptRequest(ctx context.Context, principal *models.Principal, id int) (*models.HelpRequest, error)
	CompleteRequest(ctx context.Context, principal *models.Principal, id int) (*models.HelpRequest, error)
}
