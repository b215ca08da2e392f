package shops

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tyrehub/tyrehub/services/shops ShopUC

// ShopUC represents the shop browsing usecase interface
type ShopUC interface {
	ListShops(ctx context.Context) ([]models.TireShop, error)
	GetShop(ctx context.Context, id int) (*models.TireShop, error)
	NearbyShops(ctx context.Context, origin models.Location, radiusKm float64) ([]models.NearbyShop, error)
	MapMarkers(ctx context.Context) ([]models.ShopMarker, error)

	// SyncGeoIndex rebuilds the redis geo index from stored shop records
	SyncGeoIndex(ctx context.Context) error

	// service catalog (writes are shop-owned)
	ListCatalog(ctx context.Context, shopID int) ([]models.ShopServiceItem, error)
	AddCatalogItem(ctx context.Context, principal *models.Principal, item models.ShopServiceItem) (*models.ShopServiceItem, error)
	UpdateCatalogItem(ctx context.Context, principal *models.Principal, item models.ShopServiceItem) (*models.ShopServiceItem, error)
	DeleteCatalogItem(ctx context.Context, principal *models.Principal, itemID int) error

	// favorites (customer-owned)
	AddFavorite(ctx context.Context, principal *models.Principal, shopID int) (*models.Favorite, error)
	ListFavorites(ctx context.Context, principal *models.Principal) ([]models.TireShop, error)
	RemoveFavorite(ctx context.Context, principal *models.Principal, shopID int) error
}
