package shops

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tyrehub/tyrehub/services/shops ShopRepo,ShopCache

// ShopRepo is the postgres-backed shop store
type ShopRepo interface {
	GetAllShops(ctx context.Context) ([]models.TireShop, error)
	GetShopByID(ctx context.Context, id int) (*models.TireShop, error)
	GetShopsByIDs(ctx context.Context, ids []int) ([]models.TireShop, error)

	ListCatalog(ctx context.Context, shopID int) ([]models.ShopServiceItem, error)
	GetCatalogItem(ctx context.Context, id int) (*models.ShopServiceItem, error)
	CreateCatalogItem(ctx context.Context, item *models.ShopServiceItem) error
	UpdateCatalogItem(ctx context.Context, item *models.ShopServiceItem) error
	DeleteCatalogItem(ctx context.Context, id, shopID int) error

	AddFavorite(ctx context.Context, favorite *models.Favorite) error
	ListFavoriteShops(ctx context.Context, customerID int) ([]models.TireShop, error)
	RemoveFavorite(ctx context.Context, customerID, shopID int) error
}

// ShopCache is the redis geo index over shop locations, used as a
// prefilter before exact distance checks.
type ShopCache interface {
	IndexShopLocation(ctx context.Context, shopID int, location models.Location) error
	NearbyShopIDs(ctx context.Context, origin models.Location, radiusKm float64) ([]int, error)
}
