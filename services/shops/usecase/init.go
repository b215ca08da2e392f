package usecase

import (
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/services/shops"
)

// ShopUC implements the shop browsing usecase interface
type ShopUC struct {
	shopRepo shops.ShopRepo
	cache    shops.ShopCache
	cfg      *models.Config
	log      *logger.AppLogger
}

// NewShopUC creates a new shop usecase instance
func NewShopUC(shopRepo shops.ShopRepo, cache shops.ShopCache, cfg *models.Config, log *logger.AppLogger) *ShopUC {
	return &ShopUC{
		shopRepo: shopRepo,
		cache:    cache,
		cfg:      cfg,
		log:      log,
	}
}
