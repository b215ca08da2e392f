package usecase

import (
	"context"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
)

// markerGeohashPrecision gives ~150m cells, enough for map clustering.
const markerGeohashPrecision = 7

// ListShops returns all shops
func (uc *ShopUC) ListShops(ctx context.Context) ([]models.TireShop, error) {
	return uc.shopRepo.GetAllShops(ctx)
}

// GetShop returns a single shop by id
func (uc *ShopUC) GetShop(ctx context.Context, id int) (*models.TireShop, error) {
	return uc.shopRepo.GetShopByID(ctx, id)
}

// NearbyShops returns the shops within radiusKm of the origin, sorted by
// ascending distance. The redis geo index narrows the candidate set first;
// the exact haversine check decides inclusion, so a degraded cache only
// costs a full scan, never a wrong answer.
func (uc *ShopUC) NearbyShops(ctx context.Context, origin models.Location, radiusKm float64) ([]models.NearbyShop, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Shops.DefaultSearchRadiusKm
	}

	candidates, err := uc.loadCandidates(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.TireShop, len(candidates))
	geoCandidates := make([]utils.Candidate, 0, len(candidates))
	for _, shop := range candidates {
		byID[shop.ID] = shop
		candidate := utils.Candidate{ID: shop.ID}
		if loc, ok := shop.Coordinate(); ok {
			point := utils.GeoPointFromLocation(loc)
			candidate.Location = &point
		}
		geoCandidates = append(geoCandidates, candidate)
	}

	matches := utils.WithinRadius(utils.GeoPointFromLocation(origin), radiusKm, geoCandidates)

	nearby := make([]models.NearbyShop, 0, len(matches))
	for _, match := range matches {
		nearby = append(nearby, models.NearbyShop{
			Shop:       byID[match.ID],
			DistanceKm: match.DistanceKm,
		})
	}

	return nearby, nil
}

func (uc *ShopUC) loadCandidates(ctx context.Context, origin models.Location, radiusKm float64) ([]models.TireShop, error) {
	ids, err := uc.cache.NearbyShopIDs(ctx, origin, radiusKm)
	if err != nil {
		uc.log.WithError(err).Warn("geo index lookup failed, falling back to full scan")
	} else if len(ids) > 0 {
		shops, err := uc.shopRepo.GetShopsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load prefiltered shops: %w", err)
		}
		return shops, nil
	}

	return uc.shopRepo.GetAllShops(ctx)
}

// MapMarkers returns a marker per shop with a known location
func (uc *ShopUC) MapMarkers(ctx context.Context) ([]models.ShopMarker, error) {
	allShops, err := uc.shopRepo.GetAllShops(ctx)
	if err != nil {
		return nil, err
	}

	markers := make([]models.ShopMarker, 0, len(allShops))
	for _, shop := range allShops {
		loc, ok := shop.Coordinate()
		if !ok {
			continue
		}
		markers = append(markers, models.ShopMarker{
			ShopID:   shop.ID,
			ShopName: shop.ShopName,
			Location: loc,
			Geohash:  utils.EncodeLocation(loc, markerGeohashPrecision),
		})
	}

	return markers, nil
}

// SyncGeoIndex rebuilds the redis geo index from stored shop records.
// Shops without a coordinate are skipped.
func (uc *ShopUC) SyncGeoIndex(ctx context.Context) error {
	allShops, err := uc.shopRepo.GetAllShops(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shops for geo index: %w", err)
	}

	indexed := 0
	for _, shop := range allShops {
		loc, ok := shop.Coordinate()
		if !ok {
			continue
		}
		if err := uc.cache.IndexShopLocation(ctx, shop.ID, loc); err != nil {
			return fmt.Errorf("failed to index shop %d: %w", shop.ID, err)
		}
		indexed++
	}

	uc.log.WithField("count", indexed).Info("shop geo index synced")
	return nil
}
