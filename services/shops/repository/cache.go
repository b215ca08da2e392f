package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tyrehub/tyrehub/internal/pkg/constants"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// IndexShopLocation upserts a shop's position in the geo index
func (c *ShopCache) IndexShopLocation(ctx context.Context, shopID int, location models.Location) error {
	member := strconv.Itoa(shopID)
	if err := c.redisClient.GeoAdd(ctx, constants.KeyShopGeo, location.Longitude, location.Latitude, member); err != nil {
		return fmt.Errorf("failed to index shop location: %w", err)
	}
	return nil
}

// RemoveShopLocation drops a shop from the geo index
func (c *ShopCache) RemoveShopLocation(ctx context.Context, shopID int) error {
	return c.redisClient.GeoRemove(ctx, constants.KeyShopGeo, strconv.Itoa(shopID))
}

// NearbyShopIDs returns ids of shops the geo index places within radiusKm
// of the origin. Members that are not integers are skipped.
func (c *ShopCache) NearbyShopIDs(ctx context.Context, origin models.Location, radiusKm float64) ([]int, error) {
	locations, err := c.redisClient.GeoRadius(ctx, constants.KeyShopGeo,
		origin.Longitude, origin.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	ids := make([]int, 0, len(locations))
	for _, loc := range locations {
		id, err := strconv.Atoi(loc.Name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
