package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	jakarta := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}
	bandung := GeoPoint{Latitude: -6.9175, Longitude: 107.6191}

	distance := CalculateDistance(jakarta, bandung)
	assert.InDelta(t, 118.0, distance, 5.0)
}

func TestCalculateDistanceSymmetry(t *testing.T) {
	a := GeoPoint{Latitude: 41.0, Longitude: 29.0}
	b := GeoPoint{Latitude: 41.1, Longitude: 29.1}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-9)
}

func TestCalculateDistanceZero(t *testing.T) {
	p := GeoPoint{Latitude: 41.0, Longitude: 29.0}
	assert.Equal(t, 0.0, CalculateDistance(p, p))
}

func TestWithinRadiusFiltersAndSorts(t *testing.T) {
	origin := GeoPoint{Latitude: 41.00, Longitude: 29.00}

	near := GeoPoint{Latitude: 41.02, Longitude: 29.00}  // ~2 km north
	mid := GeoPoint{Latitude: 41.08, Longitude: 29.00}   // ~9 km north
	far := GeoPoint{Latitude: 41.30, Longitude: 29.00}   // ~33 km north

	candidates := []Candidate{
		{ID: 1, Location: &far},
		{ID: 2, Location: &near},
		{ID: 3, Location: &mid},
		{ID: 4, Location: nil},
	}

	matches := WithinRadius(origin, 15.0, candidates)
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].ID)
	assert.Equal(t, 3, matches[1].ID)
	assert.Less(t, matches[0].DistanceKm, matches[1].DistanceKm)
}

func TestWithinRadiusBoundaryInclusive(t *testing.T) {
	origin := GeoPoint{Latitude: 0, Longitude: 0}
	point := GeoPoint{Latitude: 0, Longitude: 0.05}

	exact := CalculateDistance(origin, point)
	matches := WithinRadius(origin, exact, []Candidate{{ID: 1, Location: &point}})
	require.Len(t, matches, 1)
	assert.Equal(t, exact, matches[0].DistanceKm)
}

func TestWithinRadiusSkipsUnknownLocations(t *testing.T) {
	origin := GeoPoint{Latitude: 41.0, Longitude: 29.0}
	matches := WithinRadius(origin, 100.0, []Candidate{
		{ID: 1, Location: nil},
		{ID: 2, Location: nil},
	})
	assert.Empty(t, matches)
}

func TestEncodeLocation(t *testing.T) {
	hash := EncodeLocation(models.Location{Latitude: -6.2088, Longitude: 106.8456}, 7)
	assert.Len(t, hash, 7)
}

func TestGeoPointFromLocation(t *testing.T) {
	point := GeoPointFromLocation(models.Location{Latitude: 1.5, Longitude: 2.5})
	assert.Equal(t, 1.5, point.Latitude)
	assert.Equal(t, 2.5, point.Longitude)
}
