package middleware

import (
	"net/http"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// DefaultRouteRules is the shipped route→role policy. Login, registration,
// docs and health endpoints are always public; everything else needs at
// least an authenticated principal.
func DefaultRouteRules() []RouteRule {
	anyRole := []string{models.AuthorityUser, models.AuthorityShop}
	userOnly := []string{models.AuthorityUser}
	shopOnly := []string{models.AuthorityShop}

	return []RouteRule{
		{Pattern: "/auth/*", Public: true},
		{Pattern: "/ping", Public: true},
		{Pattern: "/health", Public: true},
		{Pattern: "/swagger/*", Public: true},

		{Pattern: "/api/vehicles/*", Roles: userOnly},
		{Pattern: "/api/favorites/*", Roles: userOnly},

		{Method: http.MethodPost, Pattern: "/api/requests", Roles: userOnly},
		{Pattern: "/api/requests/*", Roles: anyRole},

		{Pattern: "/api/shops/*", Roles: anyRole},

		{Method: http.MethodGet, Pattern: "/api/catalog/*", Roles: anyRole},
		{Pattern: "/api/catalog/*", Roles: shopOnly},

		{Pattern: "/api/appointments/*", Roles: anyRole},
	}
}
