package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// stubResolver resolves fixed principals keyed by user id.
type stubResolver struct {
	principals map[int]*models.Principal
}

func (s *stubResolver) Resolve(_ context.Context, claims *jwtpkg.Claims) (*models.Principal, error) {
	principal, ok := s.principals[claims.UserID]
	if !ok {
		return nil, apperrors.ErrUnknownIdentity
	}
	if principal.Email() != claims.Subject {
		return nil, apperrors.ErrIdentityMismatch
	}
	return principal, nil
}

func newGateFixture(t *testing.T) (*AccessGate, *jwtpkg.TokenService) {
	t.Helper()

	tokens := jwtpkg.NewTokenService(models.JWTConfig{Secret: "gate-secret", Issuer: "test"})
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, "test")
	require.NoError(t, err)

	resolver := &stubResolver{principals: map[int]*models.Principal{
		1: models.NewCustomerPrincipal(&models.Customer{ID: 1, Email: "user@example.com"}),
		2: models.NewShopPrincipal(&models.TireShop{ID: 2, Email: "shop@example.com"}),
	}}

	return NewAccessGate(tokens, resolver, DefaultRouteRules(), log), tokens
}

func performRequest(gate *AccessGate, method, path, token string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(gate.Middleware())
	e.Any(path, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPublicRouteWithoutToken(t *testing.T) {
	gate, _ := newGateFixture(t)
	rec := performRequest(gate, http.MethodPost, "/auth/user/login", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	gate, _ := newGateFixture(t)
	rec := performRequest(gate, http.MethodGet, "/api/shops", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteWithValidToken(t *testing.T) {
	gate, tokens := newGateFixture(t)
	token, _, err := tokens.Issue("user@example.com", 1, models.RoleUser, time.Hour)
	require.NoError(t, err)

	rec := performRequest(gate, http.MethodGet, "/api/shops", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleRestrictedRouteWrongRole(t *testing.T) {
	gate, tokens := newGateFixture(t)
	token, _, err := tokens.Issue("shop@example.com", 2, models.RoleShop, time.Hour)
	require.NoError(t, err)

	// vehicles are customer-only
	rec := performRequest(gate, http.MethodGet, "/api/vehicles", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestInvalidTokenDegradesToAnonymous(t *testing.T) {
	gate, _ := newGateFixture(t)

	rec := performRequest(gate, http.MethodPost, "/auth/user/login", "garbage-token")
	assert.Equal(t, http.StatusOK, rec.Code, "public route must stay reachable")

	rec = performRequest(gate, http.MethodGet, "/api/shops", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "protected route sees anonymous")
}

func TestIdentityMismatchDegradesToAnonymous(t *testing.T) {
	gate, tokens := newGateFixture(t)

	// token subject does not match the stored email for id 1
	token, _, err := tokens.Issue("stale@example.com", 1, models.RoleUser, time.Hour)
	require.NoError(t, err)

	rec := performRequest(gate, http.MethodGet, "/api/shops", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMethodBoundRuleWinsOverPrefix(t *testing.T) {
	gate, tokens := newGateFixture(t)

	shopToken, _, err := tokens.Issue("shop@example.com", 2, models.RoleShop, time.Hour)
	require.NoError(t, err)
	userToken, _, err := tokens.Issue("user@example.com", 1, models.RoleUser, time.Hour)
	require.NoError(t, err)

	// POST /api/requests is customer-only; the /api/requests/* prefix rule
	// admits both roles for everything else
	rec := performRequest(gate, http.MethodPost, "/api/requests", shopToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = performRequest(gate, http.MethodPost, "/api/requests", userToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(gate, http.MethodGet, "/api/requests/pending", shopToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrincipalBoundToContext(t *testing.T) {
	gate, tokens := newGateFixture(t)
	token, _, err := tokens.Issue("user@example.com", 1, models.RoleUser, time.Hour)
	require.NoError(t, err)

	e := echo.New()
	e.Use(gate.Middleware())
	e.GET("/api/shops", func(c echo.Context) error {
		principal, ok := PrincipalFromContext(c)
		require.True(t, ok)
		assert.Equal(t, 1, principal.ID())
		assert.Equal(t, models.AuthorityUser, principal.Authority())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteRuleMatching(t *testing.T) {
	prefix := RouteRule{Pattern: "/api/shops/*"}
	assert.True(t, prefix.matches(http.MethodGet, "/api/shops"))
	assert.True(t, prefix.matches(http.MethodGet, "/api/shops/1"))
	assert.False(t, prefix.matches(http.MethodGet, "/api/shopsextra"))

	exact := RouteRule{Method: http.MethodPost, Pattern: "/api/requests"}
	assert.True(t, exact.matches(http.MethodPost, "/api/requests"))
	assert.False(t, exact.matches(http.MethodGet, "/api/requests"))
}
