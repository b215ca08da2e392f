package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/internal/pkg/middleware"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/services/emergency/mocks"
	"github.com/tyrehub/tyrehub/services/emergency/usecase"
)

type fixedResolver struct {
	principals map[int]*models.Principal
}

func (r *fixedResolver) Resolve(_ context.Context, claims *jwtpkg.Claims) (*models.Principal, error) {
	if p, ok := r.principals[claims.UserID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrUnknownIdentity
}

type handlerFixture struct {
	e        *echo.Echo
	tokens   *jwtpkg.TokenService
	requests *mocks.MockRequestRepo
	shops    *mocks.MockShopDirectory
	notifier *mocks.MockNotifierGW
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	requests := mocks.NewMockRequestRepo(ctrl)
	shops := mocks.NewMockShopDirectory(ctrl)
	notifier := mocks.NewMockNotifierGW(ctrl)

	cfg := &models.Config{
		Emergency: models.EmergencyConfig{DispatchRadiusKm: 15.0},
	}
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, "test")
	require.NoError(t, err)

	uc := usecase.NewEmergencyUC(requests, shops, notifier, cfg, log)
	tokens := jwtpkg.NewTokenService(models.JWTConfig{Secret: "handler-secret", Issuer: "test"})

	resolver := &fixedResolver{principals: map[int]*models.Principal{
		1: models.NewCustomerPrincipal(&models.Customer{ID: 1, Email: "user@example.com"}),
		2: models.NewShopPrincipal(&models.TireShop{ID: 2, Email: "shop@example.com"}),
	}}
	gate := middleware.NewAccessGate(tokens, resolver, middleware.DefaultRouteRules(), log)

	e := echo.New()
	e.Use(gate.Middleware())
	NewEmergencyHandler(uc).RegisterRoutes(e)

	return &handlerFixture{e: e, tokens: tokens, requests: requests, shops: shops, notifier: notifier}
}

func (f *handlerFixture) do(t *testing.T, method, path, body string, userID int, role models.Role, email string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != 0 {
		token, _, err := f.tokens.Issue(email, userID, role, time.Hour)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestCreateRequestEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	f.requests.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.HelpRequest) error {
			r.ID = 1
			return nil
		})
	f.shops.EXPECT().GetAllShops(gomock.Any()).Return(nil, nil)

	body := `{"title":"Flat tire","latitude":41.0,"longitude":29.0,"priority":"HIGH"}`
	rec := f.do(t, http.MethodPost, "/api/requests", body, 1, models.RoleUser, "user@example.com")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PENDING"`)
}

func TestCreateRequestEndpointForbiddenForShops(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"title":"Flat tire","latitude":41.0,"longitude":29.0}`
	rec := f.do(t, http.MethodPost, "/api/requests", body, 2, models.RoleShop, "shop@example.com")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateRequestEndpointUnauthenticated(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"title":"Flat tire","latitude":41.0,"longitude":29.0}`
	rec := f.do(t, http.MethodPost, "/api/requests", body, 0, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAcceptEndpointConflict(t *testing.T) {
	f := newHandlerFixture(t)

	pending := &models.HelpRequest{ID: 5, Status: models.RequestStatusPending, Version: 1}
	f.requests.EXPECT().GetRequestByID(gomock.Any(), 5).Return(pending, nil)
	f.requests.EXPECT().AcceptRequest(gomock.Any(), 5, 2, int64(1)).
		Return(apperrors.ErrConflict)

	rec := f.do(t, http.MethodPut, "/api/requests/5/accept", "", 2, models.RoleShop, "shop@example.com")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateRequestEndpointMissingCoordinates(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"title":"Flat tire","latitude":41.0}`
	rec := f.do(t, http.MethodPost, "/api/requests", body, 1, models.RoleUser, "user@example.com")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
