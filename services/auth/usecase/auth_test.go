package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/services/auth/mocks"
)

func newAuthFixture(t *testing.T) (*AuthUC, *mocks.MockAuthRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAuthRepo(ctrl)
	cfg := &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "test"},
	}
	tokens := jwtpkg.NewTokenService(cfg.JWT)
	return NewAuthUC(repo, tokens, cfg), repo
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginCustomerSuccess(t *testing.T) {
	uc, repo := newAuthFixture(t)

	customer := &models.Customer{
		ID:       1,
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: hashPassword(t, "secret123"),
	}
	repo.EXPECT().GetCustomerByEmail(gomock.Any(), "alice@example.com").Return(customer, nil)

	resp, err := uc.LoginCustomer(context.Background(), models.AuthRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, models.RoleUser, resp.Role)
	assert.Equal(t, "Alice", resp.Name)
}

func TestLoginCustomerWrongPassword(t *testing.T) {
	uc, repo := newAuthFixture(t)

	customer := &models.Customer{
		ID:       1,
		Email:    "alice@example.com",
		Password: hashPassword(t, "secret123"),
	}
	repo.EXPECT().GetCustomerByEmail(gomock.Any(), "alice@example.com").Return(customer, nil)

	_, err := uc.LoginCustomer(context.Background(), models.AuthRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownIdentity))
}

func TestLoginCustomerUnknownEmail(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetCustomerByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.LoginCustomer(context.Background(), models.AuthRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownIdentity))
}

func TestRegisterCustomerDuplicateEmail(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetCustomerByEmail(gomock.Any(), "alice@example.com").
		Return(&models.Customer{ID: 1, Email: "alice@example.com"}, nil)

	_, err := uc.RegisterCustomer(context.Background(), models.RegisterCustomerRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestRegisterCustomerHashesPassword(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetCustomerByEmail(gomock.Any(), "bob@example.com").
		Return(nil, apperrors.ErrNotFound)
	repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Customer) error {
			assert.NotEqual(t, "secret123", c.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("secret123")))
			c.ID = 5
			return nil
		})

	resp, err := uc.RegisterCustomer(context.Background(), models.RegisterCustomerRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.ID)
	assert.Equal(t, models.RoleUser, resp.Role)
}

func TestRegisterShopPartialCoordinatesRejected(t *testing.T) {
	uc, _ := newAuthFixture(t)

	lat := 41.0
	_, err := uc.RegisterShop(context.Background(), models.RegisterShopRequest{
		Name:     "Shop",
		Email:    "shop@example.com",
		Password: "secret123",
		Latitude: &lat,
	})
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestRegisterShopWithoutCoordinates(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetShopByEmail(gomock.Any(), "shop@example.com").
		Return(nil, apperrors.ErrNotFound)
	repo.EXPECT().CreateShop(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.TireShop) error {
			assert.Nil(t, s.Latitude)
			assert.Nil(t, s.Longitude)
			s.ID = 3
			return nil
		})

	resp, err := uc.RegisterShop(context.Background(), models.RegisterShopRequest{
		Name:     "Shop",
		Email:    "shop@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleShop, resp.Role)
}

func TestLoginShopSuccess(t *testing.T) {
	uc, repo := newAuthFixture(t)

	shop := &models.TireShop{
		ID:       2,
		ShopName: "QuickFix",
		Email:    "shop@example.com",
		Password: hashPassword(t, "secret123"),
	}
	repo.EXPECT().GetShopByEmail(gomock.Any(), "shop@example.com").Return(shop, nil)

	resp, err := uc.LoginShop(context.Background(), models.AuthRequest{
		Email:    "shop@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleShop, resp.Role)
	assert.Equal(t, "QuickFix", resp.Name)
}
