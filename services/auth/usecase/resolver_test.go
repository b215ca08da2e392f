package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

func customerClaims(id int, email string) *jwtpkg.Claims {
	return &jwtpkg.Claims{
		UserID:           id,
		Role:             models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
	}
}

func TestResolveCustomer(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetCustomerByID(gomock.Any(), 1).
		Return(&models.Customer{ID: 1, Email: "alice@example.com"}, nil)

	principal, err := uc.Resolve(context.Background(), customerClaims(1, "alice@example.com"))
	require.NoError(t, err)
	assert.True(t, principal.IsCustomer())
	assert.Equal(t, 1, principal.ID())
	assert.Equal(t, models.AuthorityUser, principal.Authority())
}

func TestResolveShop(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetShopByID(gomock.Any(), 2).
		Return(&models.TireShop{ID: 2, Email: "shop@example.com"}, nil)

	claims := &jwtpkg.Claims{
		UserID:           2,
		Role:             models.RoleShop,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "shop@example.com"},
	}
	principal, err := uc.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.True(t, principal.IsShop())
	assert.Equal(t, models.AuthorityShop, principal.Authority())
}

func TestResolveUnknownIdentity(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetCustomerByID(gomock.Any(), 99).
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.Resolve(context.Background(), customerClaims(99, "ghost@example.com"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownIdentity))
}

func TestResolveEmailMismatch(t *testing.T) {
	uc, repo := newAuthFixture(t)

	repo.EXPECT().GetCustomerByID(gomock.Any(), 1).
		Return(&models.Customer{ID: 1, Email: "new@example.com"}, nil)

	_, err := uc.Resolve(context.Background(), customerClaims(1, "old@example.com"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrIdentityMismatch))
}

func TestResolveUnknownRole(t *testing.T) {
	uc, _ := newAuthFixture(t)

	claims := &jwtpkg.Claims{
		UserID:           1,
		Role:             models.Role("ADMIN"),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin@example.com"},
	}
	_, err := uc.Resolve(context.Background(), claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownRole))
}
