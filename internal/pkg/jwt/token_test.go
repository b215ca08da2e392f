package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

func newTestService(secret string) *TokenService {
	return NewTokenService(models.JWTConfig{
		Secret: secret,
		Issuer: "tyrehub-test",
	})
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestService("test-secret")

	token, expiresAt, err := svc.Issue("user@example.com", 42, models.RoleUser, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, "tyrehub-test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.Issue("user@example.com", 42, models.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := newTestService("secret-a")
	verifier := newTestService("secret-b")

	token, _, err := issuer.Issue("shop@example.com", 7, models.RoleShop, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadSignature))
}

func TestValidateMalformedToken(t *testing.T) {
	svc := newTestService("test-secret")

	_, err := svc.Validate("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenMalformed))
}

func TestValidateShopRoleRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.Issue("shop@example.com", 9, models.RoleShop, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleShop, claims.Role)
	assert.Equal(t, 9, claims.UserID)
}
