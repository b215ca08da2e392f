package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// Claims represents the verified payload of a bearer token.
// Subject carries the account email, UserID the integer identity key;
// both must match the stored record before a principal is resolved.
type Claims struct {
	UserID int         `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 bearer tokens. It is stateless
// and safe for concurrent use.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a token service from JWT configuration.
func NewTokenService(cfg models.JWTConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

// Issue produces a signed token for the given identity. Claims are exactly
// {sub, user_id, role, iat=now, exp=now+ttl}; there is no persistence.
// Returns the token string and the unix expiry.
func (s *TokenService) Issue(subject string, identityID int, role models.Role, ttl time.Duration) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		UserID: identityID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt.Unix(), nil
}

// Validate verifies signature and expiry and returns the claims.
// Expiry is checked against the verifier's clock with no skew allowance.
// Absence of a token is not handled here; the access gate treats a missing
// bearer credential as anonymous before ever calling Validate.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", apperrors.ErrBadSignature, err)
		default:
			return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenMalformed, err)
		}
	}

	if !token.Valid {
		return nil, apperrors.ErrBadSignature
	}

	return claims, nil
}
