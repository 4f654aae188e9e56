package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"pickup-service/internal/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var (
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(cfg *config.Auth) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}
}

// Parse проверяет подпись, издателя, срок жизни и согласованность роли с идентификаторами.
func (v *Verifier) Parse(tokenString string) (Identity, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Identity{}, ErrMissingToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	switch claims.Role {
	case RoleDriver:
		if claims.DriverID <= 0 || claims.TenantID <= 0 {
			return Identity{}, fmt.Errorf("%w: driver token requires driver_id and tenant_id", ErrInvalidClaims)
		}
	case RoleAdmin:
		if claims.TenantID < 0 {
			return Identity{}, fmt.Errorf("%w: negative tenant_id", ErrInvalidClaims)
		}
	default:
		return Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidClaims, claims.Role)
	}

	return Identity{
		Subject:  claims.Subject,
		Role:     claims.Role,
		DriverID: claims.DriverID,
		TenantID: claims.TenantID,
	}, nil
}

// Mint выпуск токена для локальной разработки и тестов.
func (v *Verifier) Mint(now time.Time, identity Identity, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", errors.New("jwt secret is required")
	}
	if !identity.Role.IsValid() {
		return "", fmt.Errorf("invalid role %q", identity.Role)
	}

	claims := Claims{
		Role:     identity.Role,
		DriverID: identity.DriverID,
		TenantID: identity.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}
