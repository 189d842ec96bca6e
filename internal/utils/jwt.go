package utils

import (
	"errors"
	"strconv"
	"time"

	"bankapi/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig holds the signing key and token lifetimes. It is built once at
// startup and passed explicitly to every issuance and verification site; the
// secret is never mutated after construction.
type TokenConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// GenerateTokens generates an access token and a refresh token for the given
// user claims.
func GenerateTokens(cfg TokenConfig, claims *models.UserClaims) (accessToken string, refreshToken string, err error) {
	if cfg.Secret == "" {
		return "", "", errors.New("signing secret not configured")
	}

	now := time.Now()

	accessClaims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		},
		UserID:      claims.UserID,
		Email:       claims.Email,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}
	accessJwt := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessToken, err = accessJwt.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.RefreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		},
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	refreshJwt := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshToken, err = refreshJwt.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ParseToken parses and validates a JWT token string.
// It returns the claims if the token is valid.
func ParseToken(cfg TokenConfig, tokenStr string) (*models.UserClaims, error) {
	if cfg.Secret == "" {
		return nil, errors.New("signing secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
