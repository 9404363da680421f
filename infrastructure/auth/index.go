package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskdesk.io/infrastructure/logger"
)

const TokenTTL = 24 * time.Hour

// ErrInvalidToken is the only error DecodeAuthToken returns. Expired,
// malformed and tampered tokens are deliberately indistinguishable to
// callers.
var ErrInvalidToken = errors.New("invalid token")

func GenerateAuthToken(claimsData IdentityClaims) (*string, error) {
	now := time.Now()
	claimsData.IssuedAt = jwt.NewNumericDate(now)
	claimsData.ExpiresAt = jwt.NewNumericDate(now.Add(TokenTTL))

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsData).SignedString(SigningKey())
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func DecodeAuthToken(tokenString string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return SigningKey(), nil
	})
	if err != nil {
		logger.Info("rejected auth token", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
