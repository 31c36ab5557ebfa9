package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates an HMAC-SHA256 signed session token whose
// subject is the lower-cased wallet address.
//
// All parameters are required; tokenDuration may be negative in tests to
// produce an already expired token.
func GenerateJWTToken(issuer, wallet string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || wallet == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	wallet = strings.ToLower(wallet)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   wallet,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Wallet: wallet}, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry of
// tokenString and returns the token with its wallet extracted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	wallet, err := parsed.GetWallet()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, RegisteredClaims: parsed.RegisteredClaims, SignedString: tokenString, Wallet: wallet}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
