package models

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session issued after a wallet signature was verified.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The subject claim carries the lower-cased wallet address.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Wallet is a cached copy of the subject claim.
	Wallet string `json:"-"`
}

// GetWallet extracts the wallet address from the "sub" claim.
func (t *Token) GetWallet() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting wallet from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting wallet from token: empty subject")
	}

	return strings.ToLower(subject), nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// AuthNonce is the challenge a wallet signs to log into the server.
type AuthNonce struct {
	Wallet  string `json:"wallet"`
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

// AuthVerifyRequest carries a signed challenge.
type AuthVerifyRequest struct {
	Wallet    string `json:"wallet"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
}

// AuthNonceRequest asks for a login challenge.
type AuthNonceRequest struct {
	Wallet string `json:"wallet"`
}
