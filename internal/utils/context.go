// Package utils provides general-purpose helpers shared by UniBrain
// packages: typed context keys, JSON responses, the resty HTTP client,
// JWT issuing and validation, HMAC signing and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// WalletCtxKey stores the authenticated wallet address of a request.
//
//	ctx := context.WithValue(ctx, utils.WalletCtxKey, "0xabc...")
var WalletCtxKey = contextKey("wallet")

// GetWalletFromContext returns the wallet stored under WalletCtxKey.
// ok is false when the value is missing, empty or of another type.
func GetWalletFromContext(ctx context.Context) (string, bool) {
	wallet, ok := ctx.Value(WalletCtxKey).(string)
	return wallet, ok && wallet != ""
}
