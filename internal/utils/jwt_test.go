package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testWallet = "0xAbCdEf0000000000000000000000000000001234"

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("unibrain", testWallet, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Subject != "0xabcdef0000000000000000000000000000001234" {
		t.Errorf("expected lower-cased subject, got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		wallet   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testWallet, time.Hour, "key"},
		{"empty wallet", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", testWallet, 0, "key"},
		{"empty key", "iss", testWallet, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.wallet, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("unibrain", testWallet, 5*time.Minute, "secret-key")

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "unibrain")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.Wallet != "0xabcdef0000000000000000000000000000001234" {
		t.Errorf("unexpected wallet %s", parsed.Wallet)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, _ := GenerateJWTToken("real-issuer", testWallet, time.Hour, "key")
	expired, _ := GenerateJWTToken("real-issuer", testWallet, -time.Second, "key")

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "real-issuer"},
		{"wrong issuer", valid.SignedString, "key", "fake-issuer"},
		{"expired", expired.SignedString, "key", "real-issuer"},
		{"malformed", "not.a.token", "key", "real-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	_, err := ValidateAndParseJWTToken(expired.SignedString, "key", "real-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, %v", tt.header, got, err)
		}
	}
}
