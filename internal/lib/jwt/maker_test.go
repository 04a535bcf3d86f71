package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	rememberTTL := 720 * time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL, rememberTTL)

	tests := []struct {
		name     string
		email    string
		userID   string
		remember bool
		wantTTL  time.Duration
	}{
		{
			name:    "regular session",
			email:   "ana@x.com",
			userID:  "9f2c1a40-1111-4c6e-9a60-000000000001",
			wantTTL: tokenTTL,
		},
		{
			name:     "remembered session",
			email:    "luna@x.com",
			userID:   "9f2c1a40-1111-4c6e-9a60-000000000002",
			remember: true,
			wantTTL:  rememberTTL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.email, tt.userID, tt.remember)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tt.wantTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, 15*time.Minute, time.Hour)

	validToken, err := maker.GenerateToken("ana@x.com", "uid-1", false)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewJWTMaker(secretKey, -time.Hour, -time.Hour)
	token, err := maker.GenerateToken("ana@x.com", "uid-1", false)
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", 15*time.Minute, time.Hour)
	token, err := wrongMaker.GenerateToken("ana@x.com", "uid-1", false)
	require.NoError(t, err)
	return token
}
