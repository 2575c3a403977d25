package jwt_test

import (
	"hotel/config"
	"hotel/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, ttl int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.Session.Secret = secret
	cfg.Session.TTLMinutes = ttl

	return cfg
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	svc := jwt.New(newConfig("front-desk-secret", 180))

	token, expiresAt, err := svc.GenerateSessionToken("5a1d2f10-0000-4000-8000-000000000001")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(180*time.Minute), expiresAt, time.Minute)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5a1d2f10-0000-4000-8000-000000000001", claims.SessionID())
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestGenerateSessionToken_EmptyID(t *testing.T) {
	svc := jwt.New(newConfig("front-desk-secret", 180))

	_, _, err := svc.GenerateSessionToken("")

	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidateSessionToken_Errors(t *testing.T) {
	svc := jwt.New(newConfig("front-desk-secret", 180))
	other := jwt.New(newConfig("another-secret", 180))
	expired := jwt.New(newConfig("front-desk-secret", -5))

	foreignToken, _, err := other.GenerateSessionToken("sid-1")
	require.NoError(t, err)

	expiredToken, _, err := expired.GenerateSessionToken("sid-2")
	require.NoError(t, err)

	noneToken, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{ID: "sid-3"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrInvalidToken},
		{name: "wrong secret", token: foreignToken, wantErr: jwt.ErrInvalidToken},
		{name: "expired", token: expiredToken, wantErr: jwt.ErrExpiredToken},
		{name: "unsigned", token: noneToken, wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateSessionToken(tt.token)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
