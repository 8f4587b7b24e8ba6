package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veloweb/subman/pkg/config"
	"github.com/veloweb/subman/pkg/types"
)

func newTestService(secret string) *Service {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	return New(nil, cfg, zap.NewNop().Sugar())
}

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseToken_RoundTrip(t *testing.T) {
	svc := newTestService("test-secret")
	token := signToken(t, "test-secret", &Claims{
		UserID: "u1",
		Name:   "Admin",
		Email:  "admin@example.com",
		Role:   types.UserRoleAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "Admin", claims.Name)
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, types.UserRoleAdmin, claims.Role)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestService("test-secret")
	token := signToken(t, "other-secret", &Claims{
		UserID:         "u1",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	})

	_, err := svc.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	svc := newTestService("test-secret")
	token := signToken(t, "test-secret", &Claims{
		UserID:         "u1",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()},
	})

	_, err := svc.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	svc := newTestService("test-secret")

	_, err := svc.ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
