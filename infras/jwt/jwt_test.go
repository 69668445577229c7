package jwt_test

import (
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/config"
	"hms/infras/jwt"
	"hms/infras/otel/mocks"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "hms"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg, mocks.NewOtel())
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	subject := jwt.Subject{UserID: "user-1", UserName: "amira", Role: "Patient"}

	pair, err := svc.GenerateTokenPair(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "amira", claims.UserName)
	assert.Equal(t, "Patient", claims.Role)
	assert.NotEmpty(t, claims.TokenID)

	_, err = svc.ValidateToken(ctx, pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(ctx, "garbage", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	refreshed, err := svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err = svc.ValidateToken(ctx, refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "amira", claims.UserName)

	_, err = svc.RefreshTokens(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestValidateToken_WrongType(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "same"
	cfg.JWT.RefreshSecret = "same"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 5

	svc := jwt.New(cfg, mocks.NewOtel())

	pair, err := svc.GenerateTokenPair(context.Background(), jwt.Subject{UserID: "u", Role: "Admin"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService()

	claims := jwt.Claims{
		UserID: "user-1",
		Role:   "Patient",
		Type:   jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), signed, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrBearerFormat)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, jwt.ErrBearerFormat)
}
