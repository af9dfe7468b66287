package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicbook/config"
	"clinicbook/infras/jwt"
	"clinicbook/infras/otel/mocks"
	"clinicbook/internal/domains/auth/model/dto"
	"clinicbook/internal/domains/auth/service"
	"clinicbook/shared/failure"
	"clinicbook/shared/password"
)

func newAuthService(t *testing.T) service.Auth {
	t.Helper()

	hash, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Admin.Email = "admin@clinic.test"
	cfg.App.Admin.PasswordHash = hash
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 1440

	return service.New(cfg, mocks.NewOtel(), jwt.New(cfg))
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	t.Run("successful login", func(t *testing.T) {
		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@clinic.test",
			Password: "correct horse battery staple",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Positive(t, res.ExpiresIn)
	})

	t.Run("email is case insensitive", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "ADMIN@clinic.test",
			Password: "correct horse battery staple",
		})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@clinic.test",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@clinic.test",
			Password: "correct horse battery staple",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unconfigured credentials", func(t *testing.T) {
		cfg := &config.Config{}
		unconfigured := service.New(cfg, mocks.NewOtel(), jwt.New(cfg))

		_, err := unconfigured.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@clinic.test",
			Password: "anything",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRefreshToken(t *testing.T) {
	svc := newAuthService(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@clinic.test",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: login.AccessToken,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "not-a-token",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
