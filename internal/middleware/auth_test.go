package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barterly/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthRequired(t *testing.T) {
	InitMiddleware(&config.Config{JWTSecret: "test-secret-for-auth-middleware"})

	app := fiber.New()
	var localUserID any
	var ctxUserID any
	app.Get("/protected", AuthRequired, func(c *fiber.Ctx) error {
		localUserID = c.Locals("userID")
		ctxUserID = c.UserContext().Value(UserIDKey)
		return c.SendStatus(http.StatusOK)
	})

	t.Run("Valid token reaches locals and context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret-for-auth-middleware", "7"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, uint(7), localUserID)
		assert.Equal(t, uint(7), ctxUserID, "logger context should carry the user ID")
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "some-other-secret", "7"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOptionalAuth(t *testing.T) {
	InitMiddleware(&config.Config{JWTSecret: "test-secret-for-auth-middleware"})

	app := fiber.New()
	var ctxUserID any
	app.Get("/feed", OptionalAuth, func(c *fiber.Ctx) error {
		ctxUserID = c.UserContext().Value(UserIDKey)
		return c.SendStatus(http.StatusOK)
	})

	t.Run("Anonymous passes through", func(t *testing.T) {
		ctxUserID = nil
		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, ctxUserID)
	})

	t.Run("Signed-in viewer is resolved", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret-for-auth-middleware", "12"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, uint(12), ctxUserID)
	})
}
