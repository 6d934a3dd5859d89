package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, authHeader string) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID string
	next := func(c echo.Context) error {
		gotUserID, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	}

	err := JWTAuth(testSecret)(next)(c)
	if err != nil {
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		return httpErr.Code, ""
	}
	return rec.Code, gotUserID
}

func TestJWTAuth(t *testing.T) {
	t.Run("valid token sets user id", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "user-001",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		code, userID := runAuth(t, "Bearer "+token)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "user-001", userID)
	})

	t.Run("missing header", func(t *testing.T) {
		code, _ := runAuth(t, "")
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("malformed header", func(t *testing.T) {
		code, _ := runAuth(t, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "user-001",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		code, _ := runAuth(t, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("token without user_id claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		code, _ := runAuth(t, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, code)
	})
}
