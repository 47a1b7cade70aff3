package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedEngine(hit *bool) *gin.Engine {
	r := gin.New()
	r.DELETE("/guarded", RequireAuthWithRole("admin"), func(c *gin.Context) {
		*hit = true
		c.JSON(http.StatusOK, gin.H{"message": "done"})
	})
	return r
}

func serveGuarded(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthWithRole(t *testing.T) {
	t.Run("wrong role never reaches the handler", func(t *testing.T) {
		var hit bool
		r := guardedEngine(&hit)

		token, err := GenerateToken("2", "user")
		require.NoError(t, err)

		w := serveGuarded(t, r, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, hit, "handler must not run for an insufficient role")
	})

	t.Run("matching role reaches the handler", func(t *testing.T) {
		var hit bool
		r := guardedEngine(&hit)

		token, err := GenerateToken("1", "admin")
		require.NoError(t, err)

		w := serveGuarded(t, r, token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hit)
	})

	t.Run("missing header is a 401", func(t *testing.T) {
		var hit bool
		r := guardedEngine(&hit)

		w := serveGuarded(t, r, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, hit)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateToken("user_42", "user")
		require.NoError(t, err)

		userID, role, err := ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user_42", userID)
		assert.Equal(t, "user", role)
	})

	t.Run("rejects unsigned tokens", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": "1",
			"role":    "admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, _, err = ValidateToken(raw)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, _, err := ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
