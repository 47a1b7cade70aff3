package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_hop/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonRequest(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLogin(t *testing.T) {
	ac := NewAuthController(store.New(store.Seed(), nil))

	t.Run("admin with demo password gets an admin session", func(t *testing.T) {
		c, w := jsonRequest(t, http.MethodPost, "/auth/login", gin.H{
			"email":    "admin@bennett.edu.in",
			"password": store.DemoPassword,
		})
		ac.Login(c)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "admin", user["role"])
		assert.Equal(t, true, user["is_admin"])
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		c, w := jsonRequest(t, http.MethodPost, "/auth/login", gin.H{
			"email":    "admin@bennett.edu.in",
			"password": "wrong",
		})
		ac.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		c, w := jsonRequest(t, http.MethodPost, "/auth/login", gin.H{
			"email":    "nobody@bennett.edu.in",
			"password": store.DemoPassword,
		})
		ac.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSignup(t *testing.T) {
	s := store.New(store.Seed(), nil)
	ac := NewAuthController(s)

	t.Run("duplicate email conflicts and appends nothing", func(t *testing.T) {
		c, w := jsonRequest(t, http.MethodPost, "/auth/signup", gin.H{
			"name":     "Clone",
			"email":    "student@bennett.edu.in",
			"password": "whatever",
		})
		ac.Signup(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Len(t, s.ListUsers(), 2)
	})

	t.Run("fresh email registers and can immediately log in", func(t *testing.T) {
		c, w := jsonRequest(t, http.MethodPost, "/auth/signup", gin.H{
			"name":       "New Student",
			"email":      "new@bennett.edu.in",
			"password":   "hunter2",
			"student_id": "BU20250042",
		})
		ac.Signup(c)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "user", user["role"])
		assert.Equal(t, "BU20250042", user["student_id"])

		c2, w2 := jsonRequest(t, http.MethodPost, "/auth/login", gin.H{
			"email":    "new@bennett.edu.in",
			"password": "hunter2",
		})
		ac.Login(c2)
		assert.Equal(t, http.StatusOK, w2.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	s := store.New(store.Seed(), nil)
	ac := NewAuthController(s)

	c, w := jsonRequest(t, http.MethodPatch, "/profile", gin.H{"name": "Renamed"})
	c.Set("user_id", "2")
	ac.UpdateProfile(c)

	require.Equal(t, http.StatusOK, w.Code)
	user, _ := s.UserByID("2")
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, "BU20210001", user.StudentID, "unspecified fields stay put")
}
