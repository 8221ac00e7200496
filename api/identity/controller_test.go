package identity

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	user *dmn.User
}

func (a *stubAuth) Register(username, _ string) error {
	if username == "taken" {
		return errors.New("username already taken")
	}
	return nil
}

func (a *stubAuth) SignIn(username, password string) (*dmn.User, string, error) {
	if username != a.user.Username || password != "correct" {
		return nil, "", errors.New("invalid credentials")
	}
	return a.user, "signed-token", nil
}

type stubTokenizer struct {
	claims map[string]interface{}
}

func (s stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", nil
}

func (s stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return s.claims, nil
}

func send(engine *gin.Engine, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestIdentityRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := &dmn.User{ID: uuid.New(), Username: "walker", LevelsCleared: 4, BestDepth: 3}
	engine := gin.New()
	NewIdentityServer(&stubAuth{user: user}).RegisterPublic(engine.Group("/api/v1"))

	t.Run("Register", func(t *testing.T) {
		rec := send(engine, http.MethodPost, "/api/v1/auth/register", `{"username": "walker", "password": "pw"}`, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = send(engine, http.MethodPost, "/api/v1/auth/register", `{"username": "taken", "password": "pw"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = send(engine, http.MethodPost, "/api/v1/auth/register", `{"username": "walker"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Login", func(t *testing.T) {
		rec := send(engine, http.MethodPost, "/api/v1/auth/login", `{"username": "walker", "password": "correct"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, 4, resp.LevelsCleared)
		assert.Equal(t, 3, resp.BestDepth)

		rec = send(engine, http.MethodPost, "/api/v1/auth/login", `{"username": "walker", "password": "wrong"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	playerID := uuid.New()

	engine := gin.New()
	protected := engine.Group("/")
	protected.Use(Authoriz(stubTokenizer{claims: map[string]interface{}{"userID": playerID.String()}}))
	protected.GET("/me", func(c *gin.Context) {
		id, err := PlayerID(c)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name   string
		header map[string]string
		code   int
	}{
		{"Missing header", nil, http.StatusUnauthorized},
		{"Wrong scheme", map[string]string{"Authorization": "Basic good"}, http.StatusUnauthorized},
		{"Bad token", map[string]string{"Authorization": "Bearer bad"}, http.StatusUnauthorized},
		{"Valid token", map[string]string{"Authorization": "Bearer good"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(engine, http.MethodGet, "/me", "", tt.header)
			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, playerID.String(), rec.Body.String())
			}
		})
	}
}

func TestPlayerIDWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := PlayerID(c)
	assert.ErrorIs(t, err, ErrMissingPlayer)

	c.Set(ContextUserClaims, map[string]interface{}{"userID": 42})
	_, err = PlayerID(c)
	assert.ErrorIs(t, err, ErrMissingPlayer)
}
