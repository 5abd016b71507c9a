package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evandanowitz/movie-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	api := testutil.NewTestAPI(t)
	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("alice01").
		WithPassword("Secr3t!").
		WithEmail("a@example.com").
		Build(t, api.Users)

	t.Run("valid credentials return user and token", func(t *testing.T) {
		rec := postJSON(t, api.Handler, "/login", map[string]string{
			"Username": user.Username,
			"Password": rawPassword,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			User  map[string]any `json:"user"`
			Token string         `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice01", resp.User["Username"])
		assert.NotContains(t, resp.User, "Password")
		assert.NotContains(t, resp.User, "PasswordHash")
	})

	t.Run("wrong password returns generic failure", func(t *testing.T) {
		rec := postJSON(t, api.Handler, "/login", map[string]string{
			"Username": user.Username,
			"Password": "wrong",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Something is not right", resp.Message)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		wrongPass := postJSON(t, api.Handler, "/login", map[string]string{
			"Username": user.Username,
			"Password": "wrong",
		})
		unknownUser := postJSON(t, api.Handler, "/login", map[string]string{
			"Username": "nosuchuser",
			"Password": "wrong",
		})

		assert.Equal(t, wrongPass.Code, unknownUser.Code)
		assert.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
	})
}

func TestProtectedRoutes(t *testing.T) {
	t.Run("missing header rejected before any store access", func(t *testing.T) {
		api := testutil.NewTestAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		rec := httptest.NewRecorder()
		api.Handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, api.Users.Calls)
	})

	t.Run("malformed scheme rejected", func(t *testing.T) {
		api := testutil.NewTestAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		api.Handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, api.Users.Calls)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		api := testutil.NewTestAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		api.Handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes the guard", func(t *testing.T) {
		api := testutil.NewTestAPI(t)
		user, _ := testutil.NewUserBuilder().WithUsername("guarduser").Build(t, api.Users)

		token, err := api.Services.Auth.IssueToken(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		api.Handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
