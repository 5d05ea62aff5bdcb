package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
)

func TestLogin(t *testing.T) {
	t.Run("success persists the session", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "user@example.com", req["email"])
			assert.Empty(t, r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "a1",
				"refresh_token": "r1",
				"user_id":       "u1",
			})
		})

		c, store, server := newTestClient(mux)
		defer server.Close()

		session, err := c.Login(context.Background(), "user@example.com", "hunter22")
		require.NoError(t, err)

		assert.Equal(t, "u1", session.UserID)
		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, "a1", store.GetAccessToken())
		assert.Equal(t, "r1", store.GetRefreshToken())
		assert.Equal(t, "u1", store.GetUserID())
	})

	t.Run("invalid email fails before any network call", func(t *testing.T) {
		var calls int
		c, _, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		_, err := c.Login(context.Background(), "not-an-email", "hunter22")
		require.Error(t, err)

		var apiErr *common.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, 0, calls)
	})

	t.Run("rejected credentials surface the server detail", func(t *testing.T) {
		c, store, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "invalid credentials"}`))
		}))
		defer server.Close()

		_, err := c.Login(context.Background(), "user@example.com", "wrong")
		var apiErr *common.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "invalid credentials", apiErr.Detail)
		assert.False(t, store.IsAuthenticated())
	})
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "New User", req["full_name"])

		json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "a1",
			"refresh_token": "r1",
			"user_id":       "u-new",
		})
	})

	c, store, server := newTestClient(mux)
	defer server.Close()

	session, err := c.Register(context.Background(), "new@example.com", "longenough", "New User")
	require.NoError(t, err)
	assert.Equal(t, "u-new", session.UserID)
	assert.True(t, store.IsAuthenticated())

	t.Run("short password rejected locally", func(t *testing.T) {
		_, err := c.Register(context.Background(), "new@example.com", "short", "")
		var apiErr *common.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	})
}

func TestLogout_IsLocalOnly(t *testing.T) {
	var calls int
	c, store, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()
	require.NoError(t, store.SetTokens("a1", "r1", "u1"))

	require.NoError(t, c.Logout())

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.GetAccessToken())
	assert.Empty(t, store.GetRefreshToken())
	assert.Empty(t, store.GetUserID())
	assert.Equal(t, 0, calls)
}

func TestTokenInfo(t *testing.T) {
	c, store, server := newTestClient(http.NewServeMux())
	defer server.Close()

	t.Run("not authenticated", func(t *testing.T) {
		_, err := c.TokenInfo()
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("decodes claims without verification", func(t *testing.T) {
		expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "user@example.com",
			ExpiresAt: jwt.NewNumericDate(expiry),
		})
		signed, err := token.SignedString([]byte("a-key-the-client-never-has"))
		require.NoError(t, err)
		require.NoError(t, store.SetTokens(signed, "r1", "u1"))

		info, err := c.TokenInfo()
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", info.Subject)
		assert.Equal(t, "u1", info.UserID)
		assert.WithinDuration(t, expiry, info.ExpiresAt, time.Second)
	})
}

// TestSessionLifecycle walks the whole flow: login, authenticated read,
// expiry, transparent refresh and retry, logout.
func TestSessionLifecycle(t *testing.T) {
	expireNext := false
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "a1",
			"refresh_token": "r1",
			"user_id":       "u1",
		})
	})
	mux.HandleFunc("/refresh/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "r1", r.Header.Get("X-Refresh-Token"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"access_token": "a2", "refresh_token": "r2", "id": "u1"},
		})
	})
	mux.HandleFunc("/summary/", func(w http.ResponseWriter, r *http.Request) {
		if expireNext && r.Header.Get("Authorization") == "Bearer a1" {
			w.WriteHeader(498)
			w.Write([]byte(`{"detail": "token expired"}`))
			return
		}
		w.Write([]byte(`{"data": {"total_income": 100}}`))
	})

	c, store, server := newTestClient(mux)
	defer server.Close()

	session, err := c.Login(context.Background(), "user@example.com", "hunter22")
	require.NoError(t, err)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, session.UserID, store.GetUserID())

	resp, err := c.Get(context.Background(), "/summary/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	// access token expires server-side; the next read must refresh once
	// and come back with data
	expireNext = true
	resp, err = c.Get(context.Background(), "/summary/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "a2", store.GetAccessToken())
	assert.Equal(t, "r2", store.GetRefreshToken())

	require.NoError(t, c.Logout())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.GetAccessToken())
	assert.Empty(t, store.GetRefreshToken())
	assert.Empty(t, store.GetUserID())
}
