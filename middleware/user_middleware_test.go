package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardbin/cardbin-api/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestUserID(t *testing.T, build func(r *http.Request)) (uint, bool) {
	t.Helper()

	var gotID uint
	var gotOK bool
	handler := WithUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	build(req)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return gotID, gotOK
}

func TestWithUserBearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := auth.CreateToken(9)
	require.NoError(t, err)

	id, ok := requestUserID(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.True(t, ok)
	assert.Equal(t, uint(9), id)
}

func TestWithUserQueryParam(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := auth.CreateToken(3)
	require.NoError(t, err)

	id, ok := requestUserID(t, func(r *http.Request) {
		q := r.URL.Query()
		q.Set("token", token)
		r.URL.RawQuery = q.Encode()
	})
	assert.True(t, ok)
	assert.Equal(t, uint(3), id)
}

func TestWithUserInvalidTokenStaysAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	_, ok := requestUserID(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer garbage")
	})
	assert.False(t, ok)
}

func TestWithUserNoTokenStaysAnonymous(t *testing.T) {
	_, ok := requestUserID(t, func(r *http.Request) {})
	assert.False(t, ok)
}
