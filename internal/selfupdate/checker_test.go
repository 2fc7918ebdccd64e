package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/exampartner/cli/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	t.Run("newer release available", func(t *testing.T) {
		res, err := checker.Check(context.Background(), &CheckInput{Version: "v1.3.2"})
		require.NoError(t, err)
		assert.True(t, res.UpdateAvailable)
		assert.Equal(t, "v1.4.0", res.LatestVersion)
	})

	t.Run("already current", func(t *testing.T) {
		res, err := checker.Check(context.Background(), &CheckInput{Version: "v1.4.0"})
		require.NoError(t, err)
		assert.False(t, res.UpdateAvailable)
	})

	t.Run("running ahead of latest", func(t *testing.T) {
		res, err := checker.Check(context.Background(), &CheckInput{Version: "v1.5.0"})
		require.NoError(t, err)
		assert.False(t, res.UpdateAvailable)
	})

	t.Run("tag without v prefix still compares", func(t *testing.T) {
		res, err := checker.Check(context.Background(), &CheckInput{Version: "1.3.0"})
		require.NoError(t, err)
		assert.True(t, res.UpdateAvailable)
	})
}

func TestCheck_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}
