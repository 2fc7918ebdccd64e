package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(tok string) TokenSource {
	return func(context.Context) string { return tok }
}

func TestDo_BearerAndContentType(t *testing.T) {
	var gotAuth, gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"t2"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", staticToken("tok-1"))
	_, err := c.Login(context.Background(), "user", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "application/json", gotCT)
}

func TestDo_TokenSourceReadPerRequest(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"identifier":"u"}`))
	}))
	defer srv.Close()

	tok := "first"
	c := New(srv.URL, func(context.Context) string { return tok })

	c.Me(context.Background())
	assert.Equal(t, "Bearer first", gotAuth)

	tok = ""
	c.Me(context.Background())
	assert.Empty(t, gotAuth, "no Authorization header once the token is cleared")
}

func TestDo_DetailMessageOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Login(context.Background(), "user", "wrong")
	require.Error(t, err)

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 401, he.Status)
	assert.Equal(t, "Invalid credentials", he.Message)
	assert.True(t, IsUnauthorized(err))
}

func TestDo_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Me(context.Background())
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 502, he.Status)
	assert.Equal(t, "upstream exploded", he.Message)
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, nil)
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestQuestions_PaywallStatusAndBodyFlag(t *testing.T) {
	t.Run("402 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"detail":"upgrade required"}`))
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		_, err := c.Questions(context.Background(), "objective", 20, 0, "", "", "")
		assert.ErrorIs(t, err, ErrPaywall)
	})

	t.Run("paywall flag in 200 body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"paywall":true,"items":[]}`))
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		_, err := c.Questions(context.Background(), "objective", 20, 0, "", "", "")
		assert.ErrorIs(t, err, ErrPaywall)
	})
}

func TestQuestions_QueryParams(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"q1"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	items, err := c.Questions(context.Background(), "objective", 20, 40, "WAEC", "2020", "Physics")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "q1", items[0].ID)
	assert.Equal(t, "/questions/objective", gotPath)
	assert.Contains(t, gotQuery, "limit=20")
	assert.Contains(t, gotQuery, "offset=40")
	assert.Contains(t, gotQuery, "exam=WAEC")
	assert.Contains(t, gotQuery, "year=2020")
	assert.Contains(t, gotQuery, "subject=Physics")
}

func TestDo_EmptyBodySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	assert.NoError(t, c.SetEmail(context.Background(), "me@mail.com"))
}

func TestAdminCalls_SendKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-admin-key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"paid":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	res, err := c.AdminReconcile(context.Background(), "secret", "ref-1")
	require.NoError(t, err)
	assert.True(t, res.Paid)
	assert.Equal(t, "secret", gotKey)
}

func TestRefundRequest_Encoding(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.AdminRefund(context.Background(), "secret", RefundRequest{Reference: "ref-1"})
	require.NoError(t, err)
	assert.Equal(t, "ref-1", gotBody["reference"])
	_, hasAmount := gotBody["amount_kobo"]
	assert.False(t, hasAmount, "nil amount must be omitted for a full refund")
}

func TestDiagramURL(t *testing.T) {
	c := New("https://api.example.com/", nil)
	assert.Equal(t, "https://api.example.com/static/diagrams/fig1.png", c.DiagramURL("fig1.png"))
	assert.Equal(t, "https://api.example.com", c.BaseURL())
}
