package account

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/store"
)

type fakeAPI struct {
	auth    *api.AuthResult
	authErr error

	profile    *api.Profile
	profileErr error

	// beforeMe runs just before Me returns, letting tests interleave a
	// competing operation while a refresh is "in flight".
	beforeMe func()
}

func (f *fakeAPI) Register(ctx context.Context, identifier, password string) (*api.AuthResult, error) {
	return f.auth, f.authErr
}

func (f *fakeAPI) Login(ctx context.Context, identifier, password string) (*api.AuthResult, error) {
	return f.auth, f.authErr
}

func (f *fakeAPI) Me(ctx context.Context) (*api.Profile, error) {
	if f.beforeMe != nil {
		f.beforeMe()
	}
	return f.profile, f.profileErr
}

func testKV(t *testing.T) *store.KV {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.KV()
}

func TestLogin_ResolvesPaidState(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{
		auth:    &api.AuthResult{Token: "tok"},
		profile: &api.Profile{Identifier: "foo@bar.com", IsPaid: true},
	}
	m := NewManager(f, testKV(t))

	out, err := m.Login(ctx, "foo@bar.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.State != LoggedInPaid {
		t.Errorf("State = %v, want LoggedInPaid", out.State)
	}
	if !out.UpgradedToPaid {
		t.Error("logging straight into a paid account crosses the paid edge")
	}
	if m.Identifier() != "foo@bar.com" {
		t.Errorf("Identifier = %q", m.Identifier())
	}
}

func TestLogin_ServerRejection(t *testing.T) {
	f := &fakeAPI{authErr: &api.HTTPError{Status: 401, Message: "Invalid credentials"}}
	m := NewManager(f, testKV(t))

	_, err := m.Login(context.Background(), "foo@bar.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if m.State() != LoggedOut {
		t.Errorf("State = %v, want LoggedOut", m.State())
	}
}

func TestRefresh_UnpaidToPaidEdge(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{
		auth:    &api.AuthResult{Token: "tok"},
		profile: &api.Profile{Identifier: "user", IsPaid: false},
	}
	m := NewManager(f, testKV(t))

	out, _ := m.Login(ctx, "user", "pw")
	if out.State != LoggedInUnpaid || out.UpgradedToPaid {
		t.Fatalf("outcome = %+v", out)
	}

	f.profile = &api.Profile{Identifier: "user", IsPaid: true}
	out, err := m.RefreshProfile(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !out.UpgradedToPaid {
		t.Error("expected the unpaid→paid edge to be reported")
	}

	// A second refresh in the same state is not another upgrade.
	out, _ = m.RefreshProfile(ctx)
	if out.UpgradedToPaid {
		t.Error("paid→paid must not re-report the upgrade")
	}
}

func TestRefresh_MissingIdentifierForcesLoggedOut(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{
		auth:    &api.AuthResult{Token: "tok"},
		profile: &api.Profile{Identifier: "user", IsPaid: true},
	}
	m := NewManager(f, testKV(t))
	m.Login(ctx, "user", "pw")

	f.profile = &api.Profile{}
	out, _ := m.RefreshProfile(ctx)
	if out.State != LoggedOut {
		t.Errorf("State = %v, want LoggedOut", out.State)
	}
	if m.Identifier() != "" {
		t.Errorf("Identifier = %q, want empty", m.Identifier())
	}
}

func TestRefresh_WithoutTokenIsLoggedOut(t *testing.T) {
	f := &fakeAPI{profile: &api.Profile{Identifier: "ghost", IsPaid: true}}
	m := NewManager(f, testKV(t))

	out, err := m.RefreshProfile(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if out.State != LoggedOut {
		t.Errorf("State = %v, want LoggedOut (no token, no trust)", out.State)
	}
}

func TestRefresh_StaleCompletionDiscarded(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{
		auth:    &api.AuthResult{Token: "tok"},
		profile: &api.Profile{Identifier: "user", IsPaid: true},
	}
	m := NewManager(f, testKV(t))

	m.Login(ctx, "user", "pw")

	// While this refresh is in flight the user logs out; its completion
	// must not resurrect the session.
	f.beforeMe = func() {
		f.beforeMe = nil
		m.Logout(ctx, LogoutUser)
	}
	out, _ := m.RefreshProfile(ctx)
	if !out.Stale {
		t.Error("expected the overtaken refresh to be marked stale")
	}
	if m.State() != LoggedOut {
		t.Errorf("State = %v, want LoggedOut", m.State())
	}
}

func TestLogout_ClearsTokenAndAdminKey(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)
	f := &fakeAPI{
		auth:    &api.AuthResult{Token: "tok"},
		profile: &api.Profile{Identifier: "user"},
	}
	m := NewManager(f, kv)
	m.Login(ctx, "user", "pw")
	kv.Set(ctx, store.KeyAdminKey, "secret")

	if err := m.Logout(ctx, LogoutUser); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if m.State() != LoggedOut {
		t.Errorf("State = %v", m.State())
	}
	tok, _ := kv.Get(ctx, store.KeyToken)
	if tok != "" {
		t.Errorf("token after logout = %q", tok)
	}
	key, _ := kv.Get(ctx, store.KeyAdminKey)
	if key != "" {
		t.Errorf("admin key after logout = %q", key)
	}
}

func TestReceiptEmail(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{
		auth:    &api.AuthResult{Token: "tok"},
		profile: &api.Profile{Identifier: "foo@bar.com"},
	}
	m := NewManager(f, testKV(t))
	m.Login(ctx, "foo@bar.com", "pw")
	if got := m.ReceiptEmail(); got != "foo@bar.com" {
		t.Errorf("ReceiptEmail = %q, want the email identifier", got)
	}

	// Phone identifier with no profile email: no receipt email known.
	f.profile = &api.Profile{Identifier: "08012345678"}
	m2 := NewManager(f, testKV(t))
	m2.Login(ctx, "08012345678", "pw")
	if got := m2.ReceiptEmail(); got != "" {
		t.Errorf("ReceiptEmail = %q, want empty", got)
	}

	m2.SetReceiptEmail("me@mail.com")
	if got := m2.ReceiptEmail(); got != "me@mail.com" {
		t.Errorf("ReceiptEmail = %q", got)
	}
}

func TestIsEmail(t *testing.T) {
	if !IsEmail("foo@bar.com") {
		t.Error(`IsEmail("foo@bar.com") = false`)
	}
	if IsEmail("08012345678") {
		t.Error(`IsEmail("08012345678") = true`)
	}
	if IsEmail("a b@c.d") {
		t.Error("whitespace must be rejected")
	}
	if IsEmail("no-at-sign.com") {
		t.Error("missing @ must be rejected")
	}
}
