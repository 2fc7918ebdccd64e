package account

import (
	"context"
	"sync"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/store"
)

// ProfileAPI is the slice of the API client the manager needs.
type ProfileAPI interface {
	Register(ctx context.Context, identifier, password string) (*api.AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*api.AuthResult, error)
	Me(ctx context.Context) (*api.Profile, error)
}

// RefreshOutcome describes what a profile refresh did to the session.
type RefreshOutcome struct {
	State State

	// UpgradedToPaid is set when the refresh crossed the unpaid→paid
	// edge. The list endpoint behaves differently for paid users, so the
	// pager must clear any paywall state and reload page zero.
	UpgradedToPaid bool

	// Stale is set when a newer refresh was issued while this one was in
	// flight; the result was discarded and State is the current state.
	Stale bool
}

// Manager owns the token lifecycle and derives the session state from
// profile fetches. A token restored from storage is never trusted until
// a profile fetch confirms it; the server is the source of truth.
type Manager struct {
	client ProfileAPI
	kv     *store.KV

	mu         sync.Mutex
	state      State
	identifier string
	email      string
	issuedSeq  uint64
}

// NewManager builds a Manager starting in LoggedOut.
func NewManager(client ProfileAPI, kv *store.KV) *Manager {
	return &Manager{client: client, kv: kv}
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Identifier returns the validated identity, or "" when logged out.
func (m *Manager) Identifier() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identifier
}

// ReceiptEmail returns the best known email for payment receipts: the
// profile email if present, else the identifier when it is an email.
func (m *Manager) ReceiptEmail() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.email != "" {
		return m.email
	}
	if IsEmail(m.identifier) {
		return m.identifier
	}
	return ""
}

// SetReceiptEmail records an email saved to the profile mid-session.
func (m *Manager) SetReceiptEmail(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.email = email
}

// Register creates an account, stores the token and refreshes the
// profile. A server rejection is returned verbatim.
func (m *Manager) Register(ctx context.Context, identifier, password string) (*RefreshOutcome, error) {
	res, err := m.client.Register(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	return m.adoptToken(ctx, res.Token)
}

// Login exchanges credentials for a token and refreshes the profile.
func (m *Manager) Login(ctx context.Context, identifier, password string) (*RefreshOutcome, error) {
	res, err := m.client.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	return m.adoptToken(ctx, res.Token)
}

func (m *Manager) adoptToken(ctx context.Context, token string) (*RefreshOutcome, error) {
	if err := m.kv.Set(ctx, store.KeyToken, token); err != nil {
		return nil, err
	}
	return m.RefreshProfile(ctx)
}

// RefreshProfile re-validates the current token against /me and moves
// the state machine accordingly. A response without an identifier, or
// any server rejection, forces LoggedOut locally, whatever the cached
// flags said. Completions are ordered by issue sequence: if a newer
// refresh started while this one was in flight, the result is dropped.
func (m *Manager) RefreshProfile(ctx context.Context) (*RefreshOutcome, error) {
	token, err := m.kv.Get(ctx, store.KeyToken)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if token == "" {
		m.applyLoggedOutLocked()
		out := &RefreshOutcome{State: m.state}
		m.mu.Unlock()
		return out, nil
	}
	m.issuedSeq++
	seq := m.issuedSeq
	wasPaid := m.state.Paid()
	m.mu.Unlock()

	profile, fetchErr := m.client.Me(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if seq != m.issuedSeq {
		return &RefreshOutcome{State: m.state, Stale: true}, nil
	}

	if fetchErr != nil || profile == nil || profile.Identifier == "" {
		m.applyLoggedOutLocked()
		return &RefreshOutcome{State: m.state}, fetchErr
	}

	m.identifier = profile.Identifier
	if profile.Email != "" {
		m.email = profile.Email
	}
	if profile.IsPaid {
		m.state = LoggedInPaid
	} else {
		m.state = LoggedInUnpaid
	}

	return &RefreshOutcome{
		State:          m.state,
		UpgradedToPaid: !wasPaid && m.state == LoggedInPaid,
	}, nil
}

// Logout clears the token, the derived identity and the admin key. The
// reason is the caller's to report; the manager treats both the same.
func (m *Manager) Logout(ctx context.Context, reason LogoutReason) error {
	if err := m.kv.Delete(ctx, store.KeyToken); err != nil {
		return err
	}
	if err := m.kv.Delete(ctx, store.KeyAdminKey); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.issuedSeq++ // invalidate any in-flight refresh
	m.applyLoggedOutLocked()
	return nil
}

func (m *Manager) applyLoggedOutLocked() {
	m.state = LoggedOut
	m.identifier = ""
	m.email = ""
}
