package home

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/pager"
	"github.com/exampartner/cli/internal/payments"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/store"
)

func testHome(t *testing.T) *HomeScreen {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	kv := s.KV()
	client := api.New("http://127.0.0.1:1", nil)
	filterMgr := filters.NewManager(client, kv, s.CatalogRepo(), filters.RequireAll)
	if err := filterMgr.Restore(context.Background()); err != nil {
		t.Fatalf("restore filters: %v", err)
	}

	deps := Deps{
		Accounts: account.NewManager(client, kv),
		Filters:  filterMgr,
		Pages:    pager.NewGroup(client, filterMgr, kv),
		Client:   client,
		Payments: payments.NewFlow(client),
	}
	return New(deps, func(string) screen.Screen { return nil })
}

func TestModeToggle(t *testing.T) {
	h := testHome(t)

	if h.mode != pager.ModeObjective {
		t.Fatalf("mode = %q, want objective by default", h.mode)
	}

	// Second menu entry switches the question mode.
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if h.mode != pager.ModeTheory {
		t.Errorf("mode = %q, want theory after toggle", h.mode)
	}
	if !strings.Contains(h.View(80, 24), "mode: theory") {
		t.Error("the active mode should be visible")
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if h.mode != pager.ModeObjective {
		t.Errorf("mode = %q, want objective after a second toggle", h.mode)
	}
}
