package browse

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/pager"
	"github.com/exampartner/cli/internal/question"
	"github.com/exampartner/cli/internal/store"
)

type fakeLister struct {
	pages map[int][]api.QuestionSummary
	err   error
}

func (f *fakeLister) Questions(ctx context.Context, mode string, limit, offset int, exam, year, subject string) ([]api.QuestionSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[offset], nil
}

type fakeSel struct{}

func (fakeSel) Selection() filters.Selection {
	return filters.Selection{Exam: "WAEC", Year: "2023", Subject: "Mathematics"}
}
func (fakeSel) Ready() bool { return true }

type fakeProfile struct{}

func (fakeProfile) Register(ctx context.Context, identifier, password string) (*api.AuthResult, error) {
	return nil, nil
}
func (fakeProfile) Login(ctx context.Context, identifier, password string) (*api.AuthResult, error) {
	return nil, nil
}
func (fakeProfile) Me(ctx context.Context) (*api.Profile, error) { return nil, nil }

type fakeOpener struct{}

func (fakeOpener) Question(ctx context.Context, id string) (*question.Question, error) {
	return &question.Question{ID: id}, nil
}
func (fakeOpener) DiagramURL(name string) string { return name }

func fullPage(prefix string) []api.QuestionSummary {
	out := make([]api.QuestionSummary, pager.PageSize)
	for i := range out {
		out[i] = api.QuestionSummary{ID: fmt.Sprintf("%s-%d", prefix, i), QuestionText: "text"}
	}
	return out
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

func TestInitReloadsAfterPaidEdgeClearsPaywall(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)
	lister := &fakeLister{err: api.ErrPaywall}
	pages := pager.NewController(lister, fakeSel{}, kv, pager.ModeObjective)
	accounts := account.NewManager(fakeProfile{}, kv)

	pages.LoadPage(ctx, 0, false)
	b := New(pages, accounts, fakeOpener{}, nil)
	b.Init()

	if !strings.Contains(b.renderStatus(), "free preview limit reached") {
		t.Fatal("expected the paywall banner while paywalled")
	}

	// The account crossed the paid edge on the upgrade screen: the
	// pager was reset while this screen was covered.
	lister.err = nil
	lister.pages = map[int][]api.QuestionSummary{0: fullPage("q")}
	pages.Reset()

	cmd := b.Init()
	if cmd == nil {
		t.Fatal("Init after a reset should reload page zero")
	}
	b.Update(cmd())

	status := b.renderStatus()
	if strings.Contains(status, "free preview limit reached") {
		t.Errorf("paywall banner survived the paid edge: %q", status)
	}
	if b.snap.State != pager.StateLoaded || b.snap.PageIndex != 0 {
		t.Errorf("state = %v page = %d, want loaded page 0", b.snap.State, b.snap.PageIndex)
	}
	if len(b.snap.Items) != pager.PageSize {
		t.Errorf("items = %d", len(b.snap.Items))
	}
}

func TestInitReusesLoadedSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)
	lister := &fakeLister{pages: map[int][]api.QuestionSummary{0: fullPage("q")}}
	pages := pager.NewController(lister, fakeSel{}, kv, pager.ModeObjective)
	accounts := account.NewManager(fakeProfile{}, kv)

	pages.LoadPage(ctx, 0, false)
	b := New(pages, accounts, fakeOpener{}, nil)

	// Popping back from the viewer must not refetch a loaded page.
	if cmd := b.Init(); cmd != nil {
		t.Error("Init with a loaded page should not fetch")
	}
	if b.snap.State != pager.StateLoaded {
		t.Errorf("state = %v", b.snap.State)
	}
}
