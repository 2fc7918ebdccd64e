package filterpick

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/router"
	"github.com/exampartner/cli/internal/store"
)

type fakeFetcher struct {
	values *api.FilterValues
	err    error
	calls  int
}

func (f *fakeFetcher) Filters(ctx context.Context, qtype, exam string, year int) (*api.FilterValues, error) {
	f.calls++
	return f.values, f.err
}

func testCatalogValues() *api.FilterValues {
	return &api.FilterValues{
		OK:       true,
		Exams:    []string{"WAEC", "NECO"},
		Years:    []int{2022, 2023},
		Subjects: []string{"Mathematics", "Physics"},
	}
}

func testManager(t *testing.T, fetcher filters.CatalogFetcher) *filters.Manager {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return filters.NewManager(fetcher, s.KV(), s.CatalogRepo(), filters.RequireAll)
}

func loadCatalog(t *testing.T, f *FilterScreen) {
	t.Helper()
	cmd := f.Init()
	if cmd == nil {
		t.Fatal("Init should fetch the catalog")
	}
	f.Update(cmd())
}

func pressEnter(f *FilterScreen) tea.Cmd {
	_, cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestWalkThroughAllStages(t *testing.T) {
	m := testManager(t, &fakeFetcher{values: testCatalogValues()})
	f := New(m, "objective", nil)
	loadCatalog(t, f)

	if f.stage != stageExam {
		t.Fatalf("expected exam stage, got %v", f.stage)
	}

	// Move the cursor to NECO before choosing.
	f.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	pressEnter(f)
	if f.stage != stageYear {
		t.Fatalf("expected year stage, got %v", f.stage)
	}

	pressEnter(f)
	if f.stage != stageSubject {
		t.Fatalf("expected subject stage, got %v", f.stage)
	}

	cmd := pressEnter(f)
	if cmd == nil {
		t.Fatal("choosing the subject should finish the walk")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("with no onDone the walk should pop back")
	}

	sel := m.Selection()
	if sel.Exam != "NECO" || sel.Year != "2022" || sel.Subject != "Mathematics" {
		t.Errorf("selection = %+v", sel)
	}
	if !m.Ready() {
		t.Error("a full walk should leave the selection ready")
	}
}

func TestOnDoneRunsWhenReady(t *testing.T) {
	m := testManager(t, &fakeFetcher{values: testCatalogValues()})

	done := 0
	f := New(m, "objective", func() tea.Cmd {
		done++
		return nil
	})
	loadCatalog(t, f)

	pressEnter(f)
	pressEnter(f)
	pressEnter(f)

	if done != 1 {
		t.Errorf("onDone should run exactly once, ran %d times", done)
	}
}

func TestCatalogFailureOffersRetry(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	m := testManager(t, fetcher)
	f := New(m, "objective", nil)
	loadCatalog(t, f)

	if f.stage != stageFailed {
		t.Fatalf("expected failed stage, got %v", f.stage)
	}
	view := f.View(80, 24)
	if !strings.Contains(view, "cannot reach the server") {
		t.Error("offline failures should get the friendly message")
	}

	fetcher.values = testCatalogValues()
	fetcher.err = nil
	_, cmd := f.Update(tea.KeyPressMsg{Code: 'r'})
	if cmd == nil {
		t.Fatal("r should refetch the catalog")
	}
	f.Update(cmd())
	if f.stage != stageExam {
		t.Errorf("expected exam stage after retry, got %v", f.stage)
	}
	if fetcher.calls != 2 {
		t.Errorf("expected 2 fetches, got %d", fetcher.calls)
	}
}

func TestBreadcrumbTracksProgress(t *testing.T) {
	m := testManager(t, &fakeFetcher{values: testCatalogValues()})
	f := New(m, "objective", nil)
	loadCatalog(t, f)

	view := f.View(80, 24)
	if !strings.Contains(view, "Exam: ?") {
		t.Error("unset fields should show a placeholder")
	}

	pressEnter(f)
	view = f.View(80, 24)
	if !strings.Contains(view, "Exam: WAEC") {
		t.Error("breadcrumb should show the chosen exam")
	}
	if !strings.Contains(view, "still needed: year, subject") {
		t.Error("remaining fields should be listed")
	}
}
