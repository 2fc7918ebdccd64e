package filters

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/exampartner/cli/internal/api"
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

func testManager(t *testing.T, fetcher CatalogFetcher, policy ReadyPolicy) (*Manager, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewManager(fetcher, s.KV(), s.CatalogRepo(), policy), s
}

func TestReadyPolicy(t *testing.T) {
	full := Selection{Exam: "WAEC", Year: "2023", Subject: "Mathematics"}
	noYear := Selection{Exam: "WAEC", Subject: "Mathematics"}

	if !RequireAll.Ready(full) {
		t.Error("RequireAll should accept a full selection")
	}
	if RequireAll.Ready(noYear) {
		t.Error("RequireAll should reject a selection without year")
	}
	if !RequireExamSubject.Ready(noYear) {
		t.Error("RequireExamSubject should accept exam+subject")
	}
	if RequireExamSubject.Ready(Selection{Exam: "WAEC"}) {
		t.Error("RequireExamSubject should reject a missing subject")
	}

	missing := RequireAll.Missing(Selection{Subject: "Mathematics"})
	if len(missing) != 2 || missing[0] != "exam" || missing[1] != "year" {
		t.Errorf("Missing = %v", missing)
	}
}

func TestSetFieldPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	m, s := testManager(t, &fakeFetcher{}, RequireAll)

	if _, err := m.SetExam(ctx, "NECO"); err != nil {
		t.Fatalf("set exam: %v", err)
	}
	if _, err := m.SetYear(ctx, "2022"); err != nil {
		t.Fatalf("set year: %v", err)
	}
	ready, err := m.SetSubject(ctx, "Mathematics")
	if err != nil {
		t.Fatalf("set subject: %v", err)
	}
	if !ready {
		t.Error("selection should be ready after the last required field")
	}

	// A second manager over the same store sees the persisted selection.
	m2 := NewManager(&fakeFetcher{}, s.KV(), s.CatalogRepo(), RequireAll)
	if err := m2.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := m2.Selection(); got.Exam != "NECO" || got.Year != "2022" || got.Subject != "Mathematics" {
		t.Errorf("restored selection = %+v", got)
	}
}

func TestClearingFieldReblocks(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(t, &fakeFetcher{}, RequireAll)

	m.SetExam(ctx, "WAEC")
	m.SetYear(ctx, "2023")
	m.SetSubject(ctx, "Mathematics")
	if !m.Ready() {
		t.Fatal("expected ready")
	}

	ready, _ := m.SetYear(ctx, "")
	if ready {
		t.Error("clearing a required field must re-block loading")
	}
}

func TestFetchCatalog_LiveRefreshesCache(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{values: &api.FilterValues{
		OK:       true,
		Exams:    []string{"WAEC", "NECO"},
		Years:    []int{2022, 2023},
		Subjects: []string{"Mathematics"},
	}}
	m, s := testManager(t, fetcher, RequireAll)

	cat, err := m.FetchCatalog(ctx, "objective")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(cat.Exams) != 2 {
		t.Errorf("Exams = %v", cat.Exams)
	}

	rec, err := s.CatalogRepo().Load(ctx, "objective")
	if err != nil || rec == nil {
		t.Fatalf("cache not written: rec=%v err=%v", rec, err)
	}
}

func TestFetchCatalog_FallsBackToFreshCache(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{err: api.ErrNetwork}
	m, s := testManager(t, fetcher, RequireAll)

	s.CatalogRepo().Save(ctx, &store.CatalogRecord{
		Scope:     "objective",
		Exams:     []string{"JAMB"},
		Years:     []int{2021},
		Subjects:  []string{"Mathematics"},
		FetchedAt: time.Now().Add(-time.Hour),
	})

	cat, err := m.FetchCatalog(ctx, "objective")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(cat.Exams) != 1 || cat.Exams[0] != "JAMB" {
		t.Errorf("Exams = %v, want cached JAMB", cat.Exams)
	}
}

func TestFetchCatalog_StaleCacheNotServed(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{err: api.ErrNetwork}
	m, s := testManager(t, fetcher, RequireAll)

	s.CatalogRepo().Save(ctx, &store.CatalogRecord{
		Scope:     "objective",
		Exams:     []string{"JAMB"},
		FetchedAt: time.Now().Add(-CacheTTL - time.Minute),
	})

	_, err := m.FetchCatalog(ctx, "objective")
	if !errors.Is(err, ErrNoCatalog) {
		t.Errorf("err = %v, want ErrNoCatalog", err)
	}
}

func TestFetchCatalog_NoCacheNoNetwork(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(t, &fakeFetcher{err: api.ErrNetwork}, RequireAll)

	_, err := m.FetchCatalog(ctx, "theory")
	if !errors.Is(err, ErrNoCatalog) {
		t.Errorf("err = %v, want ErrNoCatalog", err)
	}
}

func TestFirstTime(t *testing.T) {
	ctx := context.Background()
	m, s := testManager(t, &fakeFetcher{}, RequireAll)

	if !m.FirstTime(ctx) {
		t.Error("fresh store should be first-time")
	}

	m.SetExam(ctx, "WAEC")
	if m.FirstTime(ctx) {
		t.Error("a saved filter field ends first-time status")
	}

	m.Clear(ctx)
	s.KV().Set(ctx, store.KeyStarted, "1")
	if m.FirstTime(ctx) {
		t.Error("the started flag ends first-time status")
	}
}
