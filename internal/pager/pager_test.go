package pager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/store"
)

type fakeLister struct {
	// pages maps offset to a canned response.
	pages map[int][]api.QuestionSummary
	errs  map[int]error

	// onFetch runs before each response, letting tests interleave a
	// reset while a load is "in flight".
	onFetch func()

	lastOffset int
	lastLimit  int
	lastMode   string
	calls      int
}

func (f *fakeLister) Questions(ctx context.Context, mode string, limit, offset int, exam, year, subject string) ([]api.QuestionSummary, error) {
	f.calls++
	f.lastOffset = offset
	f.lastLimit = limit
	f.lastMode = mode
	if f.onFetch != nil {
		f.onFetch()
	}
	if err, ok := f.errs[offset]; ok {
		return nil, err
	}
	return f.pages[offset], nil
}

type fakeSel struct {
	sel   filters.Selection
	ready bool
}

func (f *fakeSel) Selection() filters.Selection { return f.sel }
func (f *fakeSel) Ready() bool                  { return f.ready }

func fullPage(prefix string) []api.QuestionSummary {
	out := make([]api.QuestionSummary, PageSize)
	for i := range out {
		out[i] = api.QuestionSummary{ID: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return out
}

func testController(t *testing.T, lister *fakeLister) *Controller {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	sel := &fakeSel{sel: filters.Selection{Exam: "WAEC", Year: "2020", Subject: "Physics"}, ready: true}
	return NewController(lister, sel, s.KV(), "objective")
}

func TestLoadPage_FullPage(t *testing.T) {
	f := &fakeLister{pages: map[int][]api.QuestionSummary{0: fullPage("p0")}}
	c := testController(t, f)

	snap, err := c.LoadPage(context.Background(), 0, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.State != StateLoaded {
		t.Errorf("State = %v, want StateLoaded", snap.State)
	}
	if snap.PageIndex != 0 || len(snap.Items) != PageSize {
		t.Errorf("page %d with %d items", snap.PageIndex, len(snap.Items))
	}
	if f.lastLimit != PageSize {
		t.Errorf("limit = %d, want %d", f.lastLimit, PageSize)
	}
}

func TestLoadPage_NotReady(t *testing.T) {
	f := &fakeLister{}
	c := testController(t, f)
	c.sel.(*fakeSel).ready = false

	if _, err := c.LoadPage(context.Background(), 0, false); !errors.Is(err, ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
	if f.calls != 0 {
		t.Error("fetched despite incomplete selection")
	}
}

func TestLoadPage_EmptyBeyondEndRollsBack(t *testing.T) {
	ctx := context.Background()
	f := &fakeLister{pages: map[int][]api.QuestionSummary{
		0: fullPage("p0"),
		PageSize: nil, // page 1 is empty
	}}
	c := testController(t, f)

	c.LoadPage(ctx, 0, true)
	snap, _ := c.Next(ctx, true)
	if snap.State != StateEndReached {
		t.Errorf("State = %v, want StateEndReached", snap.State)
	}
	if snap.PageIndex != 0 {
		t.Errorf("PageIndex = %d, cursor must stay on the last good page", snap.PageIndex)
	}
	if len(snap.Items) != PageSize {
		t.Error("previous page must remain on screen")
	}
}

func TestLoadPage_EmptyFirstPageIsLoaded(t *testing.T) {
	f := &fakeLister{}
	c := testController(t, f)

	snap, _ := c.LoadPage(context.Background(), 0, true)
	if snap.State != StateLoaded {
		t.Errorf("State = %v, want StateLoaded (empty corpus is not end-of-list)", snap.State)
	}
	if len(snap.Items) != 0 {
		t.Errorf("Items = %d", len(snap.Items))
	}
}

func TestLoadPage_ShortPagePaidVsUnpaid(t *testing.T) {
	ctx := context.Background()
	short := fullPage("s")[:5]

	f := &fakeLister{pages: map[int][]api.QuestionSummary{0: short}}
	c := testController(t, f)
	snap, _ := c.LoadPage(ctx, 0, true)
	if snap.State != StateEndReached {
		t.Errorf("paid short page: State = %v, want StateEndReached", snap.State)
	}

	// An unpaid account is served a truncated list, so a short page
	// says nothing about where the corpus ends.
	f2 := &fakeLister{pages: map[int][]api.QuestionSummary{0: short}}
	c2 := testController(t, f2)
	snap, _ = c2.LoadPage(ctx, 0, false)
	if snap.State != StateLoaded {
		t.Errorf("unpaid short page: State = %v, want StateLoaded", snap.State)
	}
}

func TestLoadPage_PaywallKeepsCursor(t *testing.T) {
	ctx := context.Background()
	f := &fakeLister{
		pages: map[int][]api.QuestionSummary{0: fullPage("p0")},
		errs:  map[int]error{PageSize: api.ErrPaywall},
	}
	c := testController(t, f)

	c.LoadPage(ctx, 0, false)
	snap, err := c.Next(ctx, false)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if snap.State != StatePaywalled {
		t.Errorf("State = %v, want StatePaywalled", snap.State)
	}
	if snap.PageIndex != 0 || len(snap.Items) != PageSize {
		t.Error("paywall must not move the cursor or drop the page")
	}
}

func TestLoadPage_ErrorKeepsCursor(t *testing.T) {
	ctx := context.Background()
	f := &fakeLister{
		pages: map[int][]api.QuestionSummary{0: fullPage("p0")},
		errs:  map[int]error{PageSize: fmt.Errorf("%w: connection refused", api.ErrNetwork)},
	}
	c := testController(t, f)

	c.LoadPage(ctx, 0, false)
	snap, _ := c.Next(ctx, false)
	if snap.State != StateFailed {
		t.Errorf("State = %v, want StateFailed", snap.State)
	}
	if !errors.Is(snap.Err, api.ErrNetwork) {
		t.Errorf("Err = %v", snap.Err)
	}
	if snap.PageIndex != 0 {
		t.Errorf("PageIndex = %d after failed fetch", snap.PageIndex)
	}
}

func TestNext_BlockedAtEnd(t *testing.T) {
	ctx := context.Background()
	f := &fakeLister{pages: map[int][]api.QuestionSummary{0: fullPage("p0")[:3]}}
	c := testController(t, f)

	c.LoadPage(ctx, 0, true) // short paid page, end reached
	before := f.calls
	snap, _ := c.Next(ctx, true)
	if f.calls != before {
		t.Error("Next fetched past a known end")
	}
	if snap.State != StateEndReached {
		t.Errorf("State = %v", snap.State)
	}
}

func TestPrev_FloorsAtZero(t *testing.T) {
	ctx := context.Background()
	f := &fakeLister{pages: map[int][]api.QuestionSummary{0: fullPage("p0")}}
	c := testController(t, f)

	c.LoadPage(ctx, 0, false)
	before := f.calls
	snap, _ := c.Prev(ctx, false)
	if f.calls != before {
		t.Error("Prev fetched below page zero")
	}
	if snap.PageIndex != 0 {
		t.Errorf("PageIndex = %d", snap.PageIndex)
	}
}

func TestLoadPage_MarksStarted(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	f := &fakeLister{pages: map[int][]api.QuestionSummary{0: fullPage("p0")}}
	sel := &fakeSel{sel: filters.Selection{Exam: "WAEC", Year: "2020", Subject: "Physics"}, ready: true}
	c := NewController(f, sel, s.KV(), "objective")

	c.LoadPage(ctx, 0, false)
	got, _ := s.KV().Get(ctx, store.KeyStarted)
	if got != "1" {
		t.Errorf("started flag = %q, want \"1\"", got)
	}
}

func TestReset_DiscardsInFlightLoad(t *testing.T) {
	ctx := context.Background()
	f := &fakeLister{pages: map[int][]api.QuestionSummary{0: fullPage("p0")}}
	c := testController(t, f)

	f.onFetch = func() {
		f.onFetch = nil
		c.Reset()
	}
	snap, _ := c.LoadPage(ctx, 0, false)
	if snap.State != StateIdle {
		t.Errorf("State = %v, overtaken load must not apply", snap.State)
	}
	if len(snap.Items) != 0 {
		t.Error("overtaken load leaked items")
	}
}

func TestGroup_ByModeAndReset(t *testing.T) {
	ctx := context.Background()
	f := &fakeLister{pages: map[int][]api.QuestionSummary{0: fullPage("g")}}
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	sel := &fakeSel{sel: filters.Selection{Exam: "WAEC", Year: "2020", Subject: "Physics"}, ready: true}
	g := NewGroup(f, sel, s.KV())

	if g.ByMode(ModeObjective) != g.Objective || g.ByMode(ModeTheory) != g.Theory {
		t.Fatal("ByMode should return the matching controller")
	}
	if g.ByMode("") != g.Objective {
		t.Error("unknown mode should fall back to objective")
	}

	g.Theory.LoadPage(ctx, 0, true)
	if f.lastMode != ModeTheory {
		t.Errorf("theory controller queried mode %q", f.lastMode)
	}
	g.Objective.LoadPage(ctx, 0, true)
	if f.lastMode != ModeObjective {
		t.Errorf("objective controller queried mode %q", f.lastMode)
	}

	g.Reset()
	if g.Objective.Snapshot().State != StateIdle {
		t.Error("Reset should return the objective pager to idle")
	}
	if g.Theory.Snapshot().State != StateIdle {
		t.Error("Reset should return the theory pager to idle")
	}
}
