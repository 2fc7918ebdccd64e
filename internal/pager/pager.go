// Package pager owns the question-list cursor. Pages are fetched by
// offset and classified into a small state machine; a fetch that fails,
// paywalls or runs past the end never moves the cursor, so the screen
// always shows the last page that actually loaded.
package pager

import (
	"context"
	"errors"
	"sync"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/store"
)

// PageSize is the fixed page length for the question list.
const PageSize = 20

// Question modes served by the backend.
const (
	ModeObjective = "objective"
	ModeTheory    = "theory"
)

// ErrNotReady is returned when a page load is attempted before the
// filter selection satisfies the ready policy.
var ErrNotReady = errors.New("pager: filter selection incomplete")

// State classifies the outcome of the most recent page load.
type State int

const (
	// StateIdle means nothing has been loaded yet.
	StateIdle State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateLoaded means the current page rendered normally.
	StateLoaded
	// StatePaywalled means the backend refused the page for an unpaid
	// account. The cursor did not move.
	StatePaywalled
	// StateEndReached means there are no further pages. The last loaded
	// page stays on screen.
	StateEndReached
	// StateFailed means the fetch errored. The cursor did not move.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StatePaywalled:
		return "paywalled"
	case StateEndReached:
		return "end-reached"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// QuestionLister is the slice of the API client the pager needs.
type QuestionLister interface {
	Questions(ctx context.Context, mode string, limit, offset int, exam, year, subject string) ([]api.QuestionSummary, error)
}

// SelectionSource supplies the active filter selection and whether it
// is complete enough to query with.
type SelectionSource interface {
	Selection() filters.Selection
	Ready() bool
}

// Snapshot is an immutable view of the pager for rendering.
type Snapshot struct {
	State     State
	PageIndex int
	Items     []api.QuestionSummary
	Err       error
}

// CanPrev reports whether a previous page exists.
func (s Snapshot) CanPrev() bool { return s.PageIndex > 0 }

// CanNext reports whether advancing makes sense from this state.
func (s Snapshot) CanNext() bool { return s.State == StateLoaded }

// Controller drives the list cursor. All methods are safe for
// concurrent use; loads are ordered by an issue sequence so an
// overtaken fetch cannot clobber newer state.
type Controller struct {
	lister QuestionLister
	sel    SelectionSource
	kv     *store.KV
	mode   string

	mu        sync.Mutex
	state     State
	pageIndex int
	items     []api.QuestionSummary
	err       error
	started   bool
	seq       uint64
}

// NewController builds a pager for one question mode ("objective" or
// "theory").
func NewController(lister QuestionLister, sel SelectionSource, kv *store.KV, mode string) *Controller {
	if mode == "" {
		mode = ModeObjective
	}
	return &Controller{lister: lister, sel: sel, kv: kv, mode: mode}
}

// Group holds one controller per question mode. Session and entitlement
// changes invalidate every mode at once; browsing uses one at a time.
type Group struct {
	Objective *Controller
	Theory    *Controller
}

// NewGroup builds a controller per mode over the same backend slice.
func NewGroup(lister QuestionLister, sel SelectionSource, kv *store.KV) *Group {
	return &Group{
		Objective: NewController(lister, sel, kv, ModeObjective),
		Theory:    NewController(lister, sel, kv, ModeTheory),
	}
}

// ByMode returns the controller for mode, defaulting to objective.
func (g *Group) ByMode(mode string) *Controller {
	if mode == ModeTheory {
		return g.Theory
	}
	return g.Objective
}

// Reset invalidates every mode's pages.
func (g *Group) Reset() {
	g.Objective.Reset()
	g.Theory.Reset()
}

// Mode returns the question mode this pager queries.
func (c *Controller) Mode() string { return c.mode }

// Snapshot returns the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:     c.state,
		PageIndex: c.pageIndex,
		Items:     c.items,
		Err:       c.err,
	}
}

// LoadPage fetches page target and classifies the outcome. paid gates
// the short-page heuristic: an unpaid account is served a truncated
// list, so a short page only means "no more pages" for paid accounts.
func (c *Controller) LoadPage(ctx context.Context, target int, paid bool) (Snapshot, error) {
	if target < 0 {
		target = 0
	}
	if !c.sel.Ready() {
		return c.Snapshot(), ErrNotReady
	}
	sel := c.sel.Selection()

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = StateLoading
	c.mu.Unlock()

	items, fetchErr := c.lister.Questions(ctx, c.mode, PageSize, target*PageSize, sel.Exam, sel.Year, sel.Subject)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer load or reset was issued while this one was in flight.
	if seq != c.seq {
		return c.snapshotLocked(), nil
	}

	switch {
	case errors.Is(fetchErr, api.ErrPaywall):
		c.state = StatePaywalled
		c.err = nil
	case fetchErr != nil:
		c.state = StateFailed
		c.err = fetchErr
	case len(items) == 0 && target > 0:
		// Ran past the end. Keep the previous page on screen.
		c.state = StateEndReached
		c.err = nil
	default:
		c.pageIndex = target
		c.items = items
		c.err = nil
		// A short page means the end only for paid accounts, and only
		// when something came back: an empty page 0 is "no results",
		// not end-of-list.
		if paid && len(items) > 0 && len(items) < PageSize {
			c.state = StateEndReached
		} else {
			c.state = StateLoaded
		}
		c.markStartedLocked(ctx)
	}
	return c.snapshotLocked(), nil
}

// Next advances one page. From EndReached there is nothing further to
// load; from Loading the in-flight fetch wins.
func (c *Controller) Next(ctx context.Context, paid bool) (Snapshot, error) {
	c.mu.Lock()
	if c.state == StateEndReached || c.state == StateLoading {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	target := c.pageIndex + 1
	c.mu.Unlock()
	return c.LoadPage(ctx, target, paid)
}

// Prev steps back one page. Page zero is the floor.
func (c *Controller) Prev(ctx context.Context, paid bool) (Snapshot, error) {
	c.mu.Lock()
	if c.pageIndex == 0 {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	target := c.pageIndex - 1
	c.mu.Unlock()
	return c.LoadPage(ctx, target, paid)
}

// Reset returns the pager to an unloaded page zero and invalidates any
// in-flight load. Used when the filter selection changes, the account
// crosses the paid edge, or the session ends.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = StateIdle
	c.pageIndex = 0
	c.items = nil
	c.err = nil
}

// The started flag gates the first-run filter walkthrough; once any
// page has loaded the user is no longer new.
func (c *Controller) markStartedLocked(ctx context.Context) {
	if c.started {
		return
	}
	if err := c.kv.Set(ctx, store.KeyStarted, "1"); err == nil {
		c.started = true
	}
}
