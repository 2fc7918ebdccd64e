package filters

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/store"
)

// CacheTTL is the freshness window for a cached catalog. A cache older
// than this is never served, even when the live fetch fails.
const CacheTTL = 24 * time.Hour

// ErrNoCatalog means the live fetch failed and no fresh-enough cache
// exists. It is a retryable connectivity condition, distinct from an
// empty catalog; the manager never invents default values.
var ErrNoCatalog = errors.New("filter catalog unavailable")

// CatalogFetcher is the slice of the API client the manager needs.
type CatalogFetcher interface {
	Filters(ctx context.Context, qtype, exam string, year int) (*api.FilterValues, error)
}

// Manager owns the filter selection: it persists each field, fetches the
// valid value catalog (with a time-boxed cache fallback) and answers the
// readiness question that gates list loading.
type Manager struct {
	fetcher CatalogFetcher
	kv      *store.KV
	cache   store.CatalogRepo
	policy  ReadyPolicy
	now     func() time.Time

	sel Selection
}

// NewManager builds a Manager. now may be nil (defaults to time.Now).
func NewManager(fetcher CatalogFetcher, kv *store.KV, cache store.CatalogRepo, policy ReadyPolicy) *Manager {
	return &Manager{
		fetcher: fetcher,
		kv:      kv,
		cache:   cache,
		policy:  policy,
		now:     time.Now,
	}
}

// Restore loads the persisted selection.
func (m *Manager) Restore(ctx context.Context) error {
	exam, err := m.kv.Get(ctx, store.KeyFilterExam)
	if err != nil {
		return err
	}
	year, err := m.kv.Get(ctx, store.KeyFilterYear)
	if err != nil {
		return err
	}
	subject, err := m.kv.Get(ctx, store.KeyFilterSubject)
	if err != nil {
		return err
	}
	m.sel = Selection{Exam: exam, Year: year, Subject: subject}
	return nil
}

// Selection returns the current selection.
func (m *Manager) Selection() Selection {
	return m.sel
}

// Ready reports whether the selection satisfies the configured policy.
func (m *Manager) Ready() bool {
	return m.policy.Ready(m.sel)
}

// Missing lists the fields still required by the policy.
func (m *Manager) Missing() []string {
	return m.policy.Missing(m.sel)
}

// SetExam persists a new exam value and reports whether the selection is
// ready afterwards.
func (m *Manager) SetExam(ctx context.Context, v string) (bool, error) {
	if err := m.kv.Set(ctx, store.KeyFilterExam, v); err != nil {
		return m.Ready(), err
	}
	m.sel.Exam = v
	return m.Ready(), nil
}

// SetYear persists a new year value.
func (m *Manager) SetYear(ctx context.Context, v string) (bool, error) {
	if err := m.kv.Set(ctx, store.KeyFilterYear, v); err != nil {
		return m.Ready(), err
	}
	m.sel.Year = v
	return m.Ready(), nil
}

// SetSubject persists a new subject value.
func (m *Manager) SetSubject(ctx context.Context, v string) (bool, error) {
	if err := m.kv.Set(ctx, store.KeyFilterSubject, v); err != nil {
		return m.Ready(), err
	}
	m.sel.Subject = v
	return m.Ready(), nil
}

// Clear resets all three fields.
func (m *Manager) Clear(ctx context.Context) error {
	for _, key := range []string{store.KeyFilterExam, store.KeyFilterYear, store.KeyFilterSubject} {
		if err := m.kv.Set(ctx, key, ""); err != nil {
			return err
		}
	}
	m.sel = Selection{}
	return nil
}

// FirstTime reports whether this user has neither loaded a list before
// nor saved any filter field; the start gate is shown only to them.
func (m *Manager) FirstTime(ctx context.Context) bool {
	started, err := m.kv.Get(ctx, store.KeyStarted)
	if err != nil {
		return false
	}
	return started != "1" && m.sel.IsEmpty()
}

// FetchCatalog returns the valid filter values for qtype, narrowed by
// the currently selected exam/year. A live fetch that succeeds refreshes
// the cache; a failing fetch falls back to a cached catalog no older
// than CacheTTL, and otherwise yields ErrNoCatalog.
func (m *Manager) FetchCatalog(ctx context.Context, qtype string) (*Catalog, error) {
	year := 0
	if m.sel.Year != "" {
		if y, err := strconv.Atoi(m.sel.Year); err == nil {
			year = y
		}
	}

	live, fetchErr := m.fetcher.Filters(ctx, qtype, m.sel.Exam, year)
	if fetchErr == nil && live != nil && live.Exams != nil {
		rec := &store.CatalogRecord{
			Scope:     cacheScope(qtype),
			Exams:     live.Exams,
			Years:     live.Years,
			Subjects:  live.Subjects,
			FetchedAt: m.now(),
		}
		// A failed cache write is not fatal; the live data is still good.
		_ = m.cache.Save(ctx, rec)
		return &Catalog{Exams: live.Exams, Years: live.Years, Subjects: live.Subjects}, nil
	}

	cached, err := m.cache.Load(ctx, cacheScope(qtype))
	if err == nil && cached != nil && m.now().Sub(cached.FetchedAt) <= CacheTTL {
		return &Catalog{Exams: cached.Exams, Years: cached.Years, Subjects: cached.Subjects}, nil
	}

	if fetchErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCatalog, fetchErr)
	}
	return nil, ErrNoCatalog
}

func cacheScope(qtype string) string {
	if qtype == "" {
		return "objective"
	}
	return qtype
}
