package store

import (
	"context"
	"fmt"
	"time"

	"github.com/exampartner/cli/ent"
	"github.com/exampartner/cli/ent/catalogsnapshot"
)

// CatalogRecord is a cached filter catalog together with its fetch time.
type CatalogRecord struct {
	Scope     string
	Exams     []string
	Years     []int
	Subjects  []string
	FetchedAt time.Time
}

// CatalogRepo persists filter-catalog snapshots for offline fallback.
type CatalogRepo interface {
	// Save stores rec, replacing any previous snapshot for the same scope.
	Save(ctx context.Context, rec *CatalogRecord) error

	// Load returns the snapshot for scope, or nil if none exists.
	Load(ctx context.Context, scope string) (*CatalogRecord, error)
}

type entCatalogRepo struct {
	client *ent.Client
}

func (r *entCatalogRepo) Save(ctx context.Context, rec *CatalogRecord) error {
	n, err := r.client.CatalogSnapshot.Update().
		Where(catalogsnapshot.ScopeEQ(rec.Scope)).
		SetExams(rec.Exams).
		SetYears(rec.Years).
		SetSubjects(rec.Subjects).
		SetFetchedAt(rec.FetchedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update catalog snapshot: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CatalogSnapshot.Create().
		SetScope(rec.Scope).
		SetExams(rec.Exams).
		SetYears(rec.Years).
		SetSubjects(rec.Subjects).
		SetFetchedAt(rec.FetchedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save catalog snapshot: %w", err)
	}
	return nil
}

func (r *entCatalogRepo) Load(ctx context.Context, scope string) (*CatalogRecord, error) {
	s, err := r.client.CatalogSnapshot.Query().
		Where(catalogsnapshot.ScopeEQ(scope)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	return &CatalogRecord{
		Scope:     s.Scope,
		Exams:     s.Exams,
		Years:     s.Years,
		Subjects:  s.Subjects,
		FetchedAt: s.FetchedAt,
	}, nil
}
