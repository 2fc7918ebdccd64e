package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestKV_DurableRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	kv := s.KV()

	if err := kv.Set(ctx, KeyFilterExam, "WAEC"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := kv.Get(ctx, KeyFilterExam)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "WAEC" {
		t.Errorf("Get = %q, want %q", got, "WAEC")
	}

	// Second write must overwrite, not duplicate.
	if err := kv.Set(ctx, KeyFilterExam, "JAMB"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = kv.Get(ctx, KeyFilterExam)
	if got != "JAMB" {
		t.Errorf("Get after overwrite = %q, want %q", got, "JAMB")
	}
}

func TestKV_AbsentKeyReadsEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.KV().Get(context.Background(), KeyStarted)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Errorf("Get = %q, want empty", got)
	}
}

func TestKV_SessionScopedNotPersisted(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	kv := s.KV()

	if err := kv.Set(ctx, KeyToken, "tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := kv.Get(ctx, KeyToken)
	if got != "tok-123" {
		t.Errorf("Get = %q, want tok-123", got)
	}

	// The token must never appear in the durable settings table.
	n, err := s.Client().Setting.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count settings: %v", err)
	}
	if n != 0 {
		t.Errorf("settings table has %d rows, want 0", n)
	}
}

func TestKV_UnknownKeyRejected(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.KV().Get(context.Background(), "no_such_key"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := s.KV().Set(context.Background(), "no_such_key", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestKV_DeleteAndWipe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	kv := s.KV()

	kv.Set(ctx, KeyStarted, "1")
	kv.Set(ctx, KeyAdminKey, "secret")

	if err := kv.Delete(ctx, KeyAdminKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := kv.Get(ctx, KeyAdminKey)
	if got != "" {
		t.Errorf("admin key after delete = %q, want empty", got)
	}

	if err := kv.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}
	got, _ = kv.Get(ctx, KeyStarted)
	if got != "" {
		t.Errorf("started flag after wipe = %q, want empty", got)
	}
}

func TestCatalogRepo_SaveLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.CatalogRepo()

	fetched := time.Now().Truncate(time.Second)
	rec := &CatalogRecord{
		Scope:     "objective",
		Exams:     []string{"NECO", "WAEC"},
		Years:     []int{2022, 2023},
		Subjects:  []string{"Mathematics"},
		FetchedAt: fetched,
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "objective")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if len(got.Exams) != 2 || got.Exams[0] != "NECO" {
		t.Errorf("Exams = %v", got.Exams)
	}
	if len(got.Years) != 2 || got.Years[1] != 2023 {
		t.Errorf("Years = %v", got.Years)
	}

	// Re-save with the same scope must replace.
	rec.Exams = []string{"JAMB"}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	got, _ = repo.Load(ctx, "objective")
	if len(got.Exams) != 1 || got.Exams[0] != "JAMB" {
		t.Errorf("Exams after re-save = %v", got.Exams)
	}
}

func TestCatalogRepo_LoadMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.CatalogRepo().Load(context.Background(), "theory")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil record, got %+v", got)
	}
}
