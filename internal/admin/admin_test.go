package admin

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/store"
)

type fakeBackend struct {
	reconcile *api.ReconcileResult

	gotKey    string
	gotRef    string
	gotRefund api.RefundRequest
	gotLimit  int
}

func (f *fakeBackend) AdminReconcile(ctx context.Context, adminKey, reference string) (*api.ReconcileResult, error) {
	f.gotKey, f.gotRef = adminKey, reference
	return f.reconcile, nil
}

func (f *fakeBackend) AdminRefund(ctx context.Context, adminKey string, req api.RefundRequest) error {
	f.gotKey, f.gotRefund = adminKey, req
	return nil
}

func (f *fakeBackend) AdminAudit(ctx context.Context, adminKey string, limit int) ([]api.AuditEntry, error) {
	f.gotKey, f.gotLimit = adminKey, limit
	return nil, nil
}

func testConsole(t *testing.T, b API) (*Console, *store.KV) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewConsole(b, s.KV()), s.KV()
}

func TestConsole_RequiresKey(t *testing.T) {
	ctx := context.Background()
	c, _ := testConsole(t, &fakeBackend{})

	if _, err := c.Reconcile(ctx, "ref-1"); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("reconcile err = %v, want ErrKeyMissing", err)
	}
	if err := c.Refund(ctx, "ref-1", 0, ""); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("refund err = %v, want ErrKeyMissing", err)
	}
	if _, err := c.FetchAudit(ctx, 10); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("audit err = %v, want ErrKeyMissing", err)
	}
}

func TestConsole_Reconcile(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{reconcile: &api.ReconcileResult{OK: true, Paid: true}}
	c, _ := testConsole(t, b)
	c.SetKey(ctx, "  secret  ")

	res, err := c.Reconcile(ctx, " ref-1 ")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !res.Paid {
		t.Error("Paid = false")
	}
	if b.gotKey != "secret" || b.gotRef != "ref-1" {
		t.Errorf("key=%q ref=%q, inputs must be trimmed", b.gotKey, b.gotRef)
	}

	if _, err := c.Reconcile(ctx, "  "); !errors.Is(err, ErrNoReference) {
		t.Errorf("err = %v, want ErrNoReference", err)
	}
}

func TestConsole_RefundAmounts(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{}
	c, _ := testConsole(t, b)
	c.SetKey(ctx, "secret")

	if err := c.Refund(ctx, "ref-1", 0, "dup charge"); err != nil {
		t.Fatalf("refund: %v", err)
	}
	if b.gotRefund.AmountKobo != nil {
		t.Error("zero amount must request a full refund (nil kobo)")
	}
	if b.gotRefund.MerchantNote != "dup charge" {
		t.Errorf("note = %q", b.gotRefund.MerchantNote)
	}

	if err := c.Refund(ctx, "ref-1", 250, ""); err != nil {
		t.Fatalf("refund: %v", err)
	}
	if b.gotRefund.AmountKobo == nil || *b.gotRefund.AmountKobo != 25000 {
		t.Errorf("AmountKobo = %v, want 25000", b.gotRefund.AmountKobo)
	}
}

func TestConsole_AuditLimitClamp(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{}
	c, _ := testConsole(t, b)
	c.SetKey(ctx, "secret")

	c.FetchAudit(ctx, 0)
	if b.gotLimit != DefaultAuditLimit {
		t.Errorf("limit = %d, want default %d", b.gotLimit, DefaultAuditLimit)
	}
	c.FetchAudit(ctx, 1000)
	if b.gotLimit != DefaultAuditLimit {
		t.Errorf("limit = %d, want default %d", b.gotLimit, DefaultAuditLimit)
	}
	c.FetchAudit(ctx, 120)
	if b.gotLimit != 120 {
		t.Errorf("limit = %d", b.gotLimit)
	}
}

func TestFormatAudit(t *testing.T) {
	out := FormatAudit(nil)
	if out != "no audit entries" {
		t.Errorf("empty = %q", out)
	}

	out = FormatAudit([]api.AuditEntry{
		{ID: 7, CreatedAt: "2026-08-01T10:00:00Z", Action: "refund.queued", Reference: "expt-1", ActorIP: "10.0.0.1"},
		{ID: 6, CreatedAt: "2026-08-01T09:00:00Z", Action: "reconcile", Reference: "expt-1"},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}
	if !strings.Contains(lines[0], "refund.queued") || !strings.Contains(lines[0], "ip=10.0.0.1") {
		t.Errorf("line = %q", lines[0])
	}
	if strings.Contains(lines[1], "ip=") {
		t.Errorf("line = %q, empty ip must be omitted", lines[1])
	}
}
