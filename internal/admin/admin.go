// Package admin wraps the operator endpoints: reconcile a payment,
// queue a refund and read the audit trail. The admin key is entered per
// session and never written to disk.
package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/store"
)

// Audit limit bounds, matching what the backend will serve.
const (
	DefaultAuditLimit = 50
	maxAuditLimit     = 200
)

var (
	// ErrKeyMissing means no admin key has been entered this session.
	ErrKeyMissing = errors.New("admin: no admin key set")

	// ErrNoReference means a reference argument was empty.
	ErrNoReference = errors.New("admin: a payment reference is required")
)

// API is the slice of the backend client the console needs.
type API interface {
	AdminReconcile(ctx context.Context, adminKey, reference string) (*api.ReconcileResult, error)
	AdminRefund(ctx context.Context, adminKey string, req api.RefundRequest) error
	AdminAudit(ctx context.Context, adminKey string, limit int) ([]api.AuditEntry, error)
}

// Console holds the session admin key and issues operator calls.
type Console struct {
	client API
	kv     *store.KV
}

// NewConsole builds an operator console over the backend client.
func NewConsole(client API, kv *store.KV) *Console {
	return &Console{client: client, kv: kv}
}

// SetKey stores the admin key for this session.
func (c *Console) SetKey(ctx context.Context, key string) error {
	return c.kv.Set(ctx, store.KeyAdminKey, strings.TrimSpace(key))
}

// HasKey reports whether an admin key is set this session.
func (c *Console) HasKey(ctx context.Context) bool {
	key, err := c.kv.Get(ctx, store.KeyAdminKey)
	return err == nil && key != ""
}

func (c *Console) key(ctx context.Context) (string, error) {
	key, err := c.kv.Get(ctx, store.KeyAdminKey)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", ErrKeyMissing
	}
	return key, nil
}

// Reconcile re-checks a payment reference against the provider and
// reports whether the backend now considers it paid.
func (c *Console) Reconcile(ctx context.Context, reference string) (*api.ReconcileResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrNoReference
	}
	key, err := c.key(ctx)
	if err != nil {
		return nil, err
	}
	return c.client.AdminReconcile(ctx, key, reference)
}

// Refund queues a refund. amountNGN zero means a full refund; a
// positive amount is converted to kobo for the provider.
func (c *Console) Refund(ctx context.Context, reference string, amountNGN int64, note string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrNoReference
	}
	key, err := c.key(ctx)
	if err != nil {
		return err
	}

	req := api.RefundRequest{Reference: reference, MerchantNote: strings.TrimSpace(note)}
	if amountNGN > 0 {
		kobo := amountNGN * 100
		req.AmountKobo = &kobo
	}
	return c.client.AdminRefund(ctx, key, req)
}

// FetchAudit reads the most recent audit entries. limit outside 1..200
// falls back to the default.
func (c *Console) FetchAudit(ctx context.Context, limit int) ([]api.AuditEntry, error) {
	if limit < 1 || limit > maxAuditLimit {
		limit = DefaultAuditLimit
	}
	key, err := c.key(ctx)
	if err != nil {
		return nil, err
	}
	return c.client.AdminAudit(ctx, key, limit)
}
