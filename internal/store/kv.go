package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/exampartner/cli/ent"
	"github.com/exampartner/cli/ent/setting"
)

// Durability selects the storage tier for a key.
type Durability int

const (
	// SessionScoped keys live in memory and vanish when the process exits.
	SessionScoped Durability = iota
	// Durable keys are written to the SQLite settings table.
	Durable
)

// Well-known keys. The durability of every key is declared here, once,
// instead of being re-decided at each call site.
const (
	KeyAPIBase       = "api_base"
	KeyFilterExam    = "filter_exam"
	KeyFilterYear    = "filter_year"
	KeyFilterSubject = "filter_subject"
	KeyStarted       = "started"
	KeyToken         = "token"
	KeyAdminKey      = "admin_key"
)

var keyPolicy = map[string]Durability{
	KeyAPIBase:       Durable,
	KeyFilterExam:    Durable,
	KeyFilterYear:    Durable,
	KeyFilterSubject: Durable,
	KeyStarted:       Durable,
	// Token and admin key are deliberately session-scoped: on a shared
	// machine neither should survive the process.
	KeyToken:    SessionScoped,
	KeyAdminKey: SessionScoped,
}

// KV is a two-tier key-value facade: durable keys go to SQLite, session
// keys to an in-memory map. An absent key reads as the empty string.
type KV struct {
	client *ent.Client

	mu      sync.RWMutex
	session map[string]string
}

func newKV(client *ent.Client) *KV {
	return &KV{
		client:  client,
		session: make(map[string]string),
	}
}

// Get returns the stored value for key, or "" if the key is absent.
func (kv *KV) Get(ctx context.Context, key string) (string, error) {
	pol, ok := keyPolicy[key]
	if !ok {
		return "", fmt.Errorf("unknown storage key %q", key)
	}

	if pol == SessionScoped {
		kv.mu.RLock()
		defer kv.mu.RUnlock()
		return kv.session[key], nil
	}

	s, err := kv.client.Setting.Query().
		Where(setting.NameEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("read setting %q: %w", key, err)
	}
	return s.Value, nil
}

// Set stores value under key in the tier declared for it.
func (kv *KV) Set(ctx context.Context, key, value string) error {
	pol, ok := keyPolicy[key]
	if !ok {
		return fmt.Errorf("unknown storage key %q", key)
	}

	if pol == SessionScoped {
		kv.mu.Lock()
		defer kv.mu.Unlock()
		kv.session[key] = value
		return nil
	}

	n, err := kv.client.Setting.Update().
		Where(setting.NameEQ(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = kv.client.Setting.Create().
		SetName(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key from its tier. Deleting an absent key is a no-op.
func (kv *KV) Delete(ctx context.Context, key string) error {
	pol, ok := keyPolicy[key]
	if !ok {
		return fmt.Errorf("unknown storage key %q", key)
	}

	if pol == SessionScoped {
		kv.mu.Lock()
		defer kv.mu.Unlock()
		delete(kv.session, key)
		return nil
	}

	_, err := kv.client.Setting.Delete().
		Where(setting.NameEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// Wipe clears both tiers. Used by the reset command.
func (kv *KV) Wipe(ctx context.Context) error {
	kv.mu.Lock()
	kv.session = make(map[string]string)
	kv.mu.Unlock()

	if _, err := kv.client.Setting.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("wipe settings: %w", err)
	}
	return nil
}
