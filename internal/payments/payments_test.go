package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/exampartner/cli/internal/api"
)

type fakeBackend struct {
	publicKey    string
	publicKeyErr error

	verify    *api.VerifyResult
	verifyErr error

	savedEmail   string
	verifiedRef  string
	historyLimit int
}

func (f *fakeBackend) PaymentPublicKey(ctx context.Context) (string, error) {
	return f.publicKey, f.publicKeyErr
}

func (f *fakeBackend) SetEmail(ctx context.Context, email string) error {
	f.savedEmail = email
	return nil
}

func (f *fakeBackend) VerifyPayment(ctx context.Context, reference, email string) (*api.VerifyResult, error) {
	f.verifiedRef = reference
	return f.verify, f.verifyErr
}

func (f *fakeBackend) PaymentHistory(ctx context.Context, limit int) ([]api.PaymentRecord, error) {
	f.historyLimit = limit
	return nil, nil
}

func TestBegin(t *testing.T) {
	f := NewFlow(&fakeBackend{publicKey: "pk_test_abc"})

	co, err := f.Begin(context.Background(), "user@mail.com")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if !strings.HasPrefix(co.Reference, "expt-") {
		t.Errorf("Reference = %q", co.Reference)
	}
	if co.AmountKobo != 100000 || co.Currency != "NGN" {
		t.Errorf("amount %d %s, want 100000 NGN kobo", co.AmountKobo, co.Currency)
	}
	if co.PublicKey != "pk_test_abc" || co.Email != "user@mail.com" {
		t.Errorf("checkout = %+v", co)
	}

	co2, _ := f.Begin(context.Background(), "user@mail.com")
	if co2.Reference == co.Reference {
		t.Error("references must be unique per attempt")
	}
}

func TestBegin_RequiresEmail(t *testing.T) {
	f := NewFlow(&fakeBackend{publicKey: "pk_test_abc"})
	if _, err := f.Begin(context.Background(), "08012345678"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("err = %v, want ErrEmailRequired", err)
	}
}

func TestBegin_RejectsBadPublicKey(t *testing.T) {
	f := NewFlow(&fakeBackend{publicKey: "sk_live_oops"})
	if _, err := f.Begin(context.Background(), "user@mail.com"); !errors.Is(err, ErrBadPublicKey) {
		t.Fatalf("err = %v, want ErrBadPublicKey", err)
	}
}

func TestVerify(t *testing.T) {
	b := &fakeBackend{verify: &api.VerifyResult{OK: true, Paid: true}}
	f := NewFlow(b)
	co := &Checkout{Reference: "expt-1", Email: "user@mail.com"}

	if err := f.Verify(context.Background(), co); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if b.verifiedRef != "expt-1" {
		t.Errorf("verified reference = %q", b.verifiedRef)
	}

	// An unconfirmed charge never unlocks the account.
	b.verify = &api.VerifyResult{OK: true, Paid: false}
	if err := f.Verify(context.Background(), co); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("err = %v, want ErrNotConfirmed", err)
	}
}

func TestSaveReceiptEmail(t *testing.T) {
	b := &fakeBackend{}
	f := NewFlow(b)

	if err := f.SaveReceiptEmail(context.Background(), "not-an-email"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("err = %v", err)
	}
	if err := f.SaveReceiptEmail(context.Background(), "me@mail.com"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if b.savedEmail != "me@mail.com" {
		t.Errorf("saved = %q", b.savedEmail)
	}
}

func TestHistory_ClampsLimit(t *testing.T) {
	b := &fakeBackend{}
	f := NewFlow(b)

	f.History(context.Background(), 0)
	if b.historyLimit != 10 {
		t.Errorf("limit = %d, want the default 10", b.historyLimit)
	}
	f.History(context.Background(), 500)
	if b.historyLimit != 10 {
		t.Errorf("limit = %d, want the default 10", b.historyLimit)
	}
	f.History(context.Background(), 25)
	if b.historyLimit != 25 {
		t.Errorf("limit = %d", b.historyLimit)
	}
}
