// Package payments drives the one-time upgrade purchase. The actual
// card entry happens in the provider's hosted checkout; this package
// prepares the checkout parameters and, critically, trusts only the
// backend's verification of the reference, never the checkout's own
// success signal.
package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/api"
)

// The upgrade is a single fixed-price purchase. The provider bills in
// kobo (1 NGN = 100 kobo).
const (
	AmountNGN  = 1000
	AmountKobo = AmountNGN * 100
	Currency   = "NGN"
)

// historyLimit bounds a payment history request.
const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

var (
	// ErrEmailRequired means no receipt email is known. Phone-number
	// accounts must supply one before checkout can start.
	ErrEmailRequired = errors.New("payments: a receipt email is required")

	// ErrBadPublicKey means the backend served a key that is not a
	// publishable checkout key. Charging against it would fail midway.
	ErrBadPublicKey = errors.New("payments: backend returned an invalid public key")

	// ErrNotConfirmed means the backend could not confirm the charge
	// for the reference. The account stays unpaid.
	ErrNotConfirmed = errors.New("payments: payment not confirmed")
)

// API is the slice of the backend client the flow needs.
type API interface {
	PaymentPublicKey(ctx context.Context) (string, error)
	SetEmail(ctx context.Context, email string) error
	VerifyPayment(ctx context.Context, reference, email string) (*api.VerifyResult, error)
	PaymentHistory(ctx context.Context, limit int) ([]api.PaymentRecord, error)
}

// Checkout holds everything the hosted widget needs for one attempt.
// The reference is generated client-side so the charge can be verified
// and reconciled even if the widget callback is lost.
type Checkout struct {
	Reference  string
	Email      string
	PublicKey  string
	AmountKobo int64
	Currency   string
}

// Flow sequences a purchase: collect email, fetch the publishable key,
// open checkout, then verify server-side.
type Flow struct {
	client API
}

// NewFlow builds a purchase flow over the given backend client.
func NewFlow(client API) *Flow {
	return &Flow{client: client}
}

// Begin validates the receipt email, fetches and checks the
// publishable key, and mints a fresh checkout reference.
func (f *Flow) Begin(ctx context.Context, email string) (*Checkout, error) {
	if !account.IsEmail(email) {
		return nil, ErrEmailRequired
	}

	key, err := f.client.PaymentPublicKey(ctx)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(key, "pk_") {
		return nil, ErrBadPublicKey
	}

	return &Checkout{
		Reference:  "expt-" + uuid.NewString(),
		Email:      email,
		PublicKey:  key,
		AmountKobo: AmountKobo,
		Currency:   Currency,
	}, nil
}

// SaveReceiptEmail validates and stores an email on the profile, for
// accounts registered with a phone number.
func (f *Flow) SaveReceiptEmail(ctx context.Context, email string) error {
	if !account.IsEmail(email) {
		return ErrEmailRequired
	}
	return f.client.SetEmail(ctx, email)
}

// Verify asks the backend whether the charge for the reference went
// through. Only a confirmed verification unlocks the account; the
// caller should refresh the profile afterwards to pick up the flag.
func (f *Flow) Verify(ctx context.Context, checkout *Checkout) error {
	res, err := f.client.VerifyPayment(ctx, checkout.Reference, checkout.Email)
	if err != nil {
		return err
	}
	if !res.OK || !res.Paid {
		return fmt.Errorf("%w (reference %s)", ErrNotConfirmed, checkout.Reference)
	}
	return nil
}

// History fetches past payments, newest first. limit outside 1..50
// falls back to the default of 10.
func (f *Flow) History(ctx context.Context, limit int) ([]api.PaymentRecord, error) {
	if limit < 1 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	return f.client.PaymentHistory(ctx, limit)
}
