package upgrade

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/payments"
	"github.com/exampartner/cli/internal/store"
)

type fakePayAPI struct {
	calls       []string
	setEmailErr error
}

func (f *fakePayAPI) PaymentPublicKey(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "public-key")
	return "pk_test_abc", nil
}

func (f *fakePayAPI) SetEmail(ctx context.Context, email string) error {
	f.calls = append(f.calls, "set-email")
	return f.setEmailErr
}

func (f *fakePayAPI) VerifyPayment(ctx context.Context, reference, email string) (*api.VerifyResult, error) {
	f.calls = append(f.calls, "verify")
	return &api.VerifyResult{OK: true, Paid: true}, nil
}

func (f *fakePayAPI) PaymentHistory(ctx context.Context, limit int) ([]api.PaymentRecord, error) {
	return nil, nil
}

type fakeProfile struct{}

func (fakeProfile) Register(ctx context.Context, identifier, password string) (*api.AuthResult, error) {
	return nil, nil
}
func (fakeProfile) Login(ctx context.Context, identifier, password string) (*api.AuthResult, error) {
	return nil, nil
}
func (fakeProfile) Me(ctx context.Context) (*api.Profile, error) { return nil, nil }

func testKV(t *testing.T) *store.KV {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.KV()
}

func newEmailStage(t *testing.T, pay *fakePayAPI) *UpgradeScreen {
	t.Helper()
	u := New(Deps{
		Flow:     payments.NewFlow(pay),
		Accounts: account.NewManager(fakeProfile{}, testKV(t)),
	})
	u.Init()
	if u.stage != stageEmail {
		t.Fatalf("expected email stage, got %v", u.stage)
	}
	return u
}

func submitEmail(u *UpgradeScreen, email string) tea.Cmd {
	u.email.Model.SetValue(email)
	_, cmd := u.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestEmailSavedBeforeCheckoutStarts(t *testing.T) {
	pay := &fakePayAPI{}
	u := newEmailStage(t, pay)

	cmd := submitEmail(u, "buyer@example.com")
	if cmd == nil {
		t.Fatal("submitting the email should start checkout")
	}
	u.Update(cmd())

	if len(pay.calls) != 2 || pay.calls[0] != "set-email" || pay.calls[1] != "public-key" {
		t.Fatalf("calls = %v, want the email saved before checkout starts", pay.calls)
	}
	if u.stage != stageCheckout {
		t.Errorf("stage = %v, want checkout", u.stage)
	}
	if u.checkout == nil || u.checkout.Email != "buyer@example.com" {
		t.Error("checkout should carry the saved email")
	}
}

func TestEmailSaveFailureStopsCheckout(t *testing.T) {
	pay := &fakePayAPI{setEmailErr: errors.New("email rejected")}
	u := newEmailStage(t, pay)

	cmd := submitEmail(u, "buyer@example.com")
	u.Update(cmd())

	if u.stage != stageEmail {
		t.Errorf("stage = %v, a failed save must return to the email step", u.stage)
	}
	if u.errMsg == "" {
		t.Error("the save failure should be shown")
	}
	for _, c := range pay.calls {
		if c == "public-key" {
			t.Error("checkout must not start when the email save failed")
		}
	}
}

func TestInvalidEmailRejectedLocally(t *testing.T) {
	pay := &fakePayAPI{}
	u := newEmailStage(t, pay)

	if cmd := submitEmail(u, "not-an-email"); cmd != nil {
		t.Error("an invalid email should not produce a command")
	}
	if len(pay.calls) != 0 {
		t.Errorf("calls = %v, nothing should hit the network", pay.calls)
	}
	if u.errMsg == "" {
		t.Error("the validation failure should be shown")
	}
}
