package upgrade

import (
	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/payments"
)

type checkoutMsg struct {
	checkout *payments.Checkout
	err      error
}

type verifyMsg struct {
	outcome *account.RefreshOutcome
	err     error
}
