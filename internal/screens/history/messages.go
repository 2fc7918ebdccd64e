package history

import "github.com/exampartner/cli/internal/api"

type historyMsg struct {
	records []api.PaymentRecord
	err     error
}
