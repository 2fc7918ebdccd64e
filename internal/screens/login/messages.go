package login

import "github.com/exampartner/cli/internal/account"

type authDoneMsg struct {
	outcome *account.RefreshOutcome
	err     error
}
