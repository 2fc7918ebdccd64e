// Package upgrade walks an unpaid account through the one-time
// purchase: receipt email, hosted checkout, then server-side
// verification of the reference.
package upgrade

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/pager"
	"github.com/exampartner/cli/internal/payments"
	"github.com/exampartner/cli/internal/router"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/ui/components"
	"github.com/exampartner/cli/internal/ui/layout"
	"github.com/exampartner/cli/internal/ui/theme"
)

type stage int

const (
	stageEmail stage = iota
	stageStarting
	stageCheckout
	stageVerifying
	stageDone
)

// Deps bundles what the upgrade flow needs.
type Deps struct {
	Flow     *payments.Flow
	Accounts *account.Manager
	Pages    *pager.Group
}

// UpgradeScreen drives the purchase flow.
type UpgradeScreen struct {
	deps Deps

	stage     stage
	email     components.TextInput
	checkout  *payments.Checkout
	verifyBtn components.Button
	errMsg    string
}

var _ screen.Screen = (*UpgradeScreen)(nil)

// New creates an UpgradeScreen.
func New(deps Deps) *UpgradeScreen {
	return &UpgradeScreen{
		deps:  deps,
		email: components.NewTextInput("email for your receipt", 64),
	}
}

func (u *UpgradeScreen) Title() string { return "Upgrade" }

func (u *UpgradeScreen) Init() tea.Cmd {
	if u.deps.Accounts.State().Paid() {
		u.stage = stageDone
		return nil
	}
	// Skip the email step when the account already has one.
	if email := u.deps.Accounts.ReceiptEmail(); email != "" {
		return u.begin(email)
	}
	u.stage = stageEmail
	return u.email.Init()
}

func (u *UpgradeScreen) begin(email string) tea.Cmd {
	u.stage = stageStarting
	u.errMsg = ""
	return func() tea.Msg {
		co, err := u.deps.Flow.Begin(context.Background(), email)
		return checkoutMsg{checkout: co, err: err}
	}
}

// saveAndBegin stores the receipt email on the profile and only then
// starts checkout; a failed save keeps the account and the charge from
// disagreeing about where the receipt goes.
func (u *UpgradeScreen) saveAndBegin(email string) tea.Cmd {
	u.stage = stageStarting
	u.errMsg = ""
	return func() tea.Msg {
		ctx := context.Background()
		if err := u.deps.Flow.SaveReceiptEmail(ctx, email); err != nil {
			return checkoutMsg{err: err}
		}
		co, err := u.deps.Flow.Begin(ctx, email)
		return checkoutMsg{checkout: co, err: err}
	}
}

func (u *UpgradeScreen) verify() tea.Cmd {
	u.stage = stageVerifying
	u.errMsg = ""
	co := u.checkout
	return func() tea.Msg {
		ctx := context.Background()
		if err := u.deps.Flow.Verify(ctx, co); err != nil {
			return verifyMsg{err: err}
		}
		out, err := u.deps.Accounts.RefreshProfile(ctx)
		return verifyMsg{outcome: out, err: err}
	}
}

func (u *UpgradeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkoutMsg:
		if msg.err != nil {
			u.stage = stageEmail
			u.errMsg = msg.err.Error()
			return u, u.email.Init()
		}
		u.checkout = msg.checkout
		u.stage = stageCheckout
		u.verifyBtn = components.NewButton("I have paid, verify it", true, u.verify)
		return u, nil

	case verifyMsg:
		if msg.err != nil {
			u.stage = stageCheckout
			u.errMsg = msg.err.Error()
			return u, nil
		}
		u.stage = stageDone
		if msg.outcome != nil && msg.outcome.UpgradedToPaid {
			// The list endpoint serves more to paid accounts, so the
			// old pages are no longer representative.
			u.deps.Pages.Reset()
		}
		return u, nil

	case tea.KeyMsg:
		switch u.stage {
		case stageEmail:
			if msg.String() == "enter" {
				email := strings.TrimSpace(u.email.Value())
				if !account.IsEmail(email) {
					u.errMsg = "enter a valid email address"
					return u, nil
				}
				u.deps.Accounts.SetReceiptEmail(email)
				return u, u.saveAndBegin(email)
			}
			var cmd tea.Cmd
			u.email, cmd = u.email.Update(msg)
			return u, cmd

		case stageCheckout:
			var cmd tea.Cmd
			u.verifyBtn, cmd = u.verifyBtn.Update(msg)
			return u, cmd

		case stageDone:
			if msg.String() == "enter" {
				return u, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}
	return u, nil
}

func (u *UpgradeScreen) View(width, height int) string {
	var sections []string

	switch u.stage {
	case stageEmail:
		sections = append(sections, theme.Title.Render("Full access · ₦1,000 one-time"))
		sections = append(sections, "")
		sections = append(sections, theme.Body.Render("Where should we send your receipt?"))
		sections = append(sections, u.email.View())

	case stageStarting:
		sections = append(sections, theme.Hint.Render("preparing checkout…"))

	case stageCheckout:
		details := strings.Join([]string{
			theme.Body.Render("Pay ₦1,000 through the Paystack checkout using:"),
			"",
			theme.Body.Render("Reference:  " + u.checkout.Reference),
			theme.Body.Render("Email:      " + u.checkout.Email),
		}, "\n")
		sections = append(sections, theme.Title.Render("Complete your payment"))
		sections = append(sections, "")
		sections = append(sections, theme.Card.Render(details))
		sections = append(sections, "")
		sections = append(sections, u.verifyBtn.View())

	case stageVerifying:
		sections = append(sections, theme.Hint.Render("verifying payment…"))

	case stageDone:
		sections = append(sections, theme.Paid.Render("Full access is unlocked"))
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press Enter to continue"))
	}

	if u.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.ErrorText.Render(u.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (u *UpgradeScreen) KeyHints() []layout.KeyHint {
	switch u.stage {
	case stageCheckout:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Verify payment"},
			{Key: "Esc", Description: "Back"},
		}
	case stageDone:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
