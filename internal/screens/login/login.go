// Package login is the sign-in / registration screen and the root of
// the unauthenticated stack.
package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/router"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/ui/components"
	"github.com/exampartner/cli/internal/ui/layout"
	"github.com/exampartner/cli/internal/ui/theme"
)

const (
	focusIdentifier = iota
	focusPassword
)

// LoginScreen collects credentials and signs in or registers.
type LoginScreen struct {
	accounts    *account.Manager
	homeFactory func() screen.Screen

	identifier components.TextInput
	password   components.TextInput
	focus      int
	register   bool
	busy       bool
	notice     string
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen. notice is shown above the form, used for
// "session expired" after an idle logout.
func New(accounts *account.Manager, homeFactory func() screen.Screen, notice string) *LoginScreen {
	id := components.NewTextInput("email or phone number", 64)
	pw := components.NewPasswordInput("password", 64)
	pw.Model.Blur()
	return &LoginScreen{
		accounts:    accounts,
		homeFactory: homeFactory,
		identifier:  id,
		password:    pw,
		notice:      notice,
	}
}

func (l *LoginScreen) Title() string {
	if l.register {
		return "Create Account"
	}
	return "Sign In"
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.identifier.Init()
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		l.busy = false
		if msg.err != nil {
			l.errMsg = msg.err.Error()
			return l, nil
		}
		if !msg.outcome.State.Authenticated() {
			l.errMsg = "sign-in did not stick, please try again"
			return l, nil
		}
		home := l.homeFactory()
		return l, func() tea.Msg { return router.ResetStackMsg{Screen: home} }

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			l.toggleFocus()
			return l, nil
		case "ctrl+r":
			l.register = !l.register
			l.errMsg = ""
			return l, nil
		case "enter":
			if l.focus == focusIdentifier {
				l.toggleFocus()
				return l, nil
			}
			return l, l.submit()
		}
	}

	var cmd tea.Cmd
	if l.focus == focusIdentifier {
		l.identifier, cmd = l.identifier.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) toggleFocus() {
	if l.focus == focusIdentifier {
		l.focus = focusPassword
		l.identifier.Model.Blur()
		l.password.Model.Focus()
	} else {
		l.focus = focusIdentifier
		l.password.Model.Blur()
		l.identifier.Model.Focus()
	}
}

func (l *LoginScreen) submit() tea.Cmd {
	id := strings.TrimSpace(l.identifier.Value())
	pw := l.password.Value()
	if id == "" || pw == "" {
		l.errMsg = "enter an identifier and a password"
		return nil
	}

	l.busy = true
	l.errMsg = ""
	register := l.register
	return func() tea.Msg {
		ctx := context.Background()
		var (
			out *account.RefreshOutcome
			err error
		)
		if register {
			out, err = l.accounts.Register(ctx, id, pw)
		} else {
			out, err = l.accounts.Login(ctx, id, pw)
		}
		return authDoneMsg{outcome: out, err: err}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var sections []string

	title := "Sign in to ExamPartner"
	if l.register {
		title = "Create your ExamPartner account"
	}
	sections = append(sections, theme.Title.Render(title))
	sections = append(sections, "")

	if l.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(l.notice))
		sections = append(sections, "")
	}

	sections = append(sections, theme.Body.Render("Identifier"))
	sections = append(sections, l.identifier.View())
	sections = append(sections, "")
	sections = append(sections, theme.Body.Render("Password"))
	sections = append(sections, l.password.View())

	if l.busy {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("contacting server…"))
	}
	if l.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.ErrorText.Render(l.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	mode := "Create account"
	if l.register {
		mode = "Sign in instead"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+R", Description: mode},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
