// Package app is the root Bubble Tea model: it owns the screen stack,
// the header and footer chrome, and the idle-session watchdog.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/pager"
	"github.com/exampartner/cli/internal/payments"
	"github.com/exampartner/cli/internal/router"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/screens/home"
	"github.com/exampartner/cli/internal/screens/login"
	"github.com/exampartner/cli/internal/ui/layout"
)

// idleCheckInterval is how often the watchdog looks at the idle timer.
const idleCheckInterval = 15 * time.Second

// Options carries the wired services into the root model.
type Options struct {
	Accounts *account.Manager
	Filters  *filters.Manager
	Pages    *pager.Group
	Client   *api.Client
	Payments *payments.Flow
	Log      zerolog.Logger
}

type idleTickMsg time.Time

type sessionRestoredMsg struct {
	outcome *account.RefreshOutcome
	err     error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	idle   *account.IdleTimer
	width  int
	height int
}

func newAppModel(opts Options) *AppModel {
	m := &AppModel{
		opts: opts,
		idle: &account.IdleTimer{},
	}
	m.router = router.New(m.loginScreen("checking stored session…"))
	return m
}

func (m *AppModel) loginScreen(notice string) screen.Screen {
	return login.New(m.opts.Accounts, m.homeScreen, notice)
}

func (m *AppModel) homeScreen() screen.Screen {
	// Every trip through here means a fresh authentication, so the idle
	// countdown starts over.
	m.idle.Arm(time.Now())
	return home.New(home.Deps{
		Accounts: m.opts.Accounts,
		Filters:  m.opts.Filters,
		Pages:    m.opts.Pages,
		Client:   m.opts.Client,
		Payments: m.opts.Payments,
	}, func(notice string) screen.Screen {
		m.idle.Disarm()
		return m.loginScreen(notice)
	})
}

func (m *AppModel) Init() tea.Cmd {
	restore := func() tea.Msg {
		out, err := m.opts.Accounts.RefreshProfile(context.Background())
		return sessionRestoredMsg{outcome: out, err: err}
	}
	return tea.Batch(restore, m.idleTick())
}

func (m *AppModel) idleTick() tea.Cmd {
	return tea.Tick(idleCheckInterval, func(t time.Time) tea.Msg {
		return idleTickMsg(t)
	})
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionRestoredMsg:
		if msg.outcome != nil && msg.outcome.State.Authenticated() {
			m.opts.Log.Info().Str("identifier", m.opts.Accounts.Identifier()).Msg("session restored")
			return m, func() tea.Msg {
				return router.ResetStackMsg{Screen: m.homeScreen()}
			}
		}
		// No usable session; drop the "checking" notice.
		return m, func() tea.Msg {
			return router.ResetStackMsg{Screen: m.loginScreen("")}
		}

	case idleTickMsg:
		if m.idle.Fire(time.Time(msg)) {
			m.opts.Log.Info().Msg("session expired after inactivity")
			_ = m.opts.Accounts.Logout(context.Background(), account.LogoutIdle)
			m.opts.Pages.Reset()
			reset := func() tea.Msg {
				return router.ResetStackMsg{Screen: m.loginScreen("Signed out after 15 minutes of inactivity.")}
			}
			return m, tea.Batch(reset, m.idleTick())
		}
		return m, m.idleTick()

	case tea.KeyMsg:
		// Any keypress counts as activity.
		m.idle.Touch(time.Now())
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	identity := m.opts.Accounts.Identifier()
	plan := "FREE"
	if m.opts.Accounts.State().Paid() {
		plan = "PAID"
	}
	header := layout.RenderHeader(title, identity, plan, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
