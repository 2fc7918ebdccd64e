// Package home is the authenticated main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/pager"
	"github.com/exampartner/cli/internal/payments"
	"github.com/exampartner/cli/internal/router"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/screens/browse"
	"github.com/exampartner/cli/internal/screens/filterpick"
	"github.com/exampartner/cli/internal/screens/history"
	"github.com/exampartner/cli/internal/screens/upgrade"
	"github.com/exampartner/cli/internal/ui/components"
	"github.com/exampartner/cli/internal/ui/theme"
)

// Deps bundles the services the home menu hands to its child screens.
type Deps struct {
	Accounts *account.Manager
	Filters  *filters.Manager
	Pages    *pager.Group
	Client   *api.Client
	Payments *payments.Flow
}

// HomeScreen is the authenticated main menu.
type HomeScreen struct {
	deps         Deps
	loginFactory func(notice string) screen.Screen
	menu         components.Menu
	mode         string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. loginFactory builds the screen shown after
// signing out.
func New(deps Deps, loginFactory func(notice string) screen.Screen) *HomeScreen {
	h := &HomeScreen{deps: deps, loginFactory: loginFactory, mode: pager.ModeObjective}

	upgradeDeps := &upgrade.Deps{
		Flow:     deps.Payments,
		Accounts: deps.Accounts,
		Pages:    deps.Pages,
	}

	pushBrowse := func() tea.Msg {
		return router.PushScreenMsg{
			Screen: browse.New(deps.Pages.ByMode(h.mode), deps.Accounts, deps.Client, upgradeDeps),
		}
	}

	items := []components.MenuItem{
		{Label: "BROWSE QUESTIONS", Action: func() tea.Cmd {
			// First-time users pick filters before any list loads.
			if !deps.Filters.Ready() {
				return func() tea.Msg {
					fs := filterpick.New(deps.Filters, h.mode, func() tea.Cmd {
						deps.Pages.Reset()
						return func() tea.Msg { return router.ReplaceScreenMsg{Screen: browse.New(deps.Pages.ByMode(h.mode), deps.Accounts, deps.Client, upgradeDeps)} }
					})
					return router.PushScreenMsg{Screen: fs}
				}
			}
			return pushBrowse
		}},
		{Label: "SWITCH QUESTION MODE", Action: func() tea.Cmd {
			if h.mode == pager.ModeObjective {
				h.mode = pager.ModeTheory
			} else {
				h.mode = pager.ModeObjective
			}
			return nil
		}},
		{Label: "CHANGE FILTERS", Action: func() tea.Cmd {
			return func() tea.Msg {
				fs := filterpick.New(deps.Filters, h.mode, func() tea.Cmd {
					// The loaded pages belong to the old selection.
					deps.Pages.Reset()
					return func() tea.Msg { return router.PopScreenMsg{} }
				})
				return router.PushScreenMsg{Screen: fs}
			}
		}},
		{Label: "UPGRADE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: upgrade.New(*upgradeDeps)}
			}
		}},
		{Label: "PAYMENT HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Payments)}
			}
		}},
		{Label: "SIGN OUT", Action: func() tea.Cmd {
			return h.signOut
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) signOut() tea.Msg {
	_ = h.deps.Accounts.Logout(context.Background(), account.LogoutUser)
	h.deps.Pages.Reset()
	return router.ResetStackMsg{Screen: h.loginFactory("")}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("ExamPartner"))
	sections = append(sections, theme.Subtitle.Render("past questions, answered and explained"))
	sections = append(sections, "")

	sections = append(sections, theme.Hint.Render("mode: "+h.mode))
	sel := h.deps.Filters.Selection()
	if sel.IsEmpty() {
		if h.deps.Filters.FirstTime(context.Background()) {
			sections = append(sections, theme.Hint.Render("first time here? browse questions to pick an exam"))
		} else {
			sections = append(sections, theme.Hint.Render("no filters chosen yet"))
		}
	} else {
		parts := make([]string, 0, 3)
		for _, v := range []string{sel.Exam, sel.Year, sel.Subject} {
			if v != "" {
				parts = append(parts, v)
			}
		}
		sections = append(sections, theme.Hint.Render("studying: "+strings.Join(parts, " · ")))
	}
	sections = append(sections, "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
