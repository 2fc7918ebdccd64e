// Package browse is the paged question list.
package browse

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/pager"
	"github.com/exampartner/cli/internal/router"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/screens/upgrade"
	"github.com/exampartner/cli/internal/screens/viewer"
	"github.com/exampartner/cli/internal/ui/layout"
	"github.com/exampartner/cli/internal/ui/theme"
)

// QuestionOpener fetches full question records for the viewer.
type QuestionOpener = viewer.QuestionAPI

// BrowseScreen shows one page of the question list at a time.
type BrowseScreen struct {
	pages    *pager.Controller
	accounts *account.Manager
	opener   QuestionOpener
	upgrades *upgrade.Deps

	snap   pager.Snapshot
	cursor int
	busy   bool
}

var _ screen.Screen = (*BrowseScreen)(nil)

// New creates a BrowseScreen.
func New(pages *pager.Controller, accounts *account.Manager, opener QuestionOpener, upgrades *upgrade.Deps) *BrowseScreen {
	return &BrowseScreen{
		pages:    pages,
		accounts: accounts,
		opener:   opener,
		upgrades: upgrades,
		snap:     pages.Snapshot(),
	}
}

func (b *BrowseScreen) Title() string { return "Questions" }

// Init runs both on push and when a covering screen pops back to this
// one. Re-reading the controller picks up a Reset that happened while
// covered, e.g. the account crossing the paid edge on the upgrade
// screen; page zero then reloads without user action.
func (b *BrowseScreen) Init() tea.Cmd {
	b.snap = b.pages.Snapshot()
	if b.snap.State == pager.StateIdle {
		return b.load(0)
	}
	return nil
}

func (b *BrowseScreen) load(target int) tea.Cmd {
	b.busy = true
	paid := b.accounts.State().Paid()
	return func() tea.Msg {
		snap, err := b.pages.LoadPage(context.Background(), target, paid)
		return pageMsg{snap: snap, err: err}
	}
}

func (b *BrowseScreen) turn(next bool) tea.Cmd {
	b.busy = true
	paid := b.accounts.State().Paid()
	return func() tea.Msg {
		var (
			snap pager.Snapshot
			err  error
		)
		if next {
			snap, err = b.pages.Next(context.Background(), paid)
		} else {
			snap, err = b.pages.Prev(context.Background(), paid)
		}
		return pageMsg{snap: snap, err: err}
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		b.busy = false
		b.snap = msg.snap
		if b.cursor >= len(b.snap.Items) {
			b.cursor = 0
		}
		return b, nil

	case tea.KeyMsg:
		if b.busy {
			return b, nil
		}
		switch msg.String() {
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.snap.Items)-1 {
				b.cursor++
			}
		case "left", "p":
			if b.snap.CanPrev() {
				b.cursor = 0
				return b, b.turn(false)
			}
		case "right", "n":
			if b.snap.CanNext() {
				b.cursor = 0
				return b, b.turn(true)
			}
		case "r":
			if b.snap.State == pager.StateFailed {
				return b, b.load(b.snap.PageIndex)
			}
		case "u":
			if b.snap.State == pager.StatePaywalled && b.upgrades != nil {
				return b, func() tea.Msg {
					return router.PushScreenMsg{Screen: upgrade.New(*b.upgrades)}
				}
			}
		case "enter":
			if b.cursor < len(b.snap.Items) {
				ids := make([]string, len(b.snap.Items))
				for i, item := range b.snap.Items {
					ids[i] = item.ID
				}
				idx := b.cursor
				return b, func() tea.Msg {
					return router.PushScreenMsg{Screen: viewer.New(b.opener, ids, idx)}
				}
			}
		}
	}
	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, b.renderStatus())
	sections = append(sections, "")

	if len(b.snap.Items) == 0 {
		switch b.snap.State {
		case pager.StateLoaded:
			sections = append(sections, theme.Hint.Render("no questions match the current filters"))
		case pager.StateIdle, pager.StateLoading:
			sections = append(sections, theme.Hint.Render("loading…"))
		}
	}

	for i, item := range b.snap.Items {
		line := fmt.Sprintf("%2d. %s", b.snap.PageIndex*pager.PageSize+i+1, summarize(item.QuestionText, width-12))
		if item.Marks > 0 {
			line += theme.Hint.Render(fmt.Sprintf("  [%d marks]", item.Marks))
		}
		if i == b.cursor {
			sections = append(sections, theme.Selected.Render("▸ "+line))
		} else {
			sections = append(sections, theme.Unselected.Render("  "+line))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().Padding(1, 3).Width(width).Render(content)
}

func (b *BrowseScreen) renderStatus() string {
	page := theme.Body.Render(fmt.Sprintf("Page %d", b.snap.PageIndex+1))
	switch b.snap.State {
	case pager.StateLoading:
		return page + theme.Hint.Render("  loading…")
	case pager.StatePaywalled:
		return page + theme.Free.Render("  free preview limit reached") + theme.Hint.Render("  (u to upgrade)")
	case pager.StateEndReached:
		return page + theme.Hint.Render("  end of questions")
	case pager.StateFailed:
		msg := "request failed"
		if b.snap.Err != nil {
			msg = b.snap.Err.Error()
		}
		return page + theme.ErrorText.Render("  "+msg) + theme.Hint.Render("  (r to retry)")
	default:
		return page
	}
}

func summarize(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if max < 20 {
		max = 20
	}
	if len(text) > max {
		return text[:max-1] + "…"
	}
	return text
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Page"},
		{Key: "Enter", Description: "Open"},
	}
	if b.snap.State == pager.StatePaywalled {
		hints = append(hints, layout.KeyHint{Key: "U", Description: "Upgrade"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}
