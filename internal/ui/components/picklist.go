package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/ui/theme"
)

// PickList is a scrollable single-choice list of string values. It only
// handles navigation; the owning screen reads Value() on enter.
type PickList struct {
	Options []string
	Cursor  int
	Visible int // rows shown at once; 0 means all

	offset int
}

// NewPickList creates a pick list over options.
func NewPickList(options []string, visible int) PickList {
	return PickList{
		Options: options,
		Visible: visible,
	}
}

// Value returns the option under the cursor, or "" for an empty list.
func (p PickList) Value() string {
	if p.Cursor < 0 || p.Cursor >= len(p.Options) {
		return ""
	}
	return p.Options[p.Cursor]
}

// Update handles keyboard navigation.
func (p PickList) Update(msg tea.Msg) (PickList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Options) == 0 {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	}

	p.scroll()
	return p, nil
}

// Keep the cursor inside the visible window.
func (p *PickList) scroll() {
	if p.Visible <= 0 {
		return
	}
	if p.Cursor < p.offset {
		p.offset = p.Cursor
	}
	if p.Cursor >= p.offset+p.Visible {
		p.offset = p.Cursor - p.Visible + 1
	}
}

// View renders the list.
func (p PickList) View() string {
	start, end := 0, len(p.Options)
	if p.Visible > 0 && end > p.Visible {
		start = p.offset
		end = start + p.Visible
		if end > len(p.Options) {
			end = len(p.Options)
		}
	}

	var s string
	for i := start; i < end; i++ {
		if i == p.Cursor {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+p.Options[i]) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+p.Options[i]) + "\n"
		}
	}
	if p.Visible > 0 && end < len(p.Options) {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("    …") + "\n"
	}
	return s
}
