// Package history lists the account's past payments.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/payments"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/ui/layout"
	"github.com/exampartner/cli/internal/ui/theme"
)

// HistoryScreen shows recent payments, newest first.
type HistoryScreen struct {
	flow *payments.Flow

	records []api.PaymentRecord
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(flow *payments.Flow) *HistoryScreen {
	return &HistoryScreen{flow: flow}
}

func (h *HistoryScreen) Title() string { return "Payment History" }

func (h *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := h.flow.History(context.Background(), 10)
		return historyMsg{records: records, err: err}
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		h.loaded = true
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.records = msg.records
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "r" && h.errMsg != "" {
			h.loaded = false
			h.errMsg = ""
			return h, h.Init()
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var sections []string

	switch {
	case !h.loaded:
		sections = append(sections, theme.Hint.Render("loading payment history…"))
	case h.errMsg != "":
		sections = append(sections, theme.ErrorText.Render(h.errMsg))
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press r to retry"))
	case len(h.records) == 0:
		sections = append(sections, theme.Hint.Render("no payments yet"))
	default:
		for _, rec := range h.records {
			status := theme.Hint.Render(rec.Status)
			if rec.Status == "success" {
				status = theme.Paid.Render(rec.Status)
			}
			line := fmt.Sprintf("%-20s  %s %8.2f  %s  %s",
				rec.CreatedAt, rec.Currency, float64(rec.Amount)/100, status, rec.Reference)
			sections = append(sections, theme.Body.Render(line))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}
