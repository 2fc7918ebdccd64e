// Package filterpick walks the user through choosing an exam, a year
// and a subject from the server's catalog. The question list stays
// locked until the walk completes.
package filterpick

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/router"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/ui/components"
	"github.com/exampartner/cli/internal/ui/layout"
	"github.com/exampartner/cli/internal/ui/theme"
)

type stage int

const (
	stageLoading stage = iota
	stageExam
	stageYear
	stageSubject
	stageFailed
)

// FilterScreen drives the three-step filter selection.
type FilterScreen struct {
	manager *filters.Manager
	qtype   string
	onDone  func() tea.Cmd

	stage   stage
	catalog *filters.Catalog
	list    components.PickList
	errMsg  string
}

var _ screen.Screen = (*FilterScreen)(nil)

// New creates a FilterScreen scoped to one question mode. onDone runs
// once the selection is complete; nil just pops back.
func New(manager *filters.Manager, qtype string, onDone func() tea.Cmd) *FilterScreen {
	return &FilterScreen{manager: manager, qtype: qtype, onDone: onDone}
}

func (f *FilterScreen) Title() string { return "Filters" }

func (f *FilterScreen) Init() tea.Cmd {
	return func() tea.Msg {
		cat, err := f.manager.FetchCatalog(context.Background(), f.qtype)
		return catalogMsg{catalog: cat, err: err}
	}
}

func (f *FilterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		if msg.err != nil {
			f.stage = stageFailed
			if errors.Is(msg.err, filters.ErrNoCatalog) {
				f.errMsg = "cannot reach the server and no recent filter data is available"
			} else {
				f.errMsg = msg.err.Error()
			}
			return f, nil
		}
		f.catalog = msg.catalog
		f.enterStage(stageExam)
		return f, nil

	case tea.KeyMsg:
		switch f.stage {
		case stageFailed:
			if msg.String() == "r" {
				f.stage = stageLoading
				f.errMsg = ""
				return f, f.Init()
			}
		case stageExam, stageYear, stageSubject:
			if msg.String() == "enter" {
				return f, f.choose(f.list.Value())
			}
			var cmd tea.Cmd
			f.list, cmd = f.list.Update(msg)
			return f, cmd
		}
	}
	return f, nil
}

func (f *FilterScreen) enterStage(s stage) {
	f.stage = s
	switch s {
	case stageExam:
		f.list = components.NewPickList(f.catalog.Exams, 12)
	case stageYear:
		years := make([]string, len(f.catalog.Years))
		for i, y := range f.catalog.Years {
			years[i] = strconv.Itoa(y)
		}
		f.list = components.NewPickList(years, 12)
	case stageSubject:
		f.list = components.NewPickList(f.catalog.Subjects, 12)
	}
}

func (f *FilterScreen) choose(value string) tea.Cmd {
	if value == "" {
		return nil
	}
	ctx := context.Background()
	var err error
	switch f.stage {
	case stageExam:
		_, err = f.manager.SetExam(ctx, value)
		if err == nil {
			f.enterStage(stageYear)
		}
	case stageYear:
		_, err = f.manager.SetYear(ctx, value)
		if err == nil {
			f.enterStage(stageSubject)
		}
	case stageSubject:
		var ready bool
		ready, err = f.manager.SetSubject(ctx, value)
		if err == nil {
			if ready && f.onDone != nil {
				return f.onDone()
			}
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	if err != nil {
		f.errMsg = err.Error()
	}
	return nil
}

func (f *FilterScreen) View(width, height int) string {
	var sections []string

	sel := f.manager.Selection()
	sections = append(sections, renderBreadcrumb(sel))
	sections = append(sections, "")

	switch f.stage {
	case stageLoading:
		sections = append(sections, theme.Hint.Render("loading filter catalog…"))
	case stageFailed:
		sections = append(sections, theme.ErrorText.Render(f.errMsg))
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press r to retry"))
	case stageExam:
		sections = append(sections, theme.Body.Render("Choose an exam"))
		sections = append(sections, f.list.View())
	case stageYear:
		sections = append(sections, theme.Body.Render("Choose a year"))
		sections = append(sections, f.list.View())
	case stageSubject:
		sections = append(sections, theme.Body.Render("Choose a subject"))
		sections = append(sections, f.list.View())
	}

	if f.errMsg != "" && f.stage != stageFailed {
		sections = append(sections, "")
		sections = append(sections, theme.ErrorText.Render(f.errMsg))
	}

	if missing := f.manager.Missing(); len(missing) > 0 && f.stage != stageLoading {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("still needed: "+strings.Join(missing, ", ")))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderBreadcrumb(sel filters.Selection) string {
	part := func(label, value string) string {
		if value == "" {
			return theme.Hint.Render(label + ": ?")
		}
		return theme.Body.Render(label + ": " + value)
	}
	sep := theme.Hint.Render("  ›  ")
	return part("Exam", sel.Exam) + sep + part("Year", sel.Year) + sep + part("Subject", sel.Subject)
}

func (f *FilterScreen) KeyHints() []layout.KeyHint {
	if f.stage == stageFailed {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Back"},
	}
}
