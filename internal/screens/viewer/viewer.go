// Package viewer renders one full question: stem, options, answer and
// worked solution, with the answer hidden until asked for.
package viewer

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/exampartner/cli/internal/question"
	"github.com/exampartner/cli/internal/screen"
	"github.com/exampartner/cli/internal/ui/layout"
	"github.com/exampartner/cli/internal/ui/theme"
)

// QuestionAPI is the slice of the backend client the viewer needs.
type QuestionAPI interface {
	Question(ctx context.Context, id string) (*question.Question, error)
	DiagramURL(name string) string
}

// ViewerScreen steps through the question ids of the page it was opened
// from, fetching and displaying one full record at a time.
type ViewerScreen struct {
	client QuestionAPI
	ids    []string
	index  int

	q          *question.Question
	showAnswer bool
	selected   string
	scroll     int
	errMsg     string
}

var _ screen.Screen = (*ViewerScreen)(nil)

// New creates a ViewerScreen over ids, starting at index.
func New(client QuestionAPI, ids []string, index int) *ViewerScreen {
	if index < 0 || index >= len(ids) {
		index = 0
	}
	return &ViewerScreen{client: client, ids: ids, index: index}
}

func (v *ViewerScreen) Title() string {
	if len(v.ids) > 1 {
		return fmt.Sprintf("Question %d/%d", v.index+1, len(v.ids))
	}
	return "Question"
}

func (v *ViewerScreen) Init() tea.Cmd {
	return v.fetch()
}

func (v *ViewerScreen) fetch() tea.Cmd {
	id := v.ids[v.index]
	return func() tea.Msg {
		q, err := v.client.Question(context.Background(), id)
		return questionMsg{id: id, q: q, err: err}
	}
}

// step moves to a neighboring question. Past either end it does
// nothing. Reveal, selection and scroll state never carry over.
func (v *ViewerScreen) step(delta int) tea.Cmd {
	next := v.index + delta
	if next < 0 || next >= len(v.ids) {
		return nil
	}
	v.index = next
	v.q = nil
	v.showAnswer = false
	v.selected = ""
	v.scroll = 0
	v.errMsg = ""
	return v.fetch()
}

func (v *ViewerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		// A completion for a question the user already moved past.
		if msg.id != v.ids[v.index] {
			return v, nil
		}
		if msg.err != nil {
			v.errMsg = msg.err.Error()
			return v, nil
		}
		v.q = msg.q
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "a":
			v.showAnswer = !v.showAnswer
		case "left", "p":
			return v, v.step(-1)
		case "right", "n":
			return v, v.step(1)
		case "up", "k":
			if v.scroll > 0 {
				v.scroll--
			}
		case "down", "j":
			v.scroll++
		case "r":
			if v.errMsg != "" {
				v.errMsg = ""
				return v, v.fetch()
			}
		default:
			v.toggleOption(key)
		}
	}
	return v, nil
}

// toggleOption marks the nth option on digit keys. The mark is purely
// visual; picking the same option again clears it.
func (v *ViewerScreen) toggleOption(key string) {
	if v.q == nil || len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return
	}
	keys := v.q.OptionKeys()
	i := int(key[0] - '1')
	if i >= len(keys) {
		return
	}
	if v.selected == keys[i] {
		v.selected = ""
	} else {
		v.selected = keys[i]
	}
}

func (v *ViewerScreen) View(width, height int) string {
	if v.errMsg != "" {
		content := theme.ErrorText.Render(v.errMsg) + "\n\n" + theme.Hint.Render("press r to retry")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if v.q == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("loading question…"))
	}

	lines := v.renderLines(width - 6)

	// Clamp scrolling to the content.
	maxScroll := len(lines) - height + 2
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	end := v.scroll + height - 2
	if end > len(lines) {
		end = len(lines)
	}

	content := strings.Join(lines[v.scroll:end], "\n")
	return lipgloss.NewStyle().Padding(1, 3).Width(width).Render(content)
}

func (v *ViewerScreen) renderLines(width int) []string {
	q := v.q
	var lines []string

	meta := fmt.Sprintf("%s · %d · %s", q.Exam, q.Year, q.Subject)
	if q.Paper != "" {
		meta += " · paper " + q.Paper
	}
	if q.Marks > 0 {
		meta += fmt.Sprintf(" · %d marks", q.Marks)
	}
	lines = append(lines, theme.Hint.Render(meta), "")

	lines = append(lines, wrap(q.QuestionText, width)...)
	lines = append(lines, "")

	for i, key := range q.OptionKeys() {
		line := fmt.Sprintf("  %d) %s. %s", i+1, strings.ToUpper(key), q.Options[key])
		if key == v.selected {
			lines = append(lines, theme.Selected.Render("▸"+line[1:]))
		} else {
			lines = append(lines, theme.Body.Render(line))
		}
	}
	if len(q.Options) > 0 {
		lines = append(lines, "")
	}

	if len(q.SubQuestions) > 0 {
		tree := question.RenderTree(q.SubQuestions, question.TreeOptions{
			ShowAnswers:      v.showAnswer,
			ShowExplanations: v.showAnswer,
			Indent:           question.DefaultIndent,
		})
		lines = append(lines, tree...)
		lines = append(lines, "")
	}

	if v.showAnswer {
		if q.Answer != "" {
			lines = append(lines, theme.Answer.Render("Answer: "+q.Answer))
		}
		if q.Explanation != "" {
			lines = append(lines, "")
			lines = append(lines, wrap(q.Explanation, width)...)
		}
		if steps := q.Steps.Lines(); len(steps) > 0 {
			lines = append(lines, "", theme.Body.Render("Worked solution:"))
			for i, s := range steps {
				lines = append(lines, theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, s)))
			}
		}
	} else if question.HasAnswers(q.SubQuestions) || q.Answer != "" {
		lines = append(lines, theme.Hint.Render("press a to reveal the answer"))
	}

	if len(q.Diagrams) > 0 {
		lines = append(lines, "", theme.Hint.Render("Diagrams:"))
		for _, d := range q.Diagrams {
			lines = append(lines, theme.Hint.Render("  "+v.client.DiagramURL(d)))
		}
	}

	return lines
}

func wrap(text string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if len(cur)+1+len(w) > width {
			lines = append(lines, theme.Body.Render(cur))
			cur = w
			continue
		}
		cur += " " + w
	}
	if cur != "" {
		lines = append(lines, theme.Body.Render(cur))
	}
	return lines
}

func (v *ViewerScreen) KeyHints() []layout.KeyHint {
	label := "Show answer"
	if v.showAnswer {
		label = "Hide answer"
	}
	return []layout.KeyHint{
		{Key: "A", Description: label},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "1-9", Description: "Mark option"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
