package viewer

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/exampartner/cli/internal/question"
)

type fakeAPI struct {
	questions map[string]*question.Question
	err       error
	fetched   []string
}

func (f *fakeAPI) Question(ctx context.Context, id string) (*question.Question, error) {
	f.fetched = append(f.fetched, id)
	if f.err != nil {
		return nil, f.err
	}
	q, ok := f.questions[id]
	if !ok {
		return nil, errors.New("no such question")
	}
	return q, nil
}

func (f *fakeAPI) DiagramURL(name string) string {
	return "https://example.test/static/diagrams/" + name
}

func testQuestion(id string) *question.Question {
	return &question.Question{
		ID:           id,
		Exam:         "WAEC",
		Year:         2023,
		Subject:      "Mathematics",
		QuestionText: "What is 2 + 2?",
		Options:      map[string]string{"a": "3", "b": "4", "c": "5"},
		Answer:       "b",
		Explanation:  "Basic addition.",
	}
}

func newLoaded(t *testing.T, ids []string, index int) (*ViewerScreen, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{questions: map[string]*question.Question{}}
	for _, id := range ids {
		api.questions[id] = testQuestion(id)
	}
	v := New(api, ids, index)
	cmd := v.Init()
	if cmd == nil {
		t.Fatal("Init should fetch the question")
	}
	v.Update(cmd())
	if v.q == nil {
		t.Fatal("question should be loaded")
	}
	return v, api
}

func TestAnswerHiddenUntilRevealed(t *testing.T) {
	v, _ := newLoaded(t, []string{"q1"}, 0)

	view := v.View(80, 40)
	if strings.Contains(view, "Answer:") {
		t.Error("answer should be hidden before reveal")
	}
	if !strings.Contains(view, "press a to reveal") {
		t.Error("expected a reveal hint")
	}

	v.Update(tea.KeyPressMsg{Code: 'a'})
	view = v.View(80, 40)
	if !strings.Contains(view, "Answer: b") {
		t.Error("answer should show after pressing a")
	}
	if !strings.Contains(view, "Basic addition.") {
		t.Error("explanation should show after pressing a")
	}

	v.Update(tea.KeyPressMsg{Code: 'a'})
	if strings.Contains(v.View(80, 40), "Answer:") {
		t.Error("second press should hide the answer again")
	}
}

func TestOptionToggleIsInert(t *testing.T) {
	v, _ := newLoaded(t, []string{"q1"}, 0)

	v.Update(tea.KeyPressMsg{Code: '2'})
	if v.selected != "b" {
		t.Errorf("expected option b selected, got %q", v.selected)
	}
	if v.showAnswer {
		t.Error("selecting an option must not reveal the answer")
	}

	// Same key again clears the mark.
	v.Update(tea.KeyPressMsg{Code: '2'})
	if v.selected != "" {
		t.Errorf("expected selection cleared, got %q", v.selected)
	}

	// Out of range is ignored.
	v.Update(tea.KeyPressMsg{Code: '9'})
	if v.selected != "" {
		t.Errorf("out-of-range digit should be ignored, got %q", v.selected)
	}
}

func TestStepResetsPerQuestionState(t *testing.T) {
	v, api := newLoaded(t, []string{"q1", "q2"}, 0)

	v.Update(tea.KeyPressMsg{Code: 'a'})
	v.Update(tea.KeyPressMsg{Code: '1'})

	_, cmd := v.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if cmd == nil {
		t.Fatal("right should fetch the next question")
	}
	if v.showAnswer || v.selected != "" || v.scroll != 0 {
		t.Error("reveal, selection and scroll should reset on navigation")
	}
	v.Update(cmd())
	if v.q == nil || v.q.ID != "q2" {
		t.Fatal("expected q2 loaded")
	}
	if len(api.fetched) != 2 {
		t.Errorf("expected 2 fetches, got %d", len(api.fetched))
	}
}

func TestStepBoundariesAreNoOps(t *testing.T) {
	v, api := newLoaded(t, []string{"q1", "q2"}, 0)

	if _, cmd := v.Update(tea.KeyPressMsg{Code: tea.KeyLeft}); cmd != nil {
		t.Error("left at the first question should do nothing")
	}
	if v.index != 0 {
		t.Errorf("index moved to %d", v.index)
	}

	_, cmd := v.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	v.Update(cmd())
	if _, cmd := v.Update(tea.KeyPressMsg{Code: tea.KeyRight}); cmd != nil {
		t.Error("right at the last question should do nothing")
	}
	if v.index != 1 {
		t.Errorf("index moved to %d", v.index)
	}
	if len(api.fetched) != 2 {
		t.Errorf("expected 2 fetches, got %d", len(api.fetched))
	}
}

func TestStaleCompletionDiscarded(t *testing.T) {
	v, _ := newLoaded(t, []string{"q1", "q2"}, 0)

	// Move on before a slow response for q1 lands.
	_, cmd := v.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	v.Update(questionMsg{id: "q1", q: testQuestion("q1")})
	if v.q != nil {
		t.Error("completion for a question already left should be dropped")
	}

	v.Update(cmd())
	if v.q == nil || v.q.ID != "q2" {
		t.Error("the current question's completion should still apply")
	}
}

func TestFetchErrorOffersRetry(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}
	v := New(api, []string{"q1"}, 0)
	v.Update(v.Init()())

	view := v.View(80, 24)
	if !strings.Contains(view, "boom") {
		t.Error("error message should be shown")
	}
	if !strings.Contains(view, "press r to retry") {
		t.Error("retry hint should be shown")
	}

	api.err = nil
	api.questions = map[string]*question.Question{"q1": testQuestion("q1")}
	_, cmd := v.Update(tea.KeyPressMsg{Code: 'r'})
	if cmd == nil {
		t.Fatal("r should refetch")
	}
	v.Update(cmd())
	if v.q == nil {
		t.Error("question should load after retry")
	}
}

func TestTitleShowsPosition(t *testing.T) {
	v, _ := newLoaded(t, []string{"q1", "q2", "q3"}, 1)
	if v.Title() != "Question 2/3" {
		t.Errorf("Title = %q", v.Title())
	}

	single, _ := newLoaded(t, []string{"q1"}, 0)
	if single.Title() != "Question" {
		t.Errorf("Title = %q", single.Title())
	}
}
