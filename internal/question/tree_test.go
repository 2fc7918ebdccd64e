package question

import (
	"strings"
	"testing"
)

func sampleTree() []SubQuestion {
	return []SubQuestion{
		{
			Label:       "a",
			Text:        "State the theorem.",
			Answer:      "Pythagoras",
			Explanation: "Right triangles only.",
			Children: []SubQuestion{
				{Label: "i", Text: "Give an example.", Answer: "3-4-5"},
			},
		},
		{Label: "b", Text: "Prove it."},
	}
}

func TestRenderTree_QuestionOnly(t *testing.T) {
	lines := RenderTree(sampleTree(), TreeOptions{})
	joined := strings.Join(lines, "\n")

	if !strings.Contains(joined, "a) State the theorem.") {
		t.Errorf("missing labeled text:\n%s", joined)
	}
	if strings.Contains(joined, "Answer:") || strings.Contains(joined, "Explanation:") {
		t.Errorf("question-only walk leaked answers:\n%s", joined)
	}
	// Child is indented one level deeper than its parent.
	if !strings.Contains(joined, DefaultIndent+"i) Give an example.") {
		t.Errorf("child not indented:\n%s", joined)
	}
}

func TestRenderTree_AnswersOnly(t *testing.T) {
	lines := RenderTree(sampleTree(), TreeOptions{ShowAnswers: true})
	joined := strings.Join(lines, "\n")

	if !strings.Contains(joined, "Answer: Pythagoras") {
		t.Errorf("missing answer:\n%s", joined)
	}
	if !strings.Contains(joined, "Answer: 3-4-5") {
		t.Errorf("missing nested answer:\n%s", joined)
	}
	if strings.Contains(joined, "Explanation:") {
		t.Errorf("explanations shown without ShowExplanations:\n%s", joined)
	}
}

func TestRenderTree_Full(t *testing.T) {
	lines := RenderTree(sampleTree(), TreeOptions{ShowAnswers: true, ShowExplanations: true})
	joined := strings.Join(lines, "\n")

	if !strings.Contains(joined, "Explanation: Right triangles only.") {
		t.Errorf("missing explanation:\n%s", joined)
	}
}

func TestRenderTree_Empty(t *testing.T) {
	if lines := RenderTree(nil, TreeOptions{}); len(lines) != 0 {
		t.Errorf("lines = %v, want none", lines)
	}
}

func TestHasAnswers(t *testing.T) {
	if !HasAnswers(sampleTree()) {
		t.Error("expected answers in sample tree")
	}
	if HasAnswers([]SubQuestion{{Text: "no answer"}}) {
		t.Error("expected no answers")
	}
}
