package question

import (
	"encoding/json"
	"testing"
)

func TestParse_FullRecord(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "WAEC-2023-M-014",
		"type": "objective",
		"exam": "WAEC",
		"year": 2023,
		"subject": "Mathematics",
		"question_text": "Solve 2x + 3 = 11.",
		"options": {"A": "2", "B": "4", "C": "7", "D": "8"},
		"answer": "B",
		"explanation": "Subtract 3, divide by 2.",
		"diagrams": ["waec-2023-014.png"]
	}`)

	q, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.ID != "WAEC-2023-M-014" {
		t.Errorf("ID = %q", q.ID)
	}
	if len(q.Options) != 4 {
		t.Errorf("Options = %v", q.Options)
	}
	keys := q.OptionKeys()
	if len(keys) != 4 || keys[0] != "A" || keys[3] != "D" {
		t.Errorf("OptionKeys = %v, want sorted A..D", keys)
	}
	if len(q.Diagrams) != 1 {
		t.Errorf("Diagrams = %v", q.Diagrams)
	}
}

func TestParse_MissingID(t *testing.T) {
	if _, err := Parse(json.RawMessage(`{"question_text": "orphan"}`)); err == nil {
		t.Error("expected schema rejection for missing id")
	}
}

func TestParse_MalformedOptions(t *testing.T) {
	raw := json.RawMessage(`{"id": "Q1", "options": {"A": 42}}`)
	if _, err := Parse(raw); err == nil {
		t.Error("expected schema rejection for non-string option")
	}
}

func TestSolutionSteps_String(t *testing.T) {
	var q Question
	raw := `{"id":"Q1","solution_steps":"expand then factor"}`
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	lines := q.Steps.Lines()
	if len(lines) != 1 || lines[0] != "expand then factor" {
		t.Errorf("Lines = %v", lines)
	}
}

func TestSolutionSteps_Array(t *testing.T) {
	var q Question
	raw := `{"id":"Q1","solution_steps":["step one", "step two", {"hint": "x"}]}`
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	lines := q.Steps.Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines = %v", lines)
	}
	if lines[0] != "step one" || lines[1] != "step two" {
		t.Errorf("Lines = %v", lines)
	}
	if lines[2] != `{"hint": "x"}` {
		t.Errorf("object entry kept as JSON, got %q", lines[2])
	}
}

func TestSolutionSteps_Object(t *testing.T) {
	var q Question
	raw := `{"id":"Q1","solution_steps":{"method":"substitution"}}`
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	lines := q.Steps.Lines()
	if len(lines) == 0 {
		t.Fatal("expected pretty-printed lines")
	}
}

func TestSolutionSteps_Absent(t *testing.T) {
	var q Question
	if err := json.Unmarshal([]byte(`{"id":"Q1"}`), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if q.Steps != nil {
		t.Errorf("Steps = %+v, want nil", q.Steps)
	}
	if q.Steps.Lines() != nil {
		t.Error("nil Steps must yield no lines")
	}
}
