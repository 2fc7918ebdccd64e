package question

import (
	"encoding/json"
	"sort"
)

// Question is a full question record as served by /question/{id}.
// The client never mutates it; every view fetches fresh.
type Question struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Paper        string            `json:"paper"`
	Section      string            `json:"section"`
	Marks        int               `json:"marks"`
	Page         int               `json:"page"`
	Exam         string            `json:"exam"`
	Year         int               `json:"year"`
	Subject      string            `json:"subject"`
	QuestionText string            `json:"question_text"`
	Options      map[string]string `json:"options"`
	Answer       string            `json:"answer"`
	Explanation  string            `json:"explanation"`
	Steps        *SolutionSteps    `json:"solution_steps"`
	SubQuestions []SubQuestion     `json:"sub_questions"`
	Diagrams     []string          `json:"diagrams"`
}

// OptionKeys returns the option keys in stable display order.
func (q *Question) OptionKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for k := range q.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SubQuestion is one node of the recursive sub-question tree carried by
// theory questions.
type SubQuestion struct {
	Label       string        `json:"label"`
	Text        string        `json:"text"`
	Answer      string        `json:"answer"`
	Explanation string        `json:"explanation"`
	Children    []SubQuestion `json:"children"`
}

// SolutionSteps tolerates the three shapes the backend stores: a plain
// string, an array of steps, or a free-form object.
type SolutionSteps struct {
	// Text is set when the payload was a plain string.
	Text string
	// Items is set when the payload was an array; non-string entries are
	// kept as compact JSON.
	Items []string
	// Raw holds the original payload for object-shaped steps.
	Raw json.RawMessage
}

func (s *SolutionSteps) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.Text = text
		return nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		items := make([]string, 0, len(arr))
		for _, el := range arr {
			var str string
			if err := json.Unmarshal(el, &str); err == nil {
				items = append(items, str)
			} else {
				items = append(items, string(el))
			}
		}
		s.Items = items
		return nil
	}

	s.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (s *SolutionSteps) MarshalJSON() ([]byte, error) {
	switch {
	case s.Raw != nil:
		return s.Raw, nil
	case s.Items != nil:
		return json.Marshal(s.Items)
	default:
		return json.Marshal(s.Text)
	}
}

// Lines flattens the steps into display lines regardless of shape.
func (s *SolutionSteps) Lines() []string {
	if s == nil {
		return nil
	}
	switch {
	case s.Raw != nil:
		var buf json.RawMessage = s.Raw
		pretty, err := json.MarshalIndent(buf, "", "  ")
		if err != nil {
			return []string{string(s.Raw)}
		}
		return splitLines(string(pretty))
	case s.Items != nil:
		return s.Items
	case s.Text != "":
		return []string{s.Text}
	}
	return nil
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// Parse validates raw against the question schema and decodes it.
func Parse(raw json.RawMessage) (*Question, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var q Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
