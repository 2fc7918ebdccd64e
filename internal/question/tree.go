package question

import "strings"

// TreeOptions controls which fields the sub-question walk emits. The
// same walk serves the question-only view, the answers-only reveal and
// the full explanation view.
type TreeOptions struct {
	ShowAnswers      bool
	ShowExplanations bool
	Indent           string
}

// DefaultIndent is used when TreeOptions.Indent is empty.
const DefaultIndent = "  "

// RenderTree flattens a sub-question tree into display lines, one level
// of indentation per depth.
func RenderTree(nodes []SubQuestion, opts TreeOptions) []string {
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	var lines []string
	var walk func(nodes []SubQuestion, depth int)
	walk = func(nodes []SubQuestion, depth int) {
		prefix := strings.Repeat(indent, depth)
		for _, n := range nodes {
			head := n.Text
			if n.Label != "" {
				head = n.Label + ") " + n.Text
			}
			if head != "" {
				lines = append(lines, prefix+head)
			}
			if opts.ShowAnswers && n.Answer != "" {
				lines = append(lines, prefix+indent+"Answer: "+n.Answer)
			}
			if opts.ShowExplanations && n.Explanation != "" {
				lines = append(lines, prefix+indent+"Explanation: "+n.Explanation)
			}
			if len(n.Children) > 0 {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(nodes, 0)
	return lines
}

// HasAnswers reports whether any node in the tree carries an answer.
func HasAnswers(nodes []SubQuestion) bool {
	for _, n := range nodes {
		if n.Answer != "" || HasAnswers(n.Children) {
			return true
		}
	}
	return false
}
