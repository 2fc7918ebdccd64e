package viewer

import "github.com/exampartner/cli/internal/question"

type questionMsg struct {
	id  string
	q   *question.Question
	err error
}
