package browse

import "github.com/exampartner/cli/internal/pager"

type pageMsg struct {
	snap pager.Snapshot
	err  error
}
