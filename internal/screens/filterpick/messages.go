package filterpick

import "github.com/exampartner/cli/internal/filters"

type catalogMsg struct {
	catalog *filters.Catalog
	err     error
}
