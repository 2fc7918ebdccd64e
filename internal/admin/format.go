package admin

import (
	"fmt"
	"strings"

	"github.com/exampartner/cli/internal/api"
)

// FormatAudit renders audit entries as aligned plain-text lines,
// newest first as the backend serves them.
func FormatAudit(entries []api.AuditEntry) string {
	if len(entries) == 0 {
		return "no audit entries"
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "#%-6d %-20s %-18s %s", e.ID, e.CreatedAt, e.Action, e.Reference)
		if e.ActorIP != "" {
			fmt.Fprintf(&b, "  ip=%s", e.ActorIP)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
