package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/exampartner/cli/internal/account"
	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/app"
	"github.com/exampartner/cli/internal/filters"
	"github.com/exampartner/cli/internal/logging"
	"github.com/exampartner/cli/internal/pager"
	"github.com/exampartner/cli/internal/payments"
	"github.com/exampartner/cli/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	dev, _ := cmd.Flags().GetBool("dev")
	log, closeLog, err := logging.Open(dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug log unavailable:", err)
	}
	defer closeLog.Close()

	kv := st.KV()
	client := api.New(resolveBaseURL(cmd, kv), func(ctx context.Context) string {
		tok, _ := kv.Get(ctx, store.KeyToken)
		return tok
	}, api.WithLogger(log))

	filterMgr := filters.NewManager(client, kv, st.CatalogRepo(), filters.RequireAll)
	if err := filterMgr.Restore(ctx); err != nil {
		return fmt.Errorf("restore filters: %w", err)
	}

	opts := app.Options{
		Accounts: account.NewManager(client, kv),
		Filters:  filterMgr,
		Pages:    pager.NewGroup(client, filterMgr, kv),
		Client:   client,
		Payments: payments.NewFlow(client),
		Log:      log,
	}

	return app.Run(opts)
}
