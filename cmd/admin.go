package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exampartner/cli/internal/admin"
	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/store"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operator tools (requires an admin key)",
}

var adminAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent audit log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		console, cleanup, err := openConsole(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := console.FetchAudit(cmd.Context(), limit)
		if err != nil {
			return err
		}
		fmt.Println(admin.FormatAudit(entries))
		return nil
	},
}

var adminReconcileCmd = &cobra.Command{
	Use:   "reconcile <reference>",
	Short: "Re-check a payment reference against the provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console, cleanup, err := openConsole(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		res, err := console.Reconcile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if res.Paid {
			fmt.Println("Payment confirmed; account unlocked.")
		} else {
			fmt.Println("Provider does not report this reference as paid.")
		}
		return nil
	},
}

var adminRefundCmd = &cobra.Command{
	Use:   "refund <reference>",
	Short: "Queue a refund for a payment reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console, cleanup, err := openConsole(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		amount, _ := cmd.Flags().GetInt64("amount")
		note, _ := cmd.Flags().GetString("note")

		what := "a FULL refund"
		if amount > 0 {
			what = fmt.Sprintf("a refund of ₦%d", amount)
		}
		fmt.Printf("Queue %s for %s? [y/N] ", what, args[0])
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}

		if err := console.Refund(cmd.Context(), args[0], amount, note); err != nil {
			return err
		}
		fmt.Println("Refund queued.")
		return nil
	},
}

// openConsole builds an admin console from the --key flag or the
// EXAMPARTNER_ADMIN_KEY env var. The key lives only in process memory.
func openConsole(cmd *cobra.Command) (*admin.Console, func(), error) {
	key, _ := cmd.Flags().GetString("key")
	if key == "" {
		key = os.Getenv("EXAMPARTNER_ADMIN_KEY")
	}
	if key == "" {
		return nil, nil, fmt.Errorf("no admin key: pass --key or set EXAMPARTNER_ADMIN_KEY")
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	kv := st.KV()
	client := api.New(resolveBaseURL(cmd, kv), nil)
	console := admin.NewConsole(client, kv)
	if err := console.SetKey(cmd.Context(), key); err != nil {
		st.Close()
		return nil, nil, err
	}
	return console, func() { st.Close() }, nil
}

func init() {
	adminCmd.PersistentFlags().String("key", "", "Admin key (or set EXAMPARTNER_ADMIN_KEY)")

	adminAuditCmd.Flags().Int("limit", admin.DefaultAuditLimit, "Number of entries to fetch (1-200)")
	adminRefundCmd.Flags().Int64("amount", 0, "Amount to refund in NGN (0 = full refund)")
	adminRefundCmd.Flags().String("note", "", "Merchant note recorded with the refund")

	adminCmd.AddCommand(adminAuditCmd)
	adminCmd.AddCommand(adminReconcileCmd)
	adminCmd.AddCommand(adminRefundCmd)
}
