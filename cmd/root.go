package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/exampartner/cli/internal/api"
	"github.com/exampartner/cli/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "exampartner",
	Short: "Past exam questions in your terminal",
	Long:  "ExamPartner: browse past exam questions with answers and worked solutions, filtered by exam, year and subject.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMPARTNER_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Backend base URL (overrides EXAMPARTNER_API env var)")
	rootCmd.PersistentFlags().Bool("dev", false, "Write a debug log to the state directory")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(adminCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMPARTNER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBaseURL returns the backend URL: --api flag, then env, then the
// value saved in the store, then the production default.
func resolveBaseURL(cmd *cobra.Command, kv *store.KV) string {
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		return u
	}
	if u := os.Getenv("EXAMPARTNER_API"); u != "" {
		return u
	}
	if kv != nil {
		if u, err := kv.Get(context.Background(), store.KeyAPIBase); err == nil && u != "" {
			return u
		}
	}
	return api.DefaultBaseURL
}
