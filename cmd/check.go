package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/exampartner/cli/internal/api"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Ping the backend and report connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := api.New(resolveBaseURL(cmd, nil), nil)

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		service, err := client.Health(ctx)
		if err != nil {
			return fmt.Errorf("backend unreachable at %s: %w", client.BaseURL(), err)
		}
		fmt.Printf("OK: %s at %s\n", service, client.BaseURL())
		return nil
	},
}
