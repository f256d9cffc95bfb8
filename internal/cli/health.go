package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the computer opponents",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StrategyList

			if err := client.Get(cmd.Context(), "/api/v1/strategies", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
