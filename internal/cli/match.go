package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play matches against the computer",
	}

	cmd.AddCommand(newMatchNewCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchCurrentCmd())
	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchRollCmd())
	cmd.AddCommand(newMatchHoldCmd())
	cmd.AddCommand(newMatchScoreCmd())
	cmd.AddCommand(newMatchQuitCmd())

	return cmd
}

func newMatchNewCmd() *cobra.Command {
	var target, strategy string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new match",
		Long: `Start a new match against the computer.

The target score defaults to 101 when omitted or not a positive number.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"target":   target,
				"strategy": strategy,
			}

			var result Match
			if err := client.Post(cmd.Context(), "/api/v1/matches", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target score (default 101)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Opponent strategy (see 'dicegame strategies')")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match
			if err := client.Get(cmd.Context(), "/api/v1/matches/"+args[0], &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the match in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match
			if err := client.Get(cmd.Context(), "/api/v1/matches/current", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Match
			if err := client.Get(cmd.Context(), "/api/v1/matches", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll [id]",
		Short: "Roll the unheld dice",
		Long: `Roll the unheld dice. The third roll of a round is scored automatically.

When no match ID is given the match in progress is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return turnAction(cmd, args, "roll")
		},
	}
}

func newMatchHoldCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "hold <index>",
		Short: "Toggle the hold on a die (0-4)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}

			if id == "" {
				id, err = currentMatchID(cmd.Context())
				if err != nil {
					return err
				}
			}

			var result Match
			req := map[string]int{"index": index}
			if err := client.Post(cmd.Context(), "/api/v1/matches/"+id+"/hold", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "match", "", "Match ID (defaults to the match in progress)")

	return cmd
}

func newMatchScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [id]",
		Short: "Score the round with the current dice",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return turnAction(cmd, args, "score")
		},
	}
}

func newMatchQuitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit [id]",
		Short: "Abandon a match and return to the menu",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveMatchID(cmd.Context(), args)
			if err != nil {
				return err
			}

			if err := client.Delete(cmd.Context(), "/api/v1/matches/"+id); err != nil {
				return err
			}

			output(cmd).PrintMessage("Match abandoned")
			return nil
		},
	}
}

// turnAction posts a roll or score and prints the result
func turnAction(cmd *cobra.Command, args []string, action string) error {
	id, err := resolveMatchID(cmd.Context(), args)
	if err != nil {
		return err
	}

	var result TurnResult
	if err := client.Post(cmd.Context(), "/api/v1/matches/"+id+"/"+action, nil, &result); err != nil {
		return err
	}

	output(cmd).Print(result)
	return nil
}

func resolveMatchID(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return currentMatchID(ctx)
}

func currentMatchID(ctx context.Context) (string, error) {
	var current Match
	if err := client.Get(ctx, "/api/v1/matches/current", &current); err != nil {
		return "", fmt.Errorf("find current match: %w", err)
	}
	return current.ID, nil
}
