// Reset command clears a day's completions.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/pkg/types"
)

var resetDate string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a day's completions",
	Long: `Reset clears every completion for the given day (today by default)
and returns the points earned on it.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&resetDate, "date", "", "day to reset, YYYY-MM-DD (default: today)")
}

func runReset(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(resetDate)
	if err != nil {
		return err
	}

	refunded, total, err := newTracker().ResetDay(date)
	if err != nil {
		return fmt.Errorf("reset day: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"date":        types.DateKey(date),
			"refunded":    refunded,
			"totalPoints": total,
		})
	}
	fmt.Printf("Reset %s: returned %d points. Points: %d\n", types.DateKey(date), refunded, total)
	return nil
}
