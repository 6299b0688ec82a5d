// Toggle command flips a habit's completion for a day.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleDate string

var toggleCmd = &cobra.Command{
	Use:   "toggle <habit-id>",
	Short: "Toggle a habit's completion",
	Long: `Toggle flips the completion state of a habit for the given day
(today by default). Completing a habit earns a point; un-completing it
returns the point.

Example:
  habits toggle 1717171717171
  habits toggle 1717171717171 --date 2024-03-04`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func init() {
	toggleCmd.Flags().StringVar(&toggleDate, "date", "", "day to toggle, YYYY-MM-DD (default: today)")
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := parseHabitID(args[0])
	if err != nil {
		return err
	}
	date, err := parseDateFlag(toggleDate)
	if err != nil {
		return err
	}

	completed, total, err := newTracker().Toggle(date, id)
	if err != nil {
		return fmt.Errorf("toggle habit %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"id":          id,
			"completed":   completed,
			"totalPoints": total,
		})
	}
	if completed {
		fmt.Printf("Completed habit %d. Points: %d\n", id, total)
	} else {
		fmt.Printf("Un-completed habit %d. Points: %d\n", id, total)
	}
	return nil
}
