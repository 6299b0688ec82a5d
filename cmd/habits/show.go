// Show command prints the habits active on a day.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/pkg/types"
)

var showDate string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the habits active on a day",
	Long: `Show lists the habits active on the given day (today by default)
with their completion state and the progress toward the daily goal.
Any past or future day can be shown.

Example:
  habits show
  habits show --date 2024-03-04`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDate, "date", "", "day to show, YYYY-MM-DD (default: today)")
}

func runShow(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(showDate)
	if err != nil {
		return err
	}

	t := newTracker()
	view, err := t.HabitsOn(date)
	if err != nil {
		return fmt.Errorf("show day: %w", err)
	}
	completed, goal, err := t.Progress(date)
	if err != nil {
		return fmt.Errorf("show progress: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"date":      types.DateKey(date),
			"habits":    view,
			"completed": completed,
			"dailyGoal": goal,
		})
	}

	fmt.Printf("%s — %d/%d toward daily goal\n", types.DateKey(date), completed, goal)
	if len(view) == 0 {
		fmt.Println("No habits active on this day.")
		return nil
	}
	for _, h := range view {
		mark := " "
		if h.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %d\t%s\t%s\n", mark, h.ID, h.Name, categoryLabel(h.Category))
	}
	return nil
}
