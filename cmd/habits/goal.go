// Goal command reads or sets the daily completion goal.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [target]",
	Short: "Print or set the daily goal",
	Long: `Goal prints the target completions per day, or sets it when a value
is given.

Example:
  habits goal
  habits goal 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGoal,
}

func runGoal(cmd *cobra.Command, args []string) error {
	s := newTracker().Settings

	if len(args) == 1 {
		goal, err := strconv.Atoi(args[0])
		if err != nil || goal < 0 {
			return fmt.Errorf("invalid goal %q: expected a non-negative integer", args[0])
		}
		if err := s.SetDailyGoal(goal); err != nil {
			return fmt.Errorf("set daily goal: %w", err)
		}
	}

	goal, err := s.DailyGoal()
	if err != nil {
		return fmt.Errorf("read daily goal: %w", err)
	}
	if flagJSON {
		return printJSON(map[string]int{"dailyGoal": goal})
	}
	fmt.Println(goal)
	return nil
}
