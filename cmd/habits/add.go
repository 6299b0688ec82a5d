// Add command creates a new habit.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/internal/registry"
)

var (
	addName        string
	addDescription string
	addCategory    string
	addRepeat      string
	addDays        string
	addDates       string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new habit",
	Long: `Add creates a new habit with the given name and recurrence rule.

Without --repeat the habit is daily. Weekly habits take --days with
weekday numbers (0=Sunday .. 6=Saturday); monthly habits take --dates
with days of the month (1..31).

Example:
  habits add --name "Run" --repeat weekly --days 1,3,5
  habits add --name "Read" --category learning
  habits add --name "Pay rent" --repeat monthly --dates 1`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "name for the habit (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "optional description")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category id (default: other)")
	addCmd.Flags().StringVar(&addRepeat, "repeat", "", "recurrence: daily, weekly, or monthly (default: daily)")
	addCmd.Flags().StringVar(&addDays, "days", "", "weekdays for weekly habits, e.g. 1,3,5")
	addCmd.Flags().StringVar(&addDates, "dates", "", "days of month for monthly habits, e.g. 1,15")
	_ = addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	repeat, err := buildRecurrence(addRepeat, addDays, addDates)
	if err != nil {
		return err
	}

	habit, err := newTracker().Registry.Add(registry.Draft{
		Name:        &addName,
		Description: &addDescription,
		Category:    &addCategory,
		Repeat:      repeat,
	})
	if err != nil {
		return fmt.Errorf("create habit: %w", err)
	}

	if flagJSON {
		return printJSON(habit)
	}
	fmt.Printf("Created habit %d: %s (%s)\n", habit.ID, habit.Name, describeRecurrence(habit.Repeat))
	return nil
}
