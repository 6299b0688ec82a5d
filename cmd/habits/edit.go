// Edit command updates an existing habit.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/internal/registry"
)

var (
	editName        string
	editDescription string
	editCategory    string
	editRepeat      string
	editDays        string
	editDates       string
)

var editCmd = &cobra.Command{
	Use:   "edit <habit-id>",
	Short: "Edit a habit",
	Long: `Edit merges the given flags over an existing habit. Only flags that
are set change anything; the id and creation time never change.

Example:
  habits edit 1717171717171 --name "Morning run"
  habits edit 1717171717171 --repeat weekly --days 2,4`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "new name")
	editCmd.Flags().StringVar(&editDescription, "description", "", "new description")
	editCmd.Flags().StringVar(&editCategory, "category", "", "new category id (empty resets to other)")
	editCmd.Flags().StringVar(&editRepeat, "repeat", "", "new recurrence: daily, weekly, or monthly")
	editCmd.Flags().StringVar(&editDays, "days", "", "weekdays for weekly habits")
	editCmd.Flags().StringVar(&editDates, "dates", "", "days of month for monthly habits")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseHabitID(args[0])
	if err != nil {
		return err
	}

	draft := registry.Draft{}
	if cmd.Flags().Changed("name") {
		draft.Name = &editName
	}
	if cmd.Flags().Changed("description") {
		draft.Description = &editDescription
	}
	if cmd.Flags().Changed("category") {
		if editCategory == "" {
			// An explicit empty value resets the category to "other".
			draft.ClearCategory = true
		} else {
			draft.Category = &editCategory
		}
	}
	if cmd.Flags().Changed("repeat") {
		repeat, err := buildRecurrence(editRepeat, editDays, editDates)
		if err != nil {
			return err
		}
		if repeat == nil {
			// Switching back to daily drops the rule entirely.
			draft.ClearRepeat = true
		} else {
			draft.Repeat = repeat
		}
	}

	habit, err := newTracker().Registry.Edit(id, draft)
	if err != nil {
		return fmt.Errorf("edit habit %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(habit)
	}
	fmt.Printf("Updated habit %d: %s (%s)\n", habit.ID, habit.Name, describeRecurrence(habit.Repeat))
	return nil
}
