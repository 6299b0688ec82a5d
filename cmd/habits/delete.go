// Delete command removes a habit from the registry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <habit-id>",
	Short: "Delete a habit",
	Long: `Delete removes a habit from the registry. Past completion records
stay in storage but are never shown again. Deleting an id that does
not exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseHabitID(args[0])
	if err != nil {
		return err
	}

	removed, err := newTracker().Registry.Remove(id)
	if err != nil {
		return fmt.Errorf("delete habit %d: %w", id, err)
	}
	if !removed {
		fmt.Printf("No habit %d; nothing deleted\n", id)
		return nil
	}
	fmt.Printf("Deleted habit %d\n", id)
	return nil
}
