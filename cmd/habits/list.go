// List command prints every habit in the registry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all habits",
	Long:  `List prints every habit in the registry in creation order.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	habits, err := newTracker().Registry.List()
	if err != nil {
		return fmt.Errorf("list habits: %w", err)
	}

	if flagJSON {
		return printJSON(habits)
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Create one with: habits add --name <name>")
		return nil
	}
	for _, h := range habits {
		fmt.Printf("%d\t%s\t%s\t%s\n", h.ID, h.Name, describeRecurrence(h.Repeat), categoryLabel(h.Category))
	}
	return nil
}
