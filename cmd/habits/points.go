// Points command prints the running total.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the points total",
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := newTracker().Points.Total()
		if err != nil {
			return fmt.Errorf("read points: %w", err)
		}
		if flagJSON {
			return printJSON(map[string]int{"totalPoints": total})
		}
		fmt.Println(total)
		return nil
	},
}
