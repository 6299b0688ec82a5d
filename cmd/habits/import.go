// Import command restores state from a backup file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/internal/snapshot"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a backup file",
	Long: `Import restores state from a backup file. Every field present in
the document replaces the corresponding stored state; missing fields
leave current state untouched. A malformed document changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}

	if err := snapshot.New(store).Import(data); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Printf("Imported %s\n", args[0])
	return nil
}
