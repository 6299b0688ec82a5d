// Export command writes the full state to a backup file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/internal/snapshot"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a backup file",
	Long: `Export writes the habit list, points total, every day's completion
record, the daily goal, and the categories to a single
habit-tracker-backup-<date>.json file.

Example:
  habits export
  habits export --dir ~/backups`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "directory to write the backup file into")
}

func runExport(cmd *cobra.Command, args []string) error {
	path, err := snapshot.New(store).WriteFile(exportDir)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"file": path})
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}
