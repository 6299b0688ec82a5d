// Stats command prints completion statistics over a trailing window.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/internal/stats"
)

var (
	statsDays int
	statsDate string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print completion statistics",
	Long: `Stats reports per-day completion rates, per-habit performance, and
per-category totals over the trailing window ending on the given day
(today by default).

Example:
  habits stats
  habits stats --days 30`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "window length in days")
	statsCmd.Flags().StringVar(&statsDate, "date", "", "last day of the window, YYYY-MM-DD (default: today)")
}

func runStats(cmd *cobra.Command, args []string) error {
	end, err := parseDateFlag(statsDate)
	if err != nil {
		return err
	}

	report, err := stats.New(store).Window(end, statsDays)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Printf("Last %d days — average completion %d%%\n", report.Days, report.AverageCompletion)
	for _, d := range report.DailyCompletion {
		fmt.Printf("  %s  %3d%%\n", d.DateKey, d.Percent)
	}
	if len(report.Habits) > 0 {
		fmt.Println("Habits:")
		for _, h := range report.Habits {
			fmt.Printf("  %s\t%d/%d days\t%d%%\n", h.Name, h.Completed, h.Active, h.Percent)
		}
	}
	if len(report.Categories) > 0 {
		fmt.Println("Categories:")
		for id, c := range report.Categories {
			fmt.Printf("  %s\t%d/%d\n", categoryLabel(id), c.Completed, c.Total)
		}
	}
	return nil
}
