// Category commands manage the category list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryAddName string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage habit categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := newTracker().Settings.Categories()
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		if flagJSON {
			return printJSON(categories)
		}
		for _, c := range categories {
			fmt.Printf("%s\t%s\n", c.ID, c.Display(configLocale))
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := newTracker().Settings.AddCategory(categoryAddName)
		if err != nil {
			return fmt.Errorf("add category: %w", err)
		}
		if flagJSON {
			return printJSON(category)
		}
		fmt.Printf("Created category %s: %s\n", category.ID, category.Display(configLocale))
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddName, "name", "", "name for the category (required)")
	_ = categoryAddCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
}
