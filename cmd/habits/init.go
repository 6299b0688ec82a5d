package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the habits storage",
	Long:  `Initialize the configuration directory and the storage backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is already attached by PersistentPreRunE, which
		// creates both directories on first run.
		fmt.Println("Habits storage initialized successfully")
		return nil
	},
}
