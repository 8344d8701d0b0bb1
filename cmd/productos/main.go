package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Imported for their init() registrations.
	_ "github.com/shashiranjanraj/productos/database/migrations"
	_ "github.com/shashiranjanraj/productos/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "productos",
	Short: "Productos — product catalogue service",
	Long:  "Productos is a product catalogue CRUD service. Use this CLI to run the server and manage the database.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
