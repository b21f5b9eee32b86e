// Package main provides the entry point for the résumé site CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_site",
	Short: "Personal résumé web site",
	Long:  "Serves a single personal résumé page rendered from static content: HTML templates, a print-aware stylesheet and embedded assets.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
