// Package main provides the entry point for the donor RFM enrichment CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rfm",
	Short: "Donor RFM enrichment tool",
	Long:  "rfm enriches a donor gift log with recency/frequency/monetary scores and behavioral segment labels, via CLI batch runs or a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
