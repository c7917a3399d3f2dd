package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kenh/donor-rfm/internal/observability"
	"github.com/kenh/donor-rfm/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the enrichment pipeline over REST.

Bearer-token auth is enabled when JWT_SECRET is set; clients then exchange the
shared API key for a token via POST /auth/token.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AuthEnabled: os.Getenv("JWT_SECRET") != "",
	}

	srv, err := server.New(cfg, observability.NewLogger(serveVerbose))
	if err != nil {
		return err
	}

	return srv.Start()
}
