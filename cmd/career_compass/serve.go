package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis and trend data.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.Port
	}
	if port == 0 {
		port = 8080
	}

	srv, err := server.New(server.Config{
		Port:         port,
		DatabaseURL:  cfg.DatabaseURL,
		TrendsPath:   cfg.TrendsPath,
		ProjectsPath: cfg.ProjectsPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
