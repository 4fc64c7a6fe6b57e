package main

import (
	"fmt"
	"log"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring, ranking, and storing job descriptions and resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigFile, config.Config{Port: servePort})
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set; storage endpoints will be disabled")
	}
	if cfg.APIKey == "" {
		log.Println("GEMINI_API_KEY not set; scoring runs in keyword-only mode")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
