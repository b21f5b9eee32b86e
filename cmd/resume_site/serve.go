package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thibault/resume-site/internal/config"
	"github.com/thibault/resume-site/internal/content"
	"github.com/thibault/resume-site/internal/observability"
	"github.com/thibault/resume-site/internal/server"
)

var (
	servePort    int
	serveContent string
	serveConfig  string
	serveDebug   bool
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the résumé web server",
	Long:  `Start an HTTP server that renders the résumé page and serves its static assets.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or $PORT)")
	serveCmd.Flags().StringVar(&serveContent, "content", "", "Path to a résumé content JSON file (default: embedded content, or $RESUME_CONTENT)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a site config JSON file")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Reload templates and assets from disk on every request")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print a summary of the loaded content")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:    servePort,
		Content: serveContent,
		Debug:   serveDebug,
		Verbose: serveVerbose,
	}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Debug = cfg.Debug || fileCfg.Debug
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	// Environment fallbacks (.env is loaded by main).
	if cfg.Port == 0 {
		if port := os.Getenv("PORT"); port != "" {
			parsed, err := strconv.Atoi(port)
			if err != nil {
				return fmt.Errorf("invalid PORT value %q: %w", port, err)
			}
			cfg.Port = parsed
		}
	}
	if cfg.Content == "" {
		cfg.Content = os.Getenv("RESUME_CONTENT")
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := content.Load(cfg.Content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintContentSummary(data)
	}

	srv, err := server.New(server.Config{
		Port:  cfg.Port,
		Data:  data,
		Debug: cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
