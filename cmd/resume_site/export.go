package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"
	"github.com/thibault/resume-site/internal/content"
	"github.com/thibault/resume-site/internal/server"
	"golang.org/x/sync/errgroup"
)

var (
	exportOutputFile string
	exportContent    string
	exportTimeout    time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the résumé page as a PDF",
	Long: `Renders the résumé page in a headless browser and prints it to PDF,
so the print stylesheet (page break, print font sizes) applies.
Requires Chrome/Chromium to be installed on the system.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "resume.pdf", "Path to output PDF file")
	exportCmd.Flags().StringVar(&exportContent, "content", "", "Path to a résumé content JSON file (default: embedded content)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 30*time.Second, "Timeout for browser rendering")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	data, err := content.Load(exportContent)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	srv, err := server.New(server.Config{Port: 0, Data: data})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Serve the page on an ephemeral loopback port for the browser to visit.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	httpServer := &http.Server{Handler: srv.Handler()}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	url := fmt.Sprintf("http://%s/", listener.Addr())
	pdf, printErr := printToPDF(ctx, url, exportTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)

	if err := g.Wait(); err != nil {
		return err
	}
	if printErr != nil {
		return printErr
	}

	outputDir := filepath.Dir(exportOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutputFile, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully exported PDF (%d bytes)\n", len(pdf))
	fmt.Fprintf(os.Stdout, "Output: %s\n", exportOutputFile)
	return nil
}

// printToPDF renders the page in a headless browser and prints it to PDF.
func printToPDF(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	return pdf, nil
}
