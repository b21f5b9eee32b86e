package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thibault/resume-site/internal/content"
	"github.com/thibault/resume-site/internal/observability"
	"github.com/thibault/resume-site/internal/rendering"
	"github.com/thibault/resume-site/internal/server"
	"github.com/thibault/resume-site/internal/validation"
	"github.com/thibault/resume-site/web"
)

var (
	renderOutputFile string
	renderContent    string
	renderCheck      bool
	renderVerbose    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the résumé page once",
	Long:  "Renders the full résumé page to a file or stdout, optionally running structural checks on the output.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().StringVar(&renderContent, "content", "", "Path to a résumé content JSON file (default: embedded content)")
	renderCmd.Flags().BoolVar(&renderCheck, "check", false, "Validate the rendered document structure and fail on violations")
	renderCmd.Flags().BoolVar(&renderVerbose, "verbose", false, "Print a summary of the loaded content")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := content.Load(renderContent)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	if renderVerbose {
		observability.NewPrinter(os.Stderr).PrintContentSummary(data)
	}

	renderer, err := rendering.New(web.Assets, false)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	cacheBust, err := server.CacheBustToken(web.Assets)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, &rendering.PageData{ResumeData: data, CacheBust: cacheBust}); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	if renderCheck {
		violations, err := validation.CheckDocument(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return fmt.Errorf("failed to check document: %w", err)
		}
		if len(violations) > 0 {
			for _, v := range violations {
				fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", v.Severity, v.Details, v.Type)
			}
			return fmt.Errorf("document has %d structural violation(s)", len(violations))
		}
	}

	if renderOutputFile == "" {
		_, err = buf.WriteTo(os.Stdout)
		return err
	}

	outputDir := filepath.Dir(renderOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully rendered page\n")
	fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	return nil
}
