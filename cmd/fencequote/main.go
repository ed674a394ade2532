// Package main provides the fencequote CLI: it prices a fence job and phrases the quote for the customer.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minhyannv/fence-quote-go/pkg/catalog"
	configpkg "github.com/minhyannv/fence-quote-go/pkg/config"
	"github.com/minhyannv/fence-quote-go/pkg/export"
	loggerpkg "github.com/minhyannv/fence-quote-go/pkg/logger"
	"github.com/minhyannv/fence-quote-go/pkg/narrative"
	"github.com/minhyannv/fence-quote-go/pkg/quote"
)

// main is the program entry point.
func main() {
	config, job, err := parseCLIConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		code := parseExitCode(err)
		if code != 0 {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	}

	appLogger := newLogger(config.LogFormat, os.Stderr)
	if err := run(context.Background(), runOptions{
		Config: config,
		Job:    job,
		Logger: appLogger,
		Now:    time.Now,
	}, os.Stdin, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseExitCode maps a flag parsing error to a process exit code. -h and -help exit cleanly.
func parseExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

func newLogger(format string, w io.Writer) loggerpkg.Logger {
	if format == configpkg.LogFormatJSON {
		return loggerpkg.NewJSONLogger(w)
	}
	return loggerpkg.NewWriterLogger(w)
}

// runOptions configures one quote run.
type runOptions struct {
	Config configpkg.Config
	Job    jobFlags
	Logger loggerpkg.Logger
	Now    func() time.Time

	// Renderer overrides the renderer chosen from Config.
	Renderer narrative.Renderer
}

// run computes one quote, prints it and writes the requested exports.
// A renderer failure is reported on errOut and the template text is printed instead.
func run(ctx context.Context, opts runOptions, in io.Reader, out, errOut io.Writer) error {
	cfg := opts.Config
	if opts.Logger == nil {
		opts.Logger = loggerpkg.NopLogger{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	loggerpkg.Debug(cfg.Verbose, opts.Logger, "catalog ready", map[string]any{
		"path":      cfg.CatalogPath,
		"vendors":   len(cat.Vendors()),
		"materials": len(cat.Materials()),
	})

	answers, err := collectJob(newPrompter(in, out), opts.Job, cfg.MarkupPct)
	if err != nil {
		return err
	}

	calc := quote.NewCalculator(cat)
	q, err := calc.ComputeQuote(quote.Input{
		ProjectSize: answers.Sections,
		LaborHours:  answers.Hours,
		LaborRate:   answers.Rate,
		MarkupPct:   answers.Markup,
		TaxRate:     cfg.TaxRate,
	})
	if err != nil {
		loggerpkg.Error(opts.Logger, "quote computation failed", map[string]any{
			"sections": answers.Sections,
			"error":    err.Error(),
		})
		return fmt.Errorf("compute quote: %w", err)
	}
	loggerpkg.Debug(cfg.Verbose, opts.Logger, "quote computed", map[string]any{
		"vendor":      q.ChosenVendor,
		"grand_total": q.GrandTotal,
	})

	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}
	_, _ = fmt.Fprintln(out, "\n--- Internal Quote Data ---")
	_, _ = fmt.Fprintln(out, string(data))

	text := renderText(ctx, opts, q, answers.Customer, errOut)
	_, _ = fmt.Fprintln(out, "\n--- Customer Quote ---")
	_, _ = fmt.Fprintln(out, text)

	return writeExports(cfg, export.NewDocument(q, answers.Customer, opts.Now()), opts.Logger, out)
}

func loadCatalog(cfg configpkg.Config) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}
	restricted, err := cat.Restrict(cfg.Vendors...)
	if err != nil {
		return nil, fmt.Errorf("select vendors: %w", err)
	}
	return restricted, nil
}

func renderText(ctx context.Context, opts runOptions, q quote.Quote, customer string, errOut io.Writer) string {
	cfg := opts.Config
	fallback := narrative.NewTemplateRenderer(cfg.ValidDays)

	primary := opts.Renderer
	if primary == nil && cfg.UseOpenAI() {
		r, err := narrative.NewOpenAIRenderer(narrative.OpenAIConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Verbose:     cfg.Verbose,
			Logger:      opts.Logger,
		})
		if err != nil {
			loggerpkg.Warn(opts.Logger, "openai renderer unavailable", map[string]any{"error": err.Error()})
		} else {
			primary = r
		}
	}

	if primary != nil {
		text, err := primary.Render(ctx, q, customer)
		if err == nil {
			return text
		}
		loggerpkg.Warn(opts.Logger, "narrative renderer failed", map[string]any{"error": err.Error()})
		_, _ = fmt.Fprintf(errOut, "Warning: %v; showing the standard quote text instead.\n", err)
	}

	text, err := fallback.Render(ctx, q, customer)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Warning: %v\n", err)
		return ""
	}
	return text
}

func writeExports(cfg configpkg.Config, doc export.Document, logger loggerpkg.Logger, out io.Writer) error {
	if cfg.XLSXPath != "" {
		data, err := export.WriteXLSX(doc)
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
		if err := os.WriteFile(cfg.XLSXPath, data, 0o644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		loggerpkg.Info(logger, "workbook written", map[string]any{"path": cfg.XLSXPath, "quote": doc.Number})
		_, _ = fmt.Fprintf(out, "Saved %s\n", cfg.XLSXPath)
	}
	if cfg.PDFPath != "" {
		data, err := export.WritePDF(doc)
		if err != nil {
			return fmt.Errorf("build pdf: %w", err)
		}
		if err := os.WriteFile(cfg.PDFPath, data, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		loggerpkg.Info(logger, "pdf written", map[string]any{"path": cfg.PDFPath, "quote": doc.Number})
		_, _ = fmt.Fprintf(out, "Saved %s\n", cfg.PDFPath)
	}
	return nil
}
