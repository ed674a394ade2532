package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	configpkg "github.com/minhyannv/fence-quote-go/pkg/config"
)

// jobFlags holds per-job values given on the command line. A nil pointer means "ask".
type jobFlags struct {
	Sections *int
	Hours    *float64
	Rate     *float64
	Markup   *float64
	Customer *string
}

// complete reports whether every required job value came from flags.
func (j jobFlags) complete() bool {
	return j.Sections != nil && j.Hours != nil && j.Rate != nil
}

// parseCLIConfig loads env + flags into runtime config.
func parseCLIConfig(args []string, getenv func(string) string, stderr io.Writer) (configpkg.Config, jobFlags, error) {
	_ = godotenv.Load()

	defaults := configpkg.DefaultConfig()
	fs := flag.NewFlagSet("fencequote", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var vendors stringSliceFlag
	fs.Var(&vendors, "vendor", "Vendor id to compare. Repeat this flag for multiple vendors; default compares every catalog vendor")
	catalogPath := fs.String("catalog", "", "YAML price list (default: built-in Home Depot / Lowe's prices)")
	markup := fs.Float64("markup", defaults.MarkupPct, "Materials markup percentage")
	taxRate := fs.Float64("tax_rate", defaults.TaxRate, "Tax rate as a fraction of the subtotal (0.08 = 8%)")
	validDays := fs.Int("valid_days", defaults.ValidDays, "Days the quote stays valid")
	renderer := fs.String("renderer", defaults.Renderer, "Customer text renderer: auto, openai or template")
	sections := fs.Int("sections", 0, "Number of 6-foot fence sections")
	hours := fs.Float64("hours", 0, "Estimated labor hours")
	rate := fs.Float64("rate", 0, "Hourly labor rate")
	customer := fs.String("customer", "", "Customer name")
	xlsxPath := fs.String("xlsx", "", "Write the quote as an Excel workbook to this path")
	pdfPath := fs.String("pdf", "", "Write the quote as a PDF to this path")
	logFormat := fs.String("log_format", defaults.LogFormat, "Log output format: text or json")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return configpkg.Config{}, jobFlags{}, err
	}

	var job jobFlags
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sections":
			job.Sections = sections
		case "hours":
			job.Hours = hours
		case "rate":
			job.Rate = rate
		case "markup":
			job.Markup = markup
		case "customer":
			job.Customer = customer
		}
	})

	cfg := defaults
	cfg.CatalogPath = *catalogPath
	cfg.Vendors = vendors.values()
	cfg.MarkupPct = *markup
	cfg.TaxRate = *taxRate
	cfg.ValidDays = *validDays
	cfg.Renderer = *renderer
	cfg.XLSXPath = *xlsxPath
	cfg.PDFPath = *pdfPath
	cfg.LogFormat = *logFormat
	cfg.Verbose = *verbose
	cfg.APIKey = strings.TrimSpace(getenv("OPENAI_API_KEY"))
	cfg.BaseURL = strings.TrimSpace(getenv("OPENAI_BASE_URL"))
	cfg.Model = strings.TrimSpace(getenv("OPENAI_MODEL"))
	if raw := strings.TrimSpace(getenv("FENCEQUOTE_TEMPERATURE")); raw != "" {
		temperature, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return configpkg.Config{}, jobFlags{}, fmt.Errorf("FENCEQUOTE_TEMPERATURE: %w", err)
		}
		cfg.Temperature = temperature
	}

	cfg = configpkg.Normalize(cfg)
	if err := configpkg.Validate(cfg); err != nil {
		return configpkg.Config{}, jobFlags{}, err
	}
	return cfg, job, nil
}

// stringSliceFlag supports repeatable -vendor flags.
type stringSliceFlag []string

func (f *stringSliceFlag) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(*f, ",")
}

func (f *stringSliceFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("empty vendor id")
	}
	if strings.Contains(value, ",") {
		return fmt.Errorf("comma-separated values are not supported for -vendor; repeat the flag instead")
	}
	*f = append(*f, value)
	return nil
}

func (f stringSliceFlag) values() []string {
	out := make([]string, len(f))
	copy(out, f)
	return out
}
