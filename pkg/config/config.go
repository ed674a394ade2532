package config

import (
	"fmt"
	"strings"
)

// Renderer modes.
const (
	RendererAuto     = "auto"
	RendererOpenAI   = "openai"
	RendererTemplate = "template"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all runtime configuration for the quote tool.
type Config struct {
	CatalogPath string
	Vendors     []string
	MarkupPct   float64
	TaxRate     float64
	ValidDays   int
	Renderer    string
	LogFormat   string
	Verbose     bool

	XLSXPath string
	PDFPath  string

	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		MarkupPct:   15.0,
		TaxRate:     0.0,
		ValidDays:   30,
		Renderer:    RendererAuto,
		LogFormat:   LogFormatText,
		Model:       "gpt-4.1-mini",
		Temperature: 0.4,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.CatalogPath = strings.TrimSpace(cfg.CatalogPath)
	cfg.XLSXPath = strings.TrimSpace(cfg.XLSXPath)
	cfg.PDFPath = strings.TrimSpace(cfg.PDFPath)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.Renderer = strings.ToLower(strings.TrimSpace(cfg.Renderer))
	if cfg.Renderer == "" {
		cfg.Renderer = RendererAuto
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatText
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.ValidDays <= 0 {
		cfg.ValidDays = DefaultConfig().ValidDays
	}

	vendors := make([]string, 0, len(cfg.Vendors))
	for _, v := range cfg.Vendors {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		vendors = append(vendors, v)
	}
	cfg.Vendors = vendors
	return cfg
}

// Validate reports configuration that cannot be used.
func Validate(cfg Config) error {
	switch cfg.Renderer {
	case RendererAuto, RendererTemplate:
	case RendererOpenAI:
		if cfg.APIKey == "" {
			return fmt.Errorf("renderer %q requires OPENAI_API_KEY", cfg.Renderer)
		}
	default:
		return fmt.Errorf("unknown renderer %q (want auto, openai or template)", cfg.Renderer)
	}
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return fmt.Errorf("unknown log format %q (want text or json)", cfg.LogFormat)
	}
	if cfg.MarkupPct < 0 {
		return fmt.Errorf("markup must be non-negative, got %v", cfg.MarkupPct)
	}
	if cfg.TaxRate < 0 || cfg.TaxRate > 1 {
		return fmt.Errorf("tax rate must be between 0 and 1, got %v", cfg.TaxRate)
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", cfg.Temperature)
	}
	return nil
}

// UseOpenAI reports whether quotes should be phrased by the language model.
func (c Config) UseOpenAI() bool {
	switch c.Renderer {
	case RendererOpenAI:
		return true
	case RendererAuto:
		return c.APIKey != ""
	default:
		return false
	}
}
