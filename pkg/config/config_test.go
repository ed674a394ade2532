package config

import (
	"strings"
	"testing"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	cfg := Normalize(Config{
		Renderer: "  OpenAI ",
		Vendors:  []string{" lowes ", "", "home_depot"},
		APIKey:   " key ",
	})
	if cfg.Renderer != RendererOpenAI {
		t.Fatalf("expected renderer openai, got %q", cfg.Renderer)
	}
	if cfg.Model != "gpt-4.1-mini" || cfg.ValidDays != 30 || cfg.LogFormat != LogFormatText {
		t.Fatalf("expected defaults, got model=%q valid_days=%d", cfg.Model, cfg.ValidDays)
	}
	if len(cfg.Vendors) != 2 || cfg.Vendors[0] != "lowes" {
		t.Fatalf("unexpected vendors %#v", cfg.Vendors)
	}
	if cfg.APIKey != "key" {
		t.Fatalf("expected trimmed api key, got %q", cfg.APIKey)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Normalize(DefaultConfig())); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg := Normalize(DefaultConfig())
	cfg.Renderer = RendererOpenAI
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("expected missing key error, got %v", err)
	}

	cfg = Normalize(DefaultConfig())
	cfg.Renderer = "poetry"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected unknown renderer error")
	}

	cfg = Normalize(DefaultConfig())
	cfg.LogFormat = "xml"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected unknown log format error")
	}

	cfg = Normalize(DefaultConfig())
	cfg.TaxRate = 8
	if err := Validate(cfg); err == nil {
		t.Fatal("expected tax rate error")
	}
}

func TestUseOpenAI(t *testing.T) {
	cfg := Normalize(DefaultConfig())
	if cfg.UseOpenAI() {
		t.Fatal("auto without key should use the template renderer")
	}
	cfg.APIKey = "k"
	if !cfg.UseOpenAI() {
		t.Fatal("auto with key should use openai")
	}
	cfg.Renderer = RendererTemplate
	if cfg.UseOpenAI() {
		t.Fatal("template renderer should never use openai")
	}
}
