package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestStringSliceFlagSetRejectsComma(t *testing.T) {
	var f stringSliceFlag
	if err := f.Set("lowes,home_depot"); err == nil {
		t.Fatal("expected comma-separated value to be rejected")
	}
}

func TestStringSliceFlagSetAcceptsSingleValue(t *testing.T) {
	var f stringSliceFlag
	if err := f.Set(" lowes "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f) != 1 || f[0] != "lowes" {
		t.Fatalf("unexpected flag values: %#v", f)
	}
}

func TestParseCLIConfigJobFlags(t *testing.T) {
	cfg, job, err := parseCLIConfig(
		[]string{"-sections", "10", "-hours", "8", "-rate", "75", "-vendor", "lowes", "-renderer", "template"},
		envMap(map[string]string{"OPENAI_MODEL": "gpt-4o-mini", "FENCEQUOTE_TEMPERATURE": "0.2"}),
		io.Discard,
	)
	if err != nil {
		t.Fatalf("parseCLIConfig: %v", err)
	}
	if !job.complete() || *job.Sections != 10 || *job.Rate != 75 {
		t.Fatalf("unexpected job flags: %+v", job)
	}
	if job.Markup != nil || job.Customer != nil {
		t.Fatal("unset flags must stay nil")
	}
	if cfg.MarkupPct != 15 || cfg.Model != "gpt-4o-mini" || cfg.Temperature != 0.2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Vendors) != 1 || cfg.Vendors[0] != "lowes" {
		t.Fatalf("unexpected vendors: %#v", cfg.Vendors)
	}
}

func TestParseCLIConfigRejectsBadTemperature(t *testing.T) {
	_, _, err := parseCLIConfig(nil, envMap(map[string]string{"FENCEQUOTE_TEMPERATURE": "warm"}), io.Discard)
	if err == nil {
		t.Fatal("expected temperature parse error")
	}
}

func TestParseCLIConfigRequiresKeyForOpenAI(t *testing.T) {
	_, _, err := parseCLIConfig([]string{"-renderer", "openai"}, envMap(nil), io.Discard)
	if err == nil {
		t.Fatal("expected missing api key error")
	}
}

func TestParseCLIConfigHelpExitsCleanly(t *testing.T) {
	var usage bytes.Buffer
	_, _, err := parseCLIConfig([]string{"-h"}, envMap(nil), &usage)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if code := parseExitCode(err); code != 0 {
		t.Fatalf("expected exit code 0 for help, got %d", code)
	}
	if !strings.Contains(usage.String(), "-sections") {
		t.Fatalf("expected usage text, got %q", usage.String())
	}
	if code := parseExitCode(errors.New("flag provided but not defined: -x")); code != 2 {
		t.Fatalf("expected exit code 2 for bad flags, got %d", code)
	}
}

func TestParseCLIConfigLogFormat(t *testing.T) {
	cfg, _, err := parseCLIConfig([]string{"-log_format", "JSON"}, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("parseCLIConfig: %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format, got %q", cfg.LogFormat)
	}
	if _, _, err := parseCLIConfig([]string{"-log_format", "xml"}, envMap(nil), io.Discard); err == nil {
		t.Fatal("expected unknown log format error")
	}
}
