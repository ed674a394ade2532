package main

import (
	"strings"
	"testing"
)

func TestCollectJobUsesMarkupDefault(t *testing.T) {
	p := newPrompter(strings.NewReader("3\n4.5\n60\n\n\n"), nil)
	answers, err := collectJob(p, jobFlags{}, 15)
	if err != nil {
		t.Fatalf("collectJob: %v", err)
	}
	if answers.Sections != 3 || answers.Hours != 4.5 || answers.Rate != 60 {
		t.Fatalf("unexpected answers: %+v", answers)
	}
	if answers.Markup != 15 || answers.Customer != "" {
		t.Fatalf("expected default markup and no customer, got %+v", answers)
	}
}

func TestCollectJobRepromptsOnNegative(t *testing.T) {
	var out strings.Builder
	p := newPrompter(strings.NewReader("2\n-1\n5\n50\n20\nAda\n"), &out)
	answers, err := collectJob(p, jobFlags{}, 15)
	if err != nil {
		t.Fatalf("collectJob: %v", err)
	}
	if answers.Hours != 5 || answers.Markup != 20 || answers.Customer != "Ada" {
		t.Fatalf("unexpected answers: %+v", answers)
	}
	if !strings.Contains(out.String(), "Please enter a number of 0 or more.") {
		t.Fatalf("expected re-prompt, got:\n%s", out.String())
	}
}

func TestCollectJobAsksOnlyForMissingValues(t *testing.T) {
	sections := 7
	customer := "Lee"
	var out strings.Builder
	p := newPrompter(strings.NewReader("6\n80\n12\n"), &out)
	answers, err := collectJob(p, jobFlags{Sections: &sections, Customer: &customer}, 15)
	if err != nil {
		t.Fatalf("collectJob: %v", err)
	}
	if answers.Sections != 7 || answers.Hours != 6 || answers.Rate != 80 || answers.Markup != 12 || answers.Customer != "Lee" {
		t.Fatalf("unexpected answers: %+v", answers)
	}
	if strings.Contains(out.String(), "sections") || strings.Contains(out.String(), "Customer name") {
		t.Fatalf("asked for a value given by flag:\n%s", out.String())
	}
}
