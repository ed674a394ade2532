package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errInputClosed = errors.New("input closed before all answers were given")

// prompter asks questions on out and reads answers line by line from in.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	if out == nil {
		out = io.Discard
	}
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// askInt re-prompts until it reads a non-negative integer.
func (p *prompter) askInt(label string) (int, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err == nil && v >= 0 {
			return v, nil
		}
		_, _ = fmt.Fprintf(p.out, "Please enter a whole number of 0 or more.\n")
	}
}

// askFloat re-prompts until it reads a non-negative number. A blank answer
// returns def when def is non-nil.
func (p *prompter) askFloat(label string, def *float64) (float64, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		if answer == "" && def != nil {
			return *def, nil
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && v >= 0 {
			return v, nil
		}
		_, _ = fmt.Fprintf(p.out, "Please enter a number of 0 or more.\n")
	}
}

type jobAnswers struct {
	Sections int
	Hours    float64
	Rate     float64
	Markup   float64
	Customer string
}

// collectJob fills every value missing from flags by asking. When the required
// values all came from flags nothing is asked.
func collectJob(p *prompter, job jobFlags, defaultMarkup float64) (jobAnswers, error) {
	answers := jobAnswers{Markup: defaultMarkup}
	if job.Markup != nil {
		answers.Markup = *job.Markup
	}
	if job.Customer != nil {
		answers.Customer = strings.TrimSpace(*job.Customer)
	}
	if job.complete() {
		answers.Sections, answers.Hours, answers.Rate = *job.Sections, *job.Hours, *job.Rate
		return answers, nil
	}

	_, _ = fmt.Fprintln(p.out, "Fence Quote")
	_, _ = fmt.Fprintln(p.out, "-----------")

	var err error
	if job.Sections != nil {
		answers.Sections = *job.Sections
	} else if answers.Sections, err = p.askInt("Number of 6-foot sections: "); err != nil {
		return jobAnswers{}, err
	}
	if job.Hours != nil {
		answers.Hours = *job.Hours
	} else if answers.Hours, err = p.askFloat("Estimated labor hours: ", nil); err != nil {
		return jobAnswers{}, err
	}
	if job.Rate != nil {
		answers.Rate = *job.Rate
	} else if answers.Rate, err = p.askFloat("Hourly labor rate (e.g., 75): ", nil); err != nil {
		return jobAnswers{}, err
	}
	if job.Markup == nil {
		def := defaultMarkup
		label := fmt.Sprintf("Materials markup %% (default %g): ", defaultMarkup)
		if answers.Markup, err = p.askFloat(label, &def); err != nil {
			return jobAnswers{}, err
		}
	}
	if job.Customer == nil {
		name, err := p.ask("Customer name (optional): ")
		if err != nil && !errors.Is(err, errInputClosed) {
			return jobAnswers{}, err
		}
		answers.Customer = name
	}
	return answers, nil
}
