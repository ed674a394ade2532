package narrative

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minhyannv/fence-quote-go/pkg/quote"
)

// BuildSystemPrompt returns the contractor persona instructions.
func BuildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are a professional fence contractor writing clear, friendly quotes for homeowners.")
	sb.WriteString(" Be concise, avoid jargon, and explain what is included in the price.")
	sb.WriteString(" Do NOT change the numbers.")
	return sb.String()
}

// BuildUserPrompt embeds the quote as JSON together with the layout requirements.
func BuildUserPrompt(q quote.Quote, customerName string) (string, error) {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode quote: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Create a customer-facing quote based on this structured data.\n\n")
	sb.WriteString(fmt.Sprintf("Customer name: %s\n\n", sanitizeLine(customerOrDefault(customerName))))
	sb.WriteString("Quote data (JSON):\n")
	sb.Write(data)
	sb.WriteString("\n\nRequirements:\n")
	sb.WriteString("- Start with a short friendly greeting.\n")
	sb.WriteString("- Clearly state the fence length (number of 6' sections).\n")
	sb.WriteString("- Mention the store you're sourcing materials from and that you're using current prices as of today.\n")
	sb.WriteString("- Summarize materials and labor in plain language (no need to list every item unless it's helpful).\n")
	sb.WriteString("- Show a simple price breakdown: materials (with markup), labor, tax if any, and total.\n")
	sb.WriteString("- End with a short note about timing and how long the quote is valid.\n")
	return sb.String(), nil
}

// sanitizeLine keeps prompt fields single-line and trimmed.
func sanitizeLine(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return strings.TrimSpace(value)
}
