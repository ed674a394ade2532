package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	loggerpkg "github.com/minhyannv/fence-quote-go/pkg/logger"
	"github.com/minhyannv/fence-quote-go/pkg/quote"
)

// OpenAIConfig configures the chat completion renderer.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64

	Verbose bool
	Logger  loggerpkg.Logger
}

// OpenAIRenderer asks a chat completion model to phrase the quote.
type OpenAIRenderer struct {
	client      openai.Client
	model       string
	temperature float64
	logger      loggerpkg.Logger
	verbose     bool
}

// NewOpenAIRenderer validates cfg and builds the client. Extra request options are
// appended after the ones derived from cfg.
func NewOpenAIRenderer(cfg OpenAIConfig, opts ...option.RequestOption) (*OpenAIRenderer, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.APIKey == "" {
		return nil, errors.New("APIKey is not set")
	}
	if cfg.Model == "" {
		return nil, errors.New("Model is not set")
	}
	if cfg.Logger == nil {
		cfg.Logger = loggerpkg.NopLogger{}
	}

	return &OpenAIRenderer{
		client:      newOpenAIClient(cfg, opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      cfg.Logger,
		verbose:     cfg.Verbose,
	}, nil
}

func newOpenAIClient(cfg OpenAIConfig, extra ...option.RequestOption) openai.Client {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	opts = append(opts, extra...)
	return openai.NewClient(opts...)
}

// Render sends one completion request and returns the assistant text.
func (r *OpenAIRenderer) Render(ctx context.Context, q quote.Quote, customerName string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	userPrompt, err := BuildUserPrompt(q, customerName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRendererFailure, err)
	}

	loggerpkg.Debug(r.verbose, r.logger, "narrative request", map[string]any{
		"model":        r.model,
		"prompt_bytes": len(userPrompt),
	})
	completion, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(BuildSystemPrompt()),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(r.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRendererFailure, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion choices", ErrRendererFailure)
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty completion content", ErrRendererFailure)
	}
	loggerpkg.Debug(r.verbose, r.logger, "narrative response", map[string]any{
		"bytes": len(content),
	})
	return content, nil
}
