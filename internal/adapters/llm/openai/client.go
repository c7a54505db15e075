package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

// Options configures the completion call.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client implements ports.Completer against any OpenAI-compatible
// chat completions endpoint.
type Client struct {
	sdk         oai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *slog.Logger
}

func NewClient(httpClient *http.Client, opts Options, logger *slog.Logger) *Client {
	sdk := oai.NewClient(
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(strings.TrimRight(opts.BaseURL, "/")+"/"),
		option.WithHTTPClient(httpClient),
		// One round trip per cue; the resolver falls back instead of retrying.
		option.WithMaxRetries(0),
	)
	return &Client{
		sdk:         sdk,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		timeout:     opts.Timeout,
		logger:      logger,
	}
}

func (c *Client) Complete(ctx context.Context, phrase string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.sdk.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: oai.ChatModel(c.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt),
			oai.UserMessage(buildUserPrompt(phrase)),
		},
		MaxTokens:   oai.Int(int64(c.maxTokens)),
		Temperature: oai.Float(c.temperature),
	})
	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.logger.DebugContext(ctx, "completion failed", "model", c.model, "latency_ms", latency, "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: timed out after %s", domain.ErrUpstream, c.timeout)
		}
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrUpstream)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrUpstream)
	}

	c.logger.DebugContext(ctx, "completion", "model", c.model, "latency_ms", latency)
	return text, nil
}
