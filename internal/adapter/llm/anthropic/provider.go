// Package anthropic implements the evaluator contract using the official
// Anthropic SDK.
package anthropic

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/llm"
)

const (
	providerName = "anthropic"
	defaultModel = "claude-3-5-haiku-latest"
)

// Provider calls the Anthropic Messages API.
type Provider struct {
	client sdk.Client
	model  string
	log    *slog.Logger
}

// New creates an Anthropic provider. model falls back to a default when
// empty; baseURL overrides the API endpoint (tests).
func New(apiKey, model, baseURL string, logger *slog.Logger) *Provider {
	if model == "" {
		model = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Provider{
		client: sdk.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", providerName),
	}
}

// Name implements llm.Evaluator.
func (p *Provider) Name() string { return providerName }

// Evaluate sends one definition request and parses the standardized shape.
func (p *Provider) Evaluate(ctx context.Context, word, userDefinition string, wordContext *string) (*domain.StandardizedDefinition, string, error) {
	prompt := llm.BuildDefinitionPrompt(word, userDefinition, wordContext)

	p.log.DebugContext(ctx, "anthropic request", slog.String("word", word), slog.String("model", p.model))

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: 1024,
		System:    []sdk.TextBlockParam{{Text: llm.DefinitionSystemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, "", classifyError(err, ctx)
	}

	if len(msg.Content) == 0 {
		return nil, "", &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureMalformedOutput, Detail: "empty response"}
	}

	text := msg.Content[0].Text
	def, err := llm.ParseDefinition(text)
	if err != nil {
		return nil, text, &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureMalformedOutput, Detail: err.Error()}
	}

	p.log.DebugContext(ctx, "anthropic response", slog.String("word", word), slog.Float64("confidence", def.Confidence))
	return def, text, nil
}

// classifyError maps SDK errors to the provider failure taxonomy.
func classifyError(err error, ctx context.Context) *llm.ProviderFailure {
	kind := llm.FailureHTTPError

	var apierr *sdk.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil:
		kind = llm.FailureTimeout
	case errors.As(err, &apierr):
		if apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden {
			kind = llm.FailureAuthError
		}
	}

	return &llm.ProviderFailure{Provider: providerName, Kind: kind, Detail: err.Error()}
}
