// Package arbiter implements conflict detection against a single designated
// Anthropic evaluator. Unlike the fan-out providers its failures are fatal
// for the submission: with no trustworthy verdict the pipeline must not
// assume the definitions agree.
package arbiter

import (
	"context"
	"fmt"
	"log/slog"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/llm"
)

const defaultModel = "claude-sonnet-4-5"

// Arbiter judges disagreement between standardized definitions.
type Arbiter struct {
	client sdk.Client
	model  string
	log    *slog.Logger
}

// New creates an Arbiter. model falls back to a default when empty;
// baseURL overrides the API endpoint (tests).
func New(apiKey, model, baseURL string, logger *slog.Logger) *Arbiter {
	if model == "" {
		model = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Arbiter{
		client: sdk.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", "arbiter"),
	}
}

// Judge asks the arbitration evaluator whether the definitions materially
// disagree. Every failure path wraps llm.ErrArbiter.
func (a *Arbiter) Judge(ctx context.Context, word string, defs []domain.StandardizedDefinition) (*domain.Verdict, error) {
	if len(defs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 definitions, got %d", llm.ErrArbiter, len(defs))
	}

	prompt, err := llm.BuildArbiterPrompt(word, defs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrArbiter, err)
	}

	a.log.DebugContext(ctx, "arbiter request",
		slog.String("word", word), slog.Int("definitions", len(defs)))

	msg, err := a.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(a.model),
		MaxTokens: 1024,
		System:    []sdk.TextBlockParam{{Text: llm.ArbiterSystemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: call failed: %v", llm.ErrArbiter, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("%w: empty response", llm.ErrArbiter)
	}

	verdict, err := llm.ParseVerdict(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrArbiter, err)
	}

	a.log.InfoContext(ctx, "arbiter verdict",
		slog.String("word", word), slog.Bool("conflict", verdict.Conflict))

	return verdict, nil
}
