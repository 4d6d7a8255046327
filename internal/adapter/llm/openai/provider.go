// Package openai implements the evaluator contract against the OpenAI
// chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/llm"
)

const (
	providerName   = "openai"
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Provider calls the OpenAI chat completions API.
type Provider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates an OpenAI provider. model and baseURL fall back to defaults
// when empty; a custom baseURL is used by tests.
func New(apiKey, model, baseURL string, logger *slog.Logger) *Provider {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		// Per-call deadlines come from the caller's context.
		httpClient: &http.Client{},
		log:        logger.With("adapter", providerName),
	}
}

// Name implements llm.Evaluator.
func (p *Provider) Name() string { return providerName }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Evaluate sends one definition request and parses the standardized shape.
// No retries: a slow or broken provider must not hold up its siblings.
func (p *Provider) Evaluate(ctx context.Context, word, userDefinition string, wordContext *string) (*domain.StandardizedDefinition, string, error) {
	prompt := llm.BuildDefinitionPrompt(word, userDefinition, wordContext)

	reqBody, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: llm.DefinitionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "openai request", slog.String("word", word), slog.String("model", p.model))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, "", p.transportFailure(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureHTTPError, Detail: fmt.Sprintf("read body: %v", err)}
	}
	raw := string(body)

	if kind, ok := classifyStatus(resp.StatusCode); ok {
		p.log.WarnContext(ctx, "openai request failed",
			slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, raw, &llm.ProviderFailure{
			Provider: providerName,
			Kind:     kind,
			Detail:   fmt.Sprintf("status %d", resp.StatusCode),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Choices) == 0 {
		return nil, raw, &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureMalformedOutput, Detail: "response has no choices"}
	}

	content := parsed.Choices[0].Message.Content
	def, err := llm.ParseDefinition(content)
	if err != nil {
		return nil, content, &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureMalformedOutput, Detail: err.Error()}
	}

	p.log.DebugContext(ctx, "openai response", slog.String("word", word), slog.Float64("confidence", def.Confidence))
	return def, content, nil
}

func (p *Provider) transportFailure(ctx context.Context, err error) *llm.ProviderFailure {
	kind := llm.FailureHTTPError
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		kind = llm.FailureTimeout
	}
	return &llm.ProviderFailure{Provider: providerName, Kind: kind, Detail: err.Error()}
}

// classifyStatus maps a non-success HTTP status to a failure kind.
func classifyStatus(code int) (llm.FailureKind, bool) {
	switch {
	case code >= 200 && code < 300:
		return "", false
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return llm.FailureAuthError, true
	default:
		return llm.FailureHTTPError, true
	}
}
