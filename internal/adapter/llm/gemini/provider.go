// Package gemini implements the evaluator contract against the Google
// Gemini generateContent API.
package gemini

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
	providerName   = "gemini"
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
)

// Provider calls the Gemini generateContent API.
type Provider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Gemini provider. model and baseURL fall back to defaults
// when empty; a custom baseURL is used by tests.
func New(apiKey, model, baseURL string, logger *slog.Logger) *Provider {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        logger.With("adapter", providerName),
	}
}

// Name implements llm.Evaluator.
func (p *Provider) Name() string { return providerName }

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Evaluate sends one definition request and parses the standardized shape.
// Gemini has no system role on this endpoint, so the system framing is
// prepended to the user prompt.
func (p *Provider) Evaluate(ctx context.Context, word, userDefinition string, wordContext *string) (*domain.StandardizedDefinition, string, error) {
	prompt := llm.DefinitionSystemPrompt + "\n\n" + llm.BuildDefinitionPrompt(word, userDefinition, wordContext)

	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.3,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	p.log.DebugContext(ctx, "gemini request", slog.String("word", word), slog.String("model", p.model))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		kind := llm.FailureHTTPError
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			kind = llm.FailureTimeout
		}
		return nil, "", &llm.ProviderFailure{Provider: providerName, Kind: kind, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureHTTPError, Detail: fmt.Sprintf("read body: %v", err)}
	}
	raw := string(body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, raw, &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureAuthError, Detail: fmt.Sprintf("status %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		p.log.WarnContext(ctx, "gemini request failed", slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, raw, &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureHTTPError, Detail: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil ||
		len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, raw, &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureMalformedOutput, Detail: "response has no candidates"}
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	def, err := llm.ParseDefinition(text)
	if err != nil {
		return nil, text, &llm.ProviderFailure{Provider: providerName, Kind: llm.FailureMalformedOutput, Detail: err.Error()}
	}

	p.log.DebugContext(ctx, "gemini response", slog.String("word", word), slog.Float64("confidence", def.Confidence))
	return def, text, nil
}
