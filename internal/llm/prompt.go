package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/neologe-backend/internal/domain"
)

// DefinitionSystemPrompt is sent as the system message to providers that
// support one. Others get it prepended to the user prompt.
const DefinitionSystemPrompt = "You are a linguistic expert analyzing neologisms. Always respond with valid JSON."

// BuildDefinitionPrompt creates the shared instruction that demands the exact
// standardized definition shape. Every provider receives the same prompt so
// their outputs stay comparable.
func BuildDefinitionPrompt(word, userDefinition string, wordContext *string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the neologism %q with the user-provided definition: %q\n", word, userDefinition)
	if wordContext != nil && strings.TrimSpace(*wordContext) != "" {
		fmt.Fprintf(&b, "\nAdditional context: %s\n", *wordContext)
	}

	fmt.Fprintf(&b, `
Respond with ONLY a JSON object in exactly this format:
{
  "word": %q,
  "definition": "A concise, dictionary-style definition",
  "part_of_speech": "noun/verb/adjective/etc",
  "etymology": "Likely word origin and formation",
  "variations": {"plural": "...", "adjective": "...", "verb": "..."},
  "usage_examples": ["Example sentence 1", "Example sentence 2"],
  "confidence": 0.85
}

Rate your confidence in this analysis on a scale of 0.0 to 1.0.
Output only the JSON, no markdown, no explanations.`, word)

	return b.String()
}

// ArbiterSystemPrompt frames the conflict-detection call.
const ArbiterSystemPrompt = "You are an expert linguist evaluating consistency between dictionary definitions. Always respond with valid JSON."

// BuildArbiterPrompt asks the arbiter to compare the successful definitions
// for one word and return a structured verdict.
func BuildArbiterPrompt(word string, defs []domain.StandardizedDefinition) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Compare these %d independent definitions of the neologism %q:\n", len(defs), word)

	for i, def := range defs {
		encoded, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal definition %d: %w", i+1, err)
		}
		fmt.Fprintf(&b, "\nDefinition %d:\n%s\n", i+1, encoded)
	}

	b.WriteString(`
Decide whether they materially disagree: a substantive divergence in meaning,
part of speech, or etymology. Differences in wording alone are not a conflict.

Respond with ONLY a JSON object in exactly this format:
{"conflict": true/false, "explanation": "One paragraph explaining the decision"}`)

	return b.String(), nil
}
