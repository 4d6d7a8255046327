package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/neologe-backend/internal/domain"
)

// ExtractJSON finds the first complete JSON object in a model response.
// Models occasionally wrap the object in prose or markdown fences despite
// the instruction not to.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// rawDefinition mirrors StandardizedDefinition with a pointer confidence so
// a missing field is distinguishable from a literal 0.0.
type rawDefinition struct {
	Word          string            `json:"word"`
	Definition    string            `json:"definition"`
	PartOfSpeech  string            `json:"part_of_speech"`
	Etymology     *string           `json:"etymology"`
	Variations    map[string]string `json:"variations"`
	UsageExamples []string          `json:"usage_examples"`
	Confidence    *float64          `json:"confidence"`
}

// ParseDefinition parses untrusted model output into a validated
// StandardizedDefinition. Missing or out-of-range confidence, or any missing
// required field, is a parse failure, never silently defaulted.
func ParseDefinition(payload string) (*domain.StandardizedDefinition, error) {
	jsonStr, err := ExtractJSON(payload)
	if err != nil {
		return nil, err
	}

	var raw rawDefinition
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	if raw.Confidence == nil {
		return nil, fmt.Errorf("definition is missing confidence")
	}

	def := domain.StandardizedDefinition{
		Word:          strings.TrimSpace(raw.Word),
		Definition:    strings.TrimSpace(raw.Definition),
		PartOfSpeech:  strings.TrimSpace(raw.PartOfSpeech),
		Etymology:     raw.Etymology,
		Variations:    raw.Variations,
		UsageExamples: raw.UsageExamples,
		Confidence:    *raw.Confidence,
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("definition failed validation: %w", err)
	}

	return &def, nil
}

// rawVerdict mirrors Verdict with a pointer boolean so a missing field is
// distinguishable from an explicit false.
type rawVerdict struct {
	Conflict    *bool  `json:"conflict"`
	Explanation string `json:"explanation"`
}

// ParseVerdict parses the arbiter's response. A missing conflict field is a
// failure: assuming conflict-free on garbage would hide real disagreements.
func ParseVerdict(payload string) (*domain.Verdict, error) {
	jsonStr, err := ExtractJSON(payload)
	if err != nil {
		return nil, err
	}

	var raw rawVerdict
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("decode verdict: %w", err)
	}

	if raw.Conflict == nil {
		return nil, fmt.Errorf("verdict is missing conflict field")
	}

	return &domain.Verdict{
		Conflict:    *raw.Conflict,
		Explanation: strings.TrimSpace(raw.Explanation),
	}, nil
}
