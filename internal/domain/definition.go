package domain

// StandardizedDefinition is the definition shape every provider is asked to
// produce. It is embedded in a ProviderResponse, never persisted on its own.
type StandardizedDefinition struct {
	Word          string            `json:"word"`
	Definition    string            `json:"definition"`
	PartOfSpeech  string            `json:"part_of_speech"`
	Etymology     *string           `json:"etymology,omitempty"`
	Variations    map[string]string `json:"variations,omitempty"`
	UsageExamples []string          `json:"usage_examples,omitempty"`
	Confidence    float64           `json:"confidence"`
}

// Validate checks the fields downstream conflict detection depends on.
// Confidence outside [0,1] is an error, not something to clamp: a provider
// that cannot follow the scale produces an incomparable signal.
func (d StandardizedDefinition) Validate() error {
	var errs []FieldError
	if d.Word == "" {
		errs = append(errs, FieldError{Field: "word", Message: "required"})
	}
	if d.Definition == "" {
		errs = append(errs, FieldError{Field: "definition", Message: "required"})
	}
	if d.PartOfSpeech == "" {
		errs = append(errs, FieldError{Field: "part_of_speech", Message: "required"})
	}
	if d.Confidence < 0.0 || d.Confidence > 1.0 {
		errs = append(errs, FieldError{Field: "confidence", Message: "must be in [0.0, 1.0]"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
