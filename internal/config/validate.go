package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.LLM.ConfiguredProviders()) == 0 {
		return fmt.Errorf("at least one LLM provider must be configured (OpenAI, Anthropic or Gemini)")
	}

	if !c.LLM.Arbiter.IsConfigured() {
		return fmt.Errorf("llm.arbiter must be configured for conflict detection")
	}

	if c.LLM.CallTimeout <= 0 {
		return fmt.Errorf("llm.call_timeout must be > 0 (got %v)", c.LLM.CallTimeout)
	}
	if c.LLM.EvaluationTimeout < c.LLM.CallTimeout {
		return fmt.Errorf("llm.evaluation_timeout must be >= llm.call_timeout (got %v < %v)",
			c.LLM.EvaluationTimeout, c.LLM.CallTimeout)
	}

	return nil
}
