package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	LLM      LLMConfig      `yaml:"llm"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"neologe"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// ProviderConfig holds the settings for one LLM provider.
// A provider is configured when its API key is present.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"  env-default:""`
	Model   string `yaml:"model"    env-default:""`
	BaseURL string `yaml:"base_url" env-default:""`
}

// LLMConfig holds the evaluator fan-out and arbiter settings.
type LLMConfig struct {
	OpenAI    ProviderConfig `yaml:"openai"    env-prefix:"LLM_OPENAI_"`
	Anthropic ProviderConfig `yaml:"anthropic" env-prefix:"LLM_ANTHROPIC_"`
	Gemini    ProviderConfig `yaml:"gemini"    env-prefix:"LLM_GEMINI_"`
	Arbiter   ProviderConfig `yaml:"arbiter"   env-prefix:"LLM_ARBITER_"`

	// CallTimeout bounds each individual provider call; a slow provider
	// times out alone without cancelling its siblings.
	CallTimeout time.Duration `yaml:"call_timeout" env:"LLM_CALL_TIMEOUT" env-default:"30s"`

	// EvaluationTimeout bounds a whole evaluation pass (fan-out + arbiter),
	// used for the detached background context.
	EvaluationTimeout time.Duration `yaml:"evaluation_timeout" env:"LLM_EVALUATION_TIMEOUT" env-default:"2m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// IsConfigured reports whether the provider has credentials.
func (p ProviderConfig) IsConfigured() bool {
	return p.APIKey != ""
}

// ConfiguredProviders returns the names of evaluators with credentials,
// in the fixed fan-out order.
func (c LLMConfig) ConfiguredProviders() []string {
	var names []string
	if c.OpenAI.IsConfigured() {
		names = append(names, "openai")
	}
	if c.Anthropic.IsConfigured() {
		names = append(names, "anthropic")
	}
	if c.Gemini.IsConfigured() {
		names = append(names, "gemini")
	}
	return names
}
