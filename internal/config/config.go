package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Cache  CacheConfig  `mapstructure:"cache"  validate:"required"`
}

// ServerConfig contains settings for the hosting process.
type ServerConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the external generative-model settings.
//
// GeminiAPIKey is deliberately optional: an empty key is a valid
// configuration state that routes every generation to the offline mock
// path, not an error.
type LLMConfig struct {
	GeminiAPIKey    string  `mapstructure:"gemini_api_key"`
	ModelName       string  `mapstructure:"model_name"        validate:"required"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens" validate:"gt=0"`
	Temperature     float32 `mapstructure:"temperature"       validate:"gte=0,lte=2"`
	TopP            float32 `mapstructure:"top_p"             validate:"gte=0,lte=1"`
	TopK            float32 `mapstructure:"top_k"             validate:"gte=0"`

	// RequestsPerMinute caps calls to the external model. Zero or
	// negative means unlimited.
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// CacheConfig tunes the generation result cache.
type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"gt=0"`
	MaxEntries int `mapstructure:"max_entries" validate:"gt=0"`
}
