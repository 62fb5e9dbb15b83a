package apiclient

import "time"

// Config holds API client configuration
type Config struct {
	// BaseURL is the platform origin all request paths are resolved against
	BaseURL string `env:"WEMOL_API_BASE_URL,required"`

	// Timeout is the default per-request timeout (0 disables the bound)
	Timeout time.Duration `env:"WEMOL_API_TIMEOUT" envDefault:"5s"`

	UserAgent string `env:"WEMOL_API_USER_AGENT" envDefault:"wemolkit/1.0"`
}

// DefaultConfig returns default API client configuration
func DefaultConfig() Config {
	return Config{
		Timeout:   defaultTimeout,
		UserAgent: defaultUserAgent,
	}
}

// NewFromConfig creates a new Client from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := make([]Option, 0, 2)

	if cfg.Timeout != 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.UserAgent != "" {
		configOpts = append(configOpts, WithUserAgent(cfg.UserAgent))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, configOpts...)
}
