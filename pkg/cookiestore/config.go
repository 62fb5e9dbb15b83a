package cookiestore

// Config holds cookie store configuration
type Config struct {
	Path   string `env:"COOKIE_PATH" envDefault:"/"`
	Domain string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// DefaultConfig returns default cookie store configuration
func DefaultConfig() Config {
	return Config{
		Path: "/",
	}
}

// NewFromConfig creates a new Store from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(jar Jar, cfg Config, opts ...Option) (*Store, error) {
	configOpts := make([]Option, 0, 3)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(cfg.Secure))
	}

	configOpts = append(configOpts, opts...)

	return New(jar, configOpts...)
}
