package authsession

import "log/slog"

// Option configures client construction.
type Option func(*Client)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.config = cfg
	}
}

// WithLogger sets the logger used for best-effort failure reporting. Nil
// loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMarkersReadable toggles the local-inference capability without
// replacing the whole config.
func WithMarkersReadable(readable bool) Option {
	return func(c *Client) {
		c.config.MarkersReadable = readable
	}
}
