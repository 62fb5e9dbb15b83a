package authsession

import "time"

// Config holds session client configuration
type Config struct {
	// PrimaryMarker and SecondaryMarker are the cookie names whose presence
	// hints at a logged-in state. Their values are never trusted as
	// authoritative identity.
	PrimaryMarker   string `env:"WEMOL_PRIMARY_MARKER" envDefault:"ant_uid"`
	SecondaryMarker string `env:"WEMOL_SECONDARY_MARKER" envDefault:"ant_uid_sys"`

	// MarkersReadable reports whether marker cookies are visible to this
	// client. When the platform serves them HTTP-only, local inference has
	// nothing to read and every decision flows through remote verification.
	MarkersReadable bool `env:"WEMOL_MARKERS_READABLE" envDefault:"true"`

	// MarkerTTLDays is the lifetime of markers written after login.
	MarkerTTLDays int `env:"WEMOL_MARKER_TTL_DAYS" envDefault:"7"`

	// VerifyTimeout bounds session verification and renewal calls.
	VerifyTimeout time.Duration `env:"WEMOL_VERIFY_TIMEOUT" envDefault:"5s"`

	// LogoutTimeout bounds each best-effort server-side logout call.
	LogoutTimeout time.Duration `env:"WEMOL_LOGOUT_TIMEOUT" envDefault:"1s"`

	// DisplayNameCookies are tried in order when resolving a display name
	// during local inference.
	DisplayNameCookies []string `env:"WEMOL_DISPLAY_NAME_COOKIES" envDefault:"ant_name,ant_nickname,ant_login"`

	// DisplayNamePlaceholder is the fallback display name. Cookie values
	// that are just this word plus digits are treated as server-generated
	// filler and discarded.
	DisplayNamePlaceholder string `env:"WEMOL_DISPLAY_NAME_PLACEHOLDER" envDefault:"User"`
}

// DefaultConfig returns default session client configuration
func DefaultConfig() Config {
	return Config{
		PrimaryMarker:          "ant_uid",
		SecondaryMarker:        "ant_uid_sys",
		MarkersReadable:        true,
		MarkerTTLDays:          7,
		VerifyTimeout:          5 * time.Second,
		LogoutTimeout:          time.Second,
		DisplayNameCookies:     []string{"ant_name", "ant_nickname", "ant_login"},
		DisplayNamePlaceholder: "User",
	}
}
