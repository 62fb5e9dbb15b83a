package authsession

import "strings"

// InferUser derives a tentative user record purely from marker presence. It
// returns nil when both markers are absent or when markers are not readable
// on this client. Marker values are hints that trigger remote verification,
// never authoritative identity.
func (c *Client) InferUser() *UserInfo {
	if !c.config.MarkersReadable {
		return nil
	}

	primary, perr := c.cookies.Get(c.config.PrimaryMarker)
	secondary, serr := c.cookies.Get(c.config.SecondaryMarker)
	hasPrimary := perr == nil
	hasSecondary := serr == nil

	if !hasPrimary && !hasSecondary {
		return nil
	}

	id := primary
	if !hasPrimary {
		id = secondary
	}

	return &UserInfo{
		ID:          id,
		DisplayName: c.displayName(),
		Primary:     hasPrimary,
	}
}

// IsLoggedIn reports the local-only, best-effort verdict. It exists to avoid
// an unnecessary remote call when cookies are absent and must never be the
// sole gate for privileged actions.
func (c *Client) IsLoggedIn() bool {
	return c.InferUser() != nil
}

func (c *Client) displayName() string {
	for _, name := range c.config.DisplayNameCookies {
		value, err := c.cookies.Get(name)
		if err != nil {
			continue
		}
		if degenerateName(value, c.config.DisplayNamePlaceholder) {
			continue
		}
		return value
	}
	return c.config.DisplayNamePlaceholder
}

// degenerateName reports whether value is empty or just the placeholder word
// with a numeric suffix ("User", "User12"), i.e. server-generated filler
// rather than a real display name.
func degenerateName(value, placeholder string) bool {
	if value == "" {
		return true
	}
	rest, ok := strings.CutPrefix(value, placeholder)
	if !ok {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
