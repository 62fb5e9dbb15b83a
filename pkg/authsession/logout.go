package authsession

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wemolhq/wemolkit/pkg/apiclient"
)

// Logout ends the session. Local markers are always cleared first; that is
// the only step fully under the client's control, and logout is defined as
// "no longer presenting valid local credentials", not "server acknowledged
// revocation". Server-side invalidation is then attempted best-effort: both
// role endpoints concurrently when allSessions is set, otherwise the single
// endpoint matching the last known role. The calls are waited for, but their
// failures are logged rather than surfaced and one call's failure never
// cancels the other. Returns true once local clearing has completed.
func (c *Client) Logout(ctx context.Context, allSessions bool) bool {
	role := c.markerRole()
	if last := c.getLastRole(); last != "" {
		role = last
	}

	c.cookies.Clear(c.config.PrimaryMarker)
	c.cookies.Clear(c.config.SecondaryMarker)
	c.setLastRole("")

	paths := []string{logoutPathUser, logoutPathSys}
	if !allSessions {
		if role == RoleSys {
			paths = []string{logoutPathSys}
		} else {
			paths = []string{logoutPathUser}
		}
	}

	var g errgroup.Group
	for _, path := range paths {
		g.Go(func() error {
			resp, err := c.api.Post(ctx, path, nil, apiclient.WithCallTimeout(c.config.LogoutTimeout))
			if err != nil {
				c.log.WarnContext(ctx, "server-side logout failed", "path", path, "error", err)
				return nil
			}
			if !resp.OK() {
				c.log.WarnContext(ctx, "server-side logout rejected", "path", path, "status", resp.Status)
			}
			return nil
		})
	}
	_ = g.Wait()

	return true
}
