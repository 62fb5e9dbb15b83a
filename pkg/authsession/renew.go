package authsession

import (
	"context"
	"net/url"
	"strconv"

	"github.com/wemolhq/wemolkit/pkg/apiclient"
)

// Renew extends the server-side session lifetime, optionally asking the
// server to refresh cached profile data. It never returns an error: the
// payload comes back on 2xx, nil on any failure. When markers are readable
// and absent there is no session to extend and no network call is made; when
// they are not readable the server alone decides.
func (c *Client) Renew(ctx context.Context, updateData bool) Payload {
	if c.config.MarkersReadable && c.InferUser() == nil {
		return nil
	}

	resp, err := c.api.Post(ctx, sessionUpdatePath, nil,
		apiclient.WithQuery(url.Values{"data": {strconv.FormatBool(updateData)}}),
		apiclient.WithCallTimeout(c.config.VerifyTimeout))
	if err != nil {
		c.log.DebugContext(ctx, "session renewal failed", "error", err)
		return nil
	}
	if !resp.OK() {
		return nil
	}

	var body map[string]any
	if err := resp.DecodeJSON(&body); err != nil {
		return nil
	}

	if data, ok := body["Data"].(map[string]any); ok {
		return Payload(data)
	}
	return Payload(body)
}
