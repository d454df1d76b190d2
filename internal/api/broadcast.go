package api

import "context"

// Broadcast sends an admin notification to every active brand. One POST,
// one outcome: the caller shows success or the error and moves on.
func (c *Client) Broadcast(ctx context.Context, message string) error {
	body := struct {
		Message string `json:"message"`
	}{Message: message}
	return c.post(ctx, apiPrefix+"/admin/notifications/broadcast", body, nil)
}
