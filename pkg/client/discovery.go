package client

import "context"

// Discovery retrieves the discovery dashboard
func (c *Client) Discovery(ctx context.Context) (*DiscoveryOverview, error) {
	var overview DiscoveryOverview
	if err := c.doRequest(ctx, "GET", "/api/v1/discovery", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
