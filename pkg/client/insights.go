package client

import "context"

// Insights computes and retrieves the subscription insights report
func (c *Client) Insights(ctx context.Context) (*InsightsReport, error) {
	var report InsightsReport
	if err := c.doRequest(ctx, "GET", "/api/v1/insights", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
