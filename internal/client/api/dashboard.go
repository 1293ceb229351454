package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

// Dashboard reads the aggregate counters. It is not backed by a store.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.Do(ctx, http.MethodGet, "/dashboard", nil, &stats); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
