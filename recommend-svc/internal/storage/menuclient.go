package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/recommend-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MenuClient reads the merged menu view from the order service.
type MenuClient struct {
	BaseURL string
	Client  HTTPClient
}

func NewMenuClient(baseURL string, client HTTPClient) *MenuClient {
	return &MenuClient{BaseURL: baseURL, Client: client}
}

func (c *MenuClient) RestaurantMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	url := fmt.Sprintf("%s/api/restaurants/%d/menu", c.BaseURL, restaurantID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("menu lookup returned status %d", resp.StatusCode)
	}

	var items []domain.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("menu lookup returned bad payload: %w", err)
	}
	return items, nil
}
