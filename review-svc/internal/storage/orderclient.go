package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OrderClient checks review targets against the order service.
type OrderClient struct {
	BaseURL string
	Client  HTTPClient
}

func NewOrderClient(baseURL string, client HTTPClient) *OrderClient {
	return &OrderClient{BaseURL: baseURL, Client: client}
}

type orderView struct {
	CustomerID   string `json:"customer_id"`
	RestaurantID int    `json:"restaurant_id"`
	Items        []struct {
		ID string `json:"id"`
	} `json:"items"`
}

func (c *OrderClient) fetchOrder(ctx context.Context, orderID string) (orderView, bool, error) {
	var order orderView

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/api/orders/"+orderID, nil)
	if err != nil {
		return order, false, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return order, false, fmt.Errorf("order lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return order, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return order, false, fmt.Errorf("order lookup returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return order, false, fmt.Errorf("order lookup returned bad payload: %w", err)
	}
	return order, true, nil
}

func (c *OrderClient) ItemInOrder(ctx context.Context, orderID, customerID, itemID string, restaurantID int) (bool, error) {
	order, found, err := c.fetchOrder(ctx, orderID)
	if err != nil || !found {
		return false, err
	}

	if order.CustomerID != customerID || order.RestaurantID != restaurantID {
		return false, nil
	}
	for _, item := range order.Items {
		if item.ID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (c *OrderClient) OrderForCustomer(ctx context.Context, orderID, customerID string, restaurantID int) (bool, error) {
	order, found, err := c.fetchOrder(ctx, orderID)
	if err != nil || !found {
		return false, err
	}
	return order.CustomerID == customerID && order.RestaurantID == restaurantID, nil
}
