package service

import (
	"context"

	"tableside/order-svc/internal/domain"
)

// OrderSystemInterface is the capability surface every consumer (HTTP
// handlers, dashboards) goes through. The container is the sole mutation
// point for carts, the order ledger and panel flags.
type OrderSystemInterface interface {
	Cart(ctx context.Context, deviceID string, restaurantID int) domain.Cart
	AddToCart(ctx context.Context, deviceID string, restaurantID int, itemID string) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, deviceID string, restaurantID int, itemID string) domain.Cart
	DeleteFromCart(ctx context.Context, deviceID string, restaurantID int, itemID string) domain.Cart
	SetQuantity(ctx context.Context, deviceID string, restaurantID int, itemID string, quantity int) domain.Cart
	ClearCart(ctx context.Context, deviceID string, restaurantID int)

	PlaceOrder(ctx context.Context, deviceID string, restaurantID int) (domain.Order, error)
	ConfirmOrder(ctx context.Context, orderID string) bool
	StartPreparing(ctx context.Context, orderID string) bool
	MarkReady(ctx context.Context, orderID string) bool
	CompleteOrder(ctx context.Context, orderID string) bool
	CancelOrder(ctx context.Context, orderID string) bool
	CompletePayment(ctx context.Context, orderID string, method domain.PaymentMethod) (domain.Order, error)
	SetChefNote(ctx context.Context, orderID, note string) bool

	Orders() []domain.Order
	OrderByID(orderID string) (domain.Order, bool)
	LatestCompletedOrderID() string
	Analytics(ctx context.Context, restaurantID int) AnalyticsReport

	Availability() domain.AvailabilityMap
	SetAvailability(ctx context.Context, itemID string, av domain.Availability)

	Panels(ctx context.Context, deviceID string) domain.PanelState
	SetPanel(ctx context.Context, deviceID string, restaurantID int, panel string, open bool) (domain.PanelState, error)

	ClearHistory(ctx context.Context)
	Close()
}

// EventPublisher forwards order lifecycle events to the broker.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// Notifier surfaces transient user-facing notices describing the outcome
// of each mutation.
type Notifier interface {
	Notify(deviceID, level, message string)
}

// PopularityReader serves the item popularity leaderboard maintained by
// the aggregation consumer.
type PopularityReader interface {
	TopItems(ctx context.Context, restaurantID, limit int) ([]domain.ItemScore, error)
}

// AnalyticsReport is the manager dashboard aggregate view.
type AnalyticsReport struct {
	TotalSales        float64            `json:"total_sales"`
	OrderCount        int                `json:"order_count"`
	AverageOrderValue float64            `json:"average_order_value"`
	RestaurantSales   map[int]float64    `json:"restaurant_sales"`
	TopItems          []domain.ItemScore `json:"top_items"`
}

var _ OrderSystemInterface = (*OrderSystem)(nil)
