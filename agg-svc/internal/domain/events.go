package domain

import "time"

// OrderEvent mirrors the payload the order service writes to the orders
// topic.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	CustomerID   string      `json:"customer_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       string      `json:"status"`
	Total        float64     `json:"total"`
	Method       string      `json:"method,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ReviewEvent mirrors the payload the review service writes to the
// reviews topic.
type ReviewEvent struct {
	Type         string    `json:"type"`
	ItemID       string    `json:"item_id"`
	OrderID      string    `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced      = "order_placed"
	EventPaymentCompleted = "payment_completed"
	EventNewReview        = "new_review"
)
