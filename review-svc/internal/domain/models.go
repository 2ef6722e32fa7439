package domain

import "time"

// Review is one customer's rating of a menu item they ordered. A customer
// may revise their review; revisions overwrite the original row.
type Review struct {
	ID           int       `json:"id"`
	ItemID       string    `json:"item_id"`
	OrderID      string    `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	CustomerID   string    `json:"customer_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// RestaurantReview rates the visit as a whole rather than a single item.
type RestaurantReview struct {
	ID           int       `json:"id"`
	OrderID      string    `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	CustomerID   string    `json:"customer_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// RestaurantSummary aggregates every review for a restaurant.
type RestaurantSummary struct {
	RestaurantID  int            `json:"restaurant_id"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int            `json:"review_count"`
	Distribution  map[string]int `json:"distribution"`
}

// ReviewEvent is published to the reviews topic for downstream aggregation.
type ReviewEvent struct {
	Type         string    `json:"type"`
	ItemID       string    `json:"item_id"`
	OrderID      string    `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}

const EventNewReview = "new_review"
