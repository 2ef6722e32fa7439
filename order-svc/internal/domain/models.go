package domain

import "time"

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is recorded for receipts only; it is never charged here.
type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayCard   PaymentMethod = "card"
	PayUPI    PaymentMethod = "upi"
	PayOnline PaymentMethod = "online"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PayCash:   true,
	PayCard:   true,
	PayUPI:    true,
	PayOnline: true,
}

func ValidPaymentMethod(m PaymentMethod) bool {
	return validPaymentMethods[m]
}

// MenuItem is fixture data, read-only to the order system.
type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	NameLocal    string  `json:"name_local,omitempty"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	RestaurantID int     `json:"restaurant_id"`
	ImageURL     string  `json:"image_url,omitempty"`
	IsVeg        bool    `json:"is_veg"`
	IsSpicy      bool    `json:"is_spicy"`
	IsPopular    bool    `json:"is_popular"`
}

// Availability overrides a menu item's orderability and price. Items with
// no record are available at full price.
type Availability struct {
	Available bool    `json:"available"`
	Discount  float64 `json:"discount"` // percent, 0-100
}

// AvailabilityMap is keyed by menu item id.
type AvailabilityMap map[string]Availability

// Lookup returns the record for an item, defaulting to available with no
// discount when absent.
func (m AvailabilityMap) Lookup(itemID string) Availability {
	if m == nil {
		return Availability{Available: true}
	}
	if av, ok := m[itemID]; ok {
		return av
	}
	return Availability{Available: true}
}

// DiscountedPrice applies the item's current discount to its base price.
func (m AvailabilityMap) DiscountedPrice(item MenuItem) float64 {
	av := m.Lookup(item.ID)
	if av.Discount <= 0 {
		return item.Price
	}
	return item.Price * (100 - av.Discount) / 100
}

// CartItem is one line of a pre-commit cart. Price is the discounted price
// snapshot taken when the line was added.
type CartItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	NameLocal string  `json:"name_local,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// Cart is an ordered list of lines; insertion order is display order.
type Cart []CartItem

// CartState maps restaurant id to that restaurant's cart for one device.
type CartState map[int]Cart

// Order is an immutable-after-creation commitment derived from a cart.
// Only Status, IsPaid, PaymentMethod, ChefNote and IsPrepared may change
// after creation.
type Order struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	RestaurantID  int           `json:"restaurant_id"`
	Date          time.Time     `json:"date"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	IsPaid        bool          `json:"is_paid"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Status        OrderStatus   `json:"status"`
	ChefNote      string        `json:"chef_note,omitempty"`
	IsPrepared    bool          `json:"is_prepared"`
}

// Normalize coerces an order decoded from storage into a valid shape.
// Legacy records may lack a status.
func (o *Order) Normalize() {
	if o.Status == "" {
		o.Status = StatusPending
	}
}

// PanelFlags are per-restaurant UI visibility toggles. Convenience state,
// not authoritative domain data.
type PanelFlags struct {
	CartOpen    bool `json:"cart_open"`
	ConfirmOpen bool `json:"confirm_open"`
	SuccessOpen bool `json:"success_open"`
	PaymentOpen bool `json:"payment_open"`
}

// PanelState maps restaurant id to panel flags for one device.
type PanelState map[int]PanelFlags

// OrderEvent is the kafka payload emitted on order lifecycle changes.
type OrderEvent struct {
	Type         string        `json:"type"`
	OrderID      string        `json:"order_id"`
	CustomerID   string        `json:"customer_id"`
	RestaurantID int           `json:"restaurant_id"`
	Status       OrderStatus   `json:"status"`
	Total        float64       `json:"total"`
	Method       PaymentMethod `json:"method,omitempty"`
	Items        []CartItem    `json:"items,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

const (
	EventOrderPlaced      = "order_placed"
	EventStatusChanged    = "status_changed"
	EventPaymentCompleted = "payment_completed"
)

// ItemScore is one row of the item popularity leaderboard.
type ItemScore struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name,omitempty"`
	Score  float64 `json:"score"`
}
