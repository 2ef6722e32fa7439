// Package order holds the pure order lifecycle functions: turning a cart
// into an order, the status transition machine, and read-only queries over
// the ledger. Persistence and notification live in the service layer.
package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/menu"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrItemUnavailable = errors.New("item is no longer available")
	ErrUnknownItem     = errors.New("item is not on the menu")
)

// allowedTransitions is the authoritative state machine definition.
// Cancellation is permitted before preparation starts; once the kitchen is
// working the order runs to completion.
var allowedTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusConfirmed: {domain.StatusPreparing, domain.StatusCancelled},
	domain.StatusPreparing: {domain.StatusReady},
	domain.StatusReady:     {domain.StatusCompleted},
}

// CanTransition reports whether an order may move between two states.
func CanTransition(from, to domain.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NewID derives an order id from the creation time plus a random suffix.
func NewID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// CreateFromCart builds a pending order from a cart snapshot. Every line's
// availability is re-checked and its price recomputed with the current
// discount, so a price change between add-to-cart and checkout is honored.
// If any line has become unavailable the whole operation fails and the
// error names the offending item; no partial order is produced.
func CreateFromCart(c domain.Cart, customerID string, restaurantID int, catalog *menu.Catalog, availability domain.AvailabilityMap, now time.Time) (domain.Order, error) {
	if len(c) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]domain.CartItem, 0, len(c))
	var total float64
	for _, line := range c {
		item, ok := catalog.Item(line.ID)
		if !ok {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrUnknownItem, line.Name)
		}
		if !availability.Lookup(line.ID).Available {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
		}

		price := availability.DiscountedPrice(item)
		frozen := line
		frozen.Price = price
		items = append(items, frozen)
		total += price * float64(line.Quantity)
	}

	return domain.Order{
		ID:           NewID(now),
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Date:         now.UTC(),
		Items:        items,
		Total:        total,
		IsPaid:       false,
		Status:       domain.StatusPending,
	}, nil
}

// apply replaces the matching order's status, leaving every other order and
// field untouched. Unknown ids and disallowed transitions return the input
// ledger unchanged.
func apply(ledger []domain.Order, orderID string, to domain.OrderStatus) ([]domain.Order, bool) {
	for i, o := range ledger {
		if o.ID != orderID {
			continue
		}
		if !CanTransition(o.Status, to) {
			return ledger, false
		}
		next := cloneLedger(ledger)
		next[i].Status = to
		if to == domain.StatusReady {
			next[i].IsPrepared = true
		}
		return next, true
	}
	return ledger, false
}

func Confirm(ledger []domain.Order, orderID string) ([]domain.Order, bool) {
	return apply(ledger, orderID, domain.StatusConfirmed)
}

func StartPreparing(ledger []domain.Order, orderID string) ([]domain.Order, bool) {
	return apply(ledger, orderID, domain.StatusPreparing)
}

func MarkReady(ledger []domain.Order, orderID string) ([]domain.Order, bool) {
	return apply(ledger, orderID, domain.StatusReady)
}

func Complete(ledger []domain.Order, orderID string) ([]domain.Order, bool) {
	return apply(ledger, orderID, domain.StatusCompleted)
}

func Cancel(ledger []domain.Order, orderID string) ([]domain.Order, bool) {
	return apply(ledger, orderID, domain.StatusCancelled)
}

// CompletePayment marks the order paid and completed in one step; settling
// the bill also closes out delivery in this flow. Cancelled and already
// paid orders are left unchanged.
func CompletePayment(ledger []domain.Order, orderID string, method domain.PaymentMethod) ([]domain.Order, bool) {
	for i, o := range ledger {
		if o.ID != orderID {
			continue
		}
		if o.IsPaid || o.Status == domain.StatusCancelled {
			return ledger, false
		}
		next := cloneLedger(ledger)
		next[i].IsPaid = true
		next[i].Status = domain.StatusCompleted
		next[i].PaymentMethod = method
		return next, true
	}
	return ledger, false
}

// SetChefNote attaches a kitchen note to an order.
func SetChefNote(ledger []domain.Order, orderID, note string) ([]domain.Order, bool) {
	for i, o := range ledger {
		if o.ID != orderID {
			continue
		}
		next := cloneLedger(ledger)
		next[i].ChefNote = note
		return next, true
	}
	return ledger, false
}

func cloneLedger(ledger []domain.Order) []domain.Order {
	next := make([]domain.Order, len(ledger))
	copy(next, ledger)
	return next
}
