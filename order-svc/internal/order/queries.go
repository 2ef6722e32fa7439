package order

import (
	"sort"

	"tableside/order-svc/internal/domain"
)

// ByID looks up a single order.
func ByID(ledger []domain.Order, orderID string) (domain.Order, bool) {
	for _, o := range ledger {
		if o.ID == orderID {
			return o, true
		}
	}
	return domain.Order{}, false
}

func ByRestaurant(ledger []domain.Order, restaurantID int) []domain.Order {
	var out []domain.Order
	for _, o := range ledger {
		if o.RestaurantID == restaurantID {
			out = append(out, o)
		}
	}
	return out
}

func ByCustomer(ledger []domain.Order, customerID string) []domain.Order {
	var out []domain.Order
	for _, o := range ledger {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func ByStatus(ledger []domain.Order, status domain.OrderStatus) []domain.Order {
	var out []domain.Order
	for _, o := range ledger {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Unpaid returns the subset mirrored to the expiring side channel.
func Unpaid(ledger []domain.Order) []domain.Order {
	var out []domain.Order
	for _, o := range ledger {
		if !o.IsPaid {
			out = append(out, o)
		}
	}
	return out
}

// LatestCompletedID returns the most recently created paid order's id, or
// the empty string when no paid orders exist.
func LatestCompletedID(ledger []domain.Order) string {
	sorted := cloneLedger(ledger)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	for _, o := range sorted {
		if o.IsPaid {
			return o.ID
		}
	}
	return ""
}

// TotalSales sums order totals over paid orders only.
func TotalSales(ledger []domain.Order) float64 {
	var sales float64
	for _, o := range ledger {
		if o.IsPaid {
			sales += o.Total
		}
	}
	return sales
}

func RestaurantSales(ledger []domain.Order, restaurantID int) float64 {
	return TotalSales(ByRestaurant(ledger, restaurantID))
}

// Count returns the number of orders, optionally scoped to one restaurant
// by passing a non-negative id.
func Count(ledger []domain.Order, restaurantID int) int {
	if restaurantID < 0 {
		return len(ledger)
	}
	return len(ByRestaurant(ledger, restaurantID))
}

// AverageOrderValue is paid sales divided by paid order count, 0 when no
// orders are paid.
func AverageOrderValue(ledger []domain.Order) float64 {
	var paid int
	for _, o := range ledger {
		if o.IsPaid {
			paid++
		}
	}
	if paid == 0 {
		return 0
	}
	return TotalSales(ledger) / float64(paid)
}

// ItemCounts aggregates units sold per menu item over paid orders. Fallback
// for the redis popularity leaderboard.
func ItemCounts(ledger []domain.Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range ledger {
		if !o.IsPaid {
			continue
		}
		for _, line := range o.Items {
			counts[line.ID] += line.Quantity
		}
	}
	return counts
}
