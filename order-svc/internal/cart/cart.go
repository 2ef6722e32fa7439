// Package cart holds the pure cart transition functions. They compute the
// next cart value from the current one and never touch storage; the order
// system container owns commit and persistence.
package cart

import (
	"errors"
	"fmt"

	"tableside/order-svc/internal/domain"
)

var ErrItemUnavailable = errors.New("item is currently unavailable")

// Add returns the cart with one more unit of the given menu item. The line
// price is the discounted price at the moment of addition. Adding an item
// that already has a line increments that line in place; new items append
// at the end. Unavailable items are rejected and the cart is returned
// unchanged.
func Add(c domain.Cart, item domain.MenuItem, availability domain.AvailabilityMap) (domain.Cart, error) {
	if !availability.Lookup(item.ID).Available {
		return c, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
	}

	for i, line := range c {
		if line.ID == item.ID {
			next := clone(c)
			next[i].Quantity++
			return next, nil
		}
	}

	next := clone(c)
	next = append(next, domain.CartItem{
		ID:        item.ID,
		Name:      item.Name,
		NameLocal: item.NameLocal,
		Price:     availability.DiscountedPrice(item),
		Quantity:  1,
		ImageURL:  item.ImageURL,
	})
	return next, nil
}

// Decrement removes one unit of the item, deleting the line when the last
// unit goes. Unknown ids are a no-op.
func Decrement(c domain.Cart, itemID string) domain.Cart {
	for i, line := range c {
		if line.ID != itemID {
			continue
		}
		if line.Quantity > 1 {
			next := clone(c)
			next[i].Quantity--
			return next
		}
		return Remove(c, itemID)
	}
	return c
}

// Remove deletes the line regardless of quantity.
func Remove(c domain.Cart, itemID string) domain.Cart {
	next := make(domain.Cart, 0, len(c))
	for _, line := range c {
		if line.ID != itemID {
			next = append(next, line)
		}
	}
	return next
}

// SetQuantity sets a line's quantity outright. Quantities at or below zero
// remove the line entirely.
func SetQuantity(c domain.Cart, itemID string, quantity int) domain.Cart {
	if quantity <= 0 {
		return Remove(c, itemID)
	}
	next := clone(c)
	for i, line := range next {
		if line.ID == itemID {
			next[i].Quantity = quantity
			break
		}
	}
	return next
}

// Total is the sum of price times quantity over the cart.
func Total(c domain.Cart) float64 {
	var total float64
	for _, line := range c {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count is the total number of units in the cart.
func Count(c domain.Cart) int {
	var count int
	for _, line := range c {
		count += line.Quantity
	}
	return count
}

func clone(c domain.Cart) domain.Cart {
	next := make(domain.Cart, len(c))
	copy(next, c)
	return next
}
