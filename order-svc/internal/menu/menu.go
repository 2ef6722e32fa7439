package menu

import "tableside/order-svc/internal/domain"

// Catalog is the static menu served to customers. Fixture data: the order
// system reads it but never mutates it. Runtime availability and discounts
// live in the persisted availability map instead.
type Catalog struct {
	items []domain.MenuItem
	byID  map[string]domain.MenuItem
}

func NewCatalog(items []domain.MenuItem) *Catalog {
	byID := make(map[string]domain.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}
}

// Default returns the built-in menu.
func Default() *Catalog {
	return NewCatalog(defaultItems)
}

func (c *Catalog) Item(id string) (domain.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) RestaurantItems(restaurantID int) []domain.MenuItem {
	var out []domain.MenuItem
	for _, it := range c.items {
		if it.RestaurantID == restaurantID {
			out = append(out, it)
		}
	}
	return out
}

var defaultItems = []domain.MenuItem{
	{ID: "butter-chicken", Name: "Butter Chicken", NameLocal: "मक्खन चिकन", Description: "Tandoori chicken simmered in a tomato butter gravy", Price: 320, Category: "mains", RestaurantID: 1, IsSpicy: true, IsPopular: true},
	{ID: "paneer-tikka", Name: "Paneer Tikka", NameLocal: "पनीर टिक्का", Description: "Char-grilled cottage cheese with mint chutney", Price: 260, Category: "starters", RestaurantID: 1, IsVeg: true, IsPopular: true},
	{ID: "dal-makhani", Name: "Dal Makhani", NameLocal: "दाल मखनी", Description: "Black lentils slow-cooked overnight", Price: 220, Category: "mains", RestaurantID: 1, IsVeg: true},
	{ID: "garlic-naan", Name: "Garlic Naan", Description: "Leavened flatbread with roasted garlic", Price: 60, Category: "breads", RestaurantID: 1, IsVeg: true},
	{ID: "masala-dosa", Name: "Masala Dosa", NameLocal: "मसाला डोसा", Description: "Crisp rice crepe with spiced potato filling", Price: 140, Category: "mains", RestaurantID: 2, IsVeg: true, IsPopular: true},
	{ID: "filter-coffee", Name: "Filter Coffee", Description: "South Indian filter coffee, served hot", Price: 80, Category: "beverages", RestaurantID: 2, IsVeg: true},
	{ID: "chilli-chicken", Name: "Chilli Chicken", Description: "Indo-Chinese fried chicken tossed in chilli sauce", Price: 280, Category: "starters", RestaurantID: 2, IsSpicy: true},
	{ID: "veg-biryani", Name: "Veg Biryani", NameLocal: "वेज बिरयानी", Description: "Layered basmati rice with seasonal vegetables", Price: 240, Category: "mains", RestaurantID: 0, IsVeg: true},
	{ID: "gulab-jamun", Name: "Gulab Jamun", NameLocal: "गुलाब जामुन", Description: "Milk dumplings in saffron syrup", Price: 120, Category: "desserts", RestaurantID: 0, IsVeg: true},
	{ID: "mango-lassi", Name: "Mango Lassi", Description: "Yogurt smoothie with alphonso mango", Price: 110, Category: "beverages", RestaurantID: 0, IsVeg: true, IsPopular: true},
}
