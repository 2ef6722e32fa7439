package service

import (
	"context"
	"fmt"

	"tableside/recommend-svc/internal/domain"
)

// WeatherSource supplies the current weather snapshot.
type WeatherSource interface {
	Current(ctx context.Context) domain.Weather
}

// MenuSource supplies the restaurant's current menu with availability.
type MenuSource interface {
	RestaurantMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type RecommenderInterface interface {
	Weather(ctx context.Context) domain.Weather
	Recommend(ctx context.Context, restaurantID int) ([]domain.RecommendationGroup, error)
}

type Recommender struct {
	weather WeatherSource
	menu    MenuSource
}

func NewRecommender(weather WeatherSource, menu MenuSource) *Recommender {
	return &Recommender{weather: weather, menu: menu}
}

func (r *Recommender) Weather(ctx context.Context) domain.Weather {
	return r.weather.Current(ctx)
}

// Recommend builds themed suggestion shelves for the restaurant. Given the
// same weather and menu the output is identical; only available items are
// ever suggested.
func (r *Recommender) Recommend(ctx context.Context, restaurantID int) ([]domain.RecommendationGroup, error) {
	items, err := r.menu.RestaurantMenu(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	var available []domain.MenuItem
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}

	weather := r.weather.Current(ctx)

	groups := []domain.RecommendationGroup{}
	if group, ok := weatherGroup(weather, available); ok {
		groups = append(groups, group)
	}
	if group, ok := popularGroup(available); ok {
		groups = append(groups, group)
	}
	return groups, nil
}

const groupLimit = 4

func weatherGroup(weather domain.Weather, items []domain.MenuItem) (domain.RecommendationGroup, bool) {
	var pick func(domain.MenuItem) bool
	var reason string

	switch weather.Condition {
	case domain.WeatherRainy:
		pick = func(item domain.MenuItem) bool {
			return item.IsSpicy || item.Category == "beverages"
		}
		reason = "Rainy outside? Something hot and spicy hits different"
	case domain.WeatherCold:
		pick = func(item domain.MenuItem) bool {
			return item.Category == "mains" || item.Category == "beverages"
		}
		reason = "Warm up with slow-cooked comfort food"
	case domain.WeatherHot:
		pick = func(item domain.MenuItem) bool {
			return item.Category == "beverages" || item.Category == "desserts"
		}
		reason = "Beat the heat with something cool and sweet"
	case domain.WeatherCloudy:
		pick = func(item domain.MenuItem) bool {
			return item.Category == "starters" || item.Category == "breads"
		}
		reason = "Grey skies call for something to share"
	default:
		pick = func(item domain.MenuItem) bool {
			return item.IsVeg && item.Category != "beverages"
		}
		reason = "A bright day for fresh favourites"
	}

	var picked []domain.MenuItem
	for _, item := range items {
		if pick(item) {
			picked = append(picked, item)
		}
		if len(picked) == groupLimit {
			break
		}
	}
	if len(picked) == 0 {
		return domain.RecommendationGroup{}, false
	}

	return domain.RecommendationGroup{
		Type:   "weather",
		Items:  picked,
		Reason: reason,
	}, true
}

func popularGroup(items []domain.MenuItem) (domain.RecommendationGroup, bool) {
	var picked []domain.MenuItem
	for _, item := range items {
		if item.IsPopular {
			picked = append(picked, item)
		}
		if len(picked) == groupLimit {
			break
		}
	}
	if len(picked) == 0 {
		return domain.RecommendationGroup{}, false
	}

	return domain.RecommendationGroup{
		Type:   "popular",
		Items:  picked,
		Reason: "Most loved by other guests",
	}, true
}

var _ RecommenderInterface = (*Recommender)(nil)
