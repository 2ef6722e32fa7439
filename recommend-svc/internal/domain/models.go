package domain

// WeatherCondition is the closed set of conditions the recommendation
// rules understand. Provider codes are collapsed into these buckets.
type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherCold   WeatherCondition = "cold"
	WeatherHot    WeatherCondition = "hot"
)

// Weather is the snapshot recommendations are computed against.
type Weather struct {
	Condition   WeatherCondition `json:"condition"`
	Temperature float64          `json:"temperature"`
	Fallback    bool             `json:"fallback"`
}

// MenuItem is the slice of the order service's menu view the rules need.
type MenuItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"current_price"`
	IsVeg     bool    `json:"is_veg"`
	IsSpicy   bool    `json:"is_spicy"`
	IsPopular bool    `json:"is_popular"`
	Available bool    `json:"available"`
}

// RecommendationGroup is one themed shelf of suggestions.
type RecommendationGroup struct {
	Type   string     `json:"type"`
	Items  []MenuItem `json:"items"`
	Reason string     `json:"reason"`
}
