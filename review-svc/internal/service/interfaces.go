package service

import (
	"context"

	"tableside/review-svc/internal/domain"
)

type ReviewServiceInterface interface {
	CreateOrUpdate(ctx context.Context, review *domain.Review) error
	ListItemReviews(itemID string, restaurantID int) ([]domain.Review, error)
	CreateRestaurantReview(ctx context.Context, review *domain.RestaurantReview) error
	ListRestaurantReviews(restaurantID int) ([]domain.RestaurantReview, error)
	RestaurantSummary(restaurantID int) (domain.RestaurantSummary, error)
}

type ReviewRepository interface {
	GetExistingReviewID(itemID, orderID string, restaurantID int) (int, error)
	InsertReview(review *domain.Review) error
	UpdateReview(id int, review *domain.Review) error
	ListItemReviews(itemID string, restaurantID int) ([]domain.Review, error)
	InsertRestaurantReview(review *domain.RestaurantReview) error
	ListRestaurantReviews(restaurantID int) ([]domain.RestaurantReview, error)
	RatingDistribution(restaurantID int) (map[string]int, error)
}

type ReviewCache interface {
	ReviewMarkerKey(itemID, orderID string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

// OrderLookup verifies the review target against the order service: the
// order must exist, belong to the reviewing customer and contain the item.
type OrderLookup interface {
	ItemInOrder(ctx context.Context, orderID, customerID, itemID string, restaurantID int) (bool, error)
	OrderForCustomer(ctx context.Context, orderID, customerID string, restaurantID int) (bool, error)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
