package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableside/review-svc/internal/domain"
)

var (
	ErrItemNotInOrder  = errors.New("item was not part of this order")
	ErrOrderMismatch   = errors.New("order does not belong to this customer and restaurant")
	ErrDuplicateReview = errors.New("review already exists for this item and order")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewCache
	publisher  ReviewPublisher
	orders     OrderLookup
}

func NewReviewService(repository ReviewRepository, cache ReviewCache, publisher ReviewPublisher, orders OrderLookup) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		orders:     orders,
	}
}

func (s *ReviewService) CreateOrUpdate(ctx context.Context, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	valid, err := s.orders.ItemInOrder(ctx, review.OrderID, review.CustomerID, review.ItemID, review.RestaurantID)
	if err != nil {
		return fmt.Errorf("failed to validate order: %w", err)
	}
	if !valid {
		return ErrItemNotInOrder
	}

	// The marker blocks rapid duplicate submissions; the database row is
	// the source of truth once the marker expires.
	cacheKey := s.cache.ReviewMarkerKey(review.ItemID, review.OrderID)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return ErrDuplicateReview
	}

	existingID, err := s.repository.GetExistingReviewID(review.ItemID, review.OrderID, review.RestaurantID)
	isUpdate := err == nil && existingID > 0
	if isUpdate {
		if err := s.repository.UpdateReview(existingID, review); err != nil {
			return err
		}
		review.ID = existingID
	} else if err := s.repository.InsertReview(review); err != nil {
		return err
	}

	_ = s.cache.SetMarker(ctx, cacheKey)

	if s.publisher != nil {
		_ = s.publisher.PublishReview(ctx, domain.ReviewEvent{
			Type:         domain.EventNewReview,
			ItemID:       review.ItemID,
			OrderID:      review.OrderID,
			RestaurantID: review.RestaurantID,
			Rating:       review.Rating,
			Timestamp:    time.Now(),
		})
	}

	return nil
}

func (s *ReviewService) ListItemReviews(itemID string, restaurantID int) ([]domain.Review, error) {
	return s.repository.ListItemReviews(itemID, restaurantID)
}

func (s *ReviewService) CreateRestaurantReview(ctx context.Context, review *domain.RestaurantReview) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	valid, err := s.orders.OrderForCustomer(ctx, review.OrderID, review.CustomerID, review.RestaurantID)
	if err != nil {
		return fmt.Errorf("failed to validate order: %w", err)
	}
	if !valid {
		return ErrOrderMismatch
	}

	cacheKey := s.cache.ReviewMarkerKey("restaurant", review.OrderID)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return ErrDuplicateReview
	}

	if err := s.repository.InsertRestaurantReview(review); err != nil {
		return err
	}

	_ = s.cache.SetMarker(ctx, cacheKey)
	return nil
}

func (s *ReviewService) ListRestaurantReviews(restaurantID int) ([]domain.RestaurantReview, error) {
	return s.repository.ListRestaurantReviews(restaurantID)
}

func (s *ReviewService) RestaurantSummary(restaurantID int) (domain.RestaurantSummary, error) {
	distribution, err := s.repository.RatingDistribution(restaurantID)
	if err != nil {
		return domain.RestaurantSummary{}, err
	}

	var count, sum int
	for rating := 1; rating <= 5; rating++ {
		n := distribution[fmt.Sprintf("%d", rating)]
		count += n
		sum += rating * n
	}

	summary := domain.RestaurantSummary{
		RestaurantID: restaurantID,
		ReviewCount:  count,
		Distribution: distribution,
	}
	if count > 0 {
		summary.AverageRating = float64(sum) / float64(count)
	}
	return summary, nil
}
