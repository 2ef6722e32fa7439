package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableside/review-svc/internal/domain"
	"tableside/review-svc/internal/mocks"
	"tableside/review-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_CreateOrUpdate(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	publisher := mocks.NewReviewPublisher(t)
	orders := mocks.NewOrderLookup(t)

	svc := service.NewReviewService(repository, cache, publisher, orders)

	ctx := context.Background()

	tests := []struct {
		name          string
		review        *domain.Review
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success_create_new_review",
			review: &domain.Review{
				ItemID: "butter-chicken", OrderID: "ORD-1", RestaurantID: 1, CustomerID: "dev-1", Rating: 5, Comment: "Great!",
			},
			prepareMocks: func() {
				orders.On("ItemInOrder", ctx, "ORD-1", "dev-1", "butter-chicken", 1).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", "butter-chicken", "ORD-1").Return("review:butter-chicken:ORD-1").Once()
				cache.On("Exists", ctx, "review:butter-chicken:ORD-1").Return(false, nil).Once()
				repository.On("GetExistingReviewID", "butter-chicken", "ORD-1", 1).Return(0, errors.New("not found")).Once()
				repository.On("InsertReview", mock.Anything).Return(nil).Once()
				cache.On("SetMarker", ctx, "review:butter-chicken:ORD-1").Return(nil).Once()
				publisher.On("PublishReview", ctx, mock.Anything).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "error_item_not_in_order",
			review: &domain.Review{
				ItemID: "garlic-naan", OrderID: "ORD-1", RestaurantID: 1, CustomerID: "dev-1", Rating: 3,
			},
			prepareMocks: func() {
				orders.On("ItemInOrder", ctx, "ORD-1", "dev-1", "garlic-naan", 1).Return(false, nil).Once()
			},
			expectedError: service.ErrItemNotInOrder,
		},
		{
			name: "error_duplicate_review",
			review: &domain.Review{
				ItemID: "dal-makhani", OrderID: "ORD-1", RestaurantID: 1, CustomerID: "dev-1", Rating: 4,
			},
			prepareMocks: func() {
				orders.On("ItemInOrder", ctx, "ORD-1", "dev-1", "dal-makhani", 1).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", "dal-makhani", "ORD-1").Return("review:dal-makhani:ORD-1").Once()
				cache.On("Exists", ctx, "review:dal-makhani:ORD-1").Return(true, nil).Once()
			},
			expectedError: service.ErrDuplicateReview,
		},
		{
			name: "error_rating_out_of_range",
			review: &domain.Review{
				ItemID: "butter-chicken", OrderID: "ORD-1", RestaurantID: 1, CustomerID: "dev-1", Rating: 6,
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidRating,
		},
		{
			name: "success_update_existing_review",
			review: &domain.Review{
				ItemID: "paneer-tikka", OrderID: "ORD-2", RestaurantID: 1, CustomerID: "dev-1", Rating: 5, Comment: "Updated",
			},
			prepareMocks: func() {
				orders.On("ItemInOrder", ctx, "ORD-2", "dev-1", "paneer-tikka", 1).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", "paneer-tikka", "ORD-2").Return("review:paneer-tikka:ORD-2").Once()
				cache.On("Exists", ctx, "review:paneer-tikka:ORD-2").Return(false, nil).Once()
				repository.On("GetExistingReviewID", "paneer-tikka", "ORD-2", 1).Return(42, nil).Once()
				repository.On("UpdateReview", 42, mock.Anything).Return(nil).Once()
				cache.On("SetMarker", ctx, "review:paneer-tikka:ORD-2").Return(nil).Once()
				publisher.On("PublishReview", ctx, mock.Anything).Return(nil).Once()
			},
			expectedError: nil,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.CreateOrUpdate(ctx, testCase.review)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestReviewService_ListItemReviews(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	publisher := mocks.NewReviewPublisher(t)
	orders := mocks.NewOrderLookup(t)

	svc := service.NewReviewService(repository, cache, publisher, orders)

	expectedReviews := []domain.Review{
		{ID: 1, ItemID: "butter-chicken", OrderID: "ORD-1", RestaurantID: 1, Rating: 5, CreatedAt: time.Now()},
		{ID: 2, ItemID: "butter-chicken", OrderID: "ORD-2", RestaurantID: 1, Rating: 4, CreatedAt: time.Now()},
	}

	repository.On("ListItemReviews", "butter-chicken", 1).Return(expectedReviews, nil).Once()

	reviews, err := svc.ListItemReviews("butter-chicken", 1)
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, expectedReviews, reviews)
}

func TestReviewService_CreateRestaurantReview(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		review        *domain.RestaurantReview
		prepareMocks  func(orders *mocks.OrderLookup, cache *mocks.ReviewCache, repository *mocks.ReviewRepository)
		expectedError error
	}{
		{
			name: "success",
			review: &domain.RestaurantReview{
				OrderID: "ORD-1", RestaurantID: 1, CustomerID: "dev-1", Rating: 5, Comment: "Lovely evening",
			},
			prepareMocks: func(orders *mocks.OrderLookup, cache *mocks.ReviewCache, repository *mocks.ReviewRepository) {
				orders.On("OrderForCustomer", ctx, "ORD-1", "dev-1", 1).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", "restaurant", "ORD-1").Return("review:restaurant:ORD-1").Once()
				cache.On("Exists", ctx, "review:restaurant:ORD-1").Return(false, nil).Once()
				repository.On("InsertRestaurantReview", mock.Anything).Return(nil).Once()
				cache.On("SetMarker", ctx, "review:restaurant:ORD-1").Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "error_order_mismatch",
			review: &domain.RestaurantReview{
				OrderID: "ORD-2", RestaurantID: 1, CustomerID: "dev-2", Rating: 4,
			},
			prepareMocks: func(orders *mocks.OrderLookup, cache *mocks.ReviewCache, repository *mocks.ReviewRepository) {
				orders.On("OrderForCustomer", ctx, "ORD-2", "dev-2", 1).Return(false, nil).Once()
			},
			expectedError: service.ErrOrderMismatch,
		},
		{
			name: "error_rating_out_of_range",
			review: &domain.RestaurantReview{
				OrderID: "ORD-1", RestaurantID: 1, CustomerID: "dev-1", Rating: 0,
			},
			prepareMocks:  func(orders *mocks.OrderLookup, cache *mocks.ReviewCache, repository *mocks.ReviewRepository) {},
			expectedError: service.ErrInvalidRating,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewReviewRepository(t)
			cache := mocks.NewReviewCache(t)
			publisher := mocks.NewReviewPublisher(t)
			orders := mocks.NewOrderLookup(t)

			svc := service.NewReviewService(repository, cache, publisher, orders)

			testCase.prepareMocks(orders, cache, repository)
			err := svc.CreateRestaurantReview(ctx, testCase.review)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestReviewService_RestaurantSummary(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	publisher := mocks.NewReviewPublisher(t)
	orders := mocks.NewOrderLookup(t)

	svc := service.NewReviewService(repository, cache, publisher, orders)

	repository.On("RatingDistribution", 1).Return(map[string]int{
		"1": 0, "2": 0, "3": 1, "4": 2, "5": 3,
	}, nil).Once()

	summary, err := svc.RestaurantSummary(1)
	assert.NoError(t, err)
	assert.Equal(t, 6, summary.ReviewCount)
	assert.InDelta(t, 4.33, summary.AverageRating, 0.01)

	// No reviews means a zero average rather than a divide-by-zero.
	repository.On("RatingDistribution", 2).Return(map[string]int{
		"1": 0, "2": 0, "3": 0, "4": 0, "5": 0,
	}, nil).Once()

	summary, err = svc.RestaurantSummary(2)
	assert.NoError(t, err)
	assert.Zero(t, summary.ReviewCount)
	assert.Zero(t, summary.AverageRating)
}
