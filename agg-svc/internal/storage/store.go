package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tableside/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Store maintains the redis aggregates the order service reads back:
// per-restaurant popularity leaderboards, running paid revenue and item
// rating snapshots.
type Store struct {
	rdb *redis.Client
	ctx context.Context
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ctx: context.Background(),
	}
}

func popularityKey(restaurantID int) string {
	return "popular_items:" + strconv.Itoa(restaurantID)
}

func revenueKey(restaurantID int) string {
	return "revenue:" + strconv.Itoa(restaurantID)
}

// RecordOrderPlaced bumps the popularity score of every ordered item by
// the units ordered, on both the all-time and today's leaderboard.
func (s *Store) RecordOrderPlaced(event domain.OrderEvent) error {
	allTimeKey := popularityKey(event.RestaurantID)

	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("popular_items:daily:%s:%d", today, event.RestaurantID)

	for _, item := range event.Items {
		if err := s.rdb.ZIncrBy(s.ctx, allTimeKey, float64(item.Quantity), item.ID).Err(); err != nil {
			return err
		}
		s.rdb.ZIncrBy(s.ctx, dailyKey, float64(item.Quantity), item.ID)
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)
	return nil
}

// RecordPayment adds the paid total to the restaurant's revenue counter.
func (s *Store) RecordPayment(event domain.OrderEvent) error {
	return s.rdb.IncrByFloat(s.ctx, revenueKey(event.RestaurantID), event.Total).Err()
}

// RecordReview refreshes the item's rating snapshot: a hash with the
// running sum and count, plus a by-rating leaderboard.
func (s *Store) RecordReview(event domain.ReviewEvent) error {
	key := fmt.Sprintf("item_rating:%d:%s", event.RestaurantID, event.ItemID)

	if err := s.rdb.HIncrBy(s.ctx, key, "rating_sum", int64(event.Rating)).Err(); err != nil {
		return err
	}
	if err := s.rdb.HIncrBy(s.ctx, key, "review_count", 1).Err(); err != nil {
		return err
	}
	s.rdb.HSet(s.ctx, key, "last_updated", time.Now().Unix())

	sum, _ := s.rdb.HGet(s.ctx, key, "rating_sum").Int64()
	count, _ := s.rdb.HGet(s.ctx, key, "review_count").Int64()
	if count == 0 {
		return nil
	}

	return s.rdb.ZAdd(s.ctx, fmt.Sprintf("top_rated:%d", event.RestaurantID), redis.Z{
		Score:  float64(sum) / float64(count),
		Member: event.ItemID,
	}).Err()
}
