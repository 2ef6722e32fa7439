package storage

import (
	"context"
	"strconv"

	"tableside/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PopularityKey is the per-restaurant sorted set of units sold per item,
// maintained by the aggregation consumer.
func PopularityKey(restaurantID int) string {
	return "popular_items:" + strconv.Itoa(restaurantID)
}

// RevenueKey is the per-restaurant running paid revenue counter.
func RevenueKey(restaurantID int) string {
	return "revenue:" + strconv.Itoa(restaurantID)
}

// RedisPopularity reads the leaderboard written by agg-svc.
type RedisPopularity struct {
	Client *redis.Client
}

func NewRedisPopularity(client *redis.Client) *RedisPopularity {
	return &RedisPopularity{Client: client}
}

func (p *RedisPopularity) TopItems(ctx context.Context, restaurantID, limit int) ([]domain.ItemScore, error) {
	results, err := p.Client.ZRevRangeWithScores(ctx, PopularityKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.ItemScore, 0, len(results))
	for _, member := range results {
		id, _ := member.Member.(string)
		top = append(top, domain.ItemScore{ItemID: id, Score: member.Score})
	}
	return top, nil
}
