package main

import (
	"context"

	"tableside/agg-svc/internal/service"
	"tableside/agg-svc/internal/storage"
	"tableside/config"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	orderReader := config.NewKafkaReader("orders", "agg-svc-consumer")
	defer orderReader.Close()

	reviewReader := config.NewKafkaReader("reviews", "agg-svc-consumer")
	defer reviewReader.Close()

	store := storage.NewStore(rdb)

	ctx := context.Background()
	go service.NewReviewConsumer(reviewReader, store).Start(ctx)
	service.NewOrderConsumer(orderReader, store).Start(ctx)
}
