package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"tableside/config"
	httpapi "tableside/review-svc/internal/api/http"
	"tableside/review-svc/internal/service"
	"tableside/review-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("reviews")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	orderSvcURL := config.Getenv("ORDER_SVC_URL", "http://localhost:8081")

	svc := service.NewReviewService(
		repo,
		storage.NewRedisCache(rdb, 24*time.Hour),
		storage.NewKafkaPublisher(kafkaWriter),
		storage.NewOrderClient(orderSvcURL, &http.Client{Timeout: 5 * time.Second}),
	)

	r := mux.NewRouter()
	httpapi.NewHandler(svc).RegisterRoutes(r)

	handler := cors.Default().Handler(r)

	log.Println("Review Service starting on port 8082")
	log.Fatal(http.ListenAndServe(":8082", handler))
}
