package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"tableside/config"
	httpapi "tableside/order-svc/internal/api/http"
	"tableside/order-svc/internal/menu"
	"tableside/order-svc/internal/service"
	"tableside/order-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("orders")
	defer kafkaWriter.Close()

	pg := storage.NewPostgresStore(db)
	if err := pg.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	// Postgres is canonical; redis carries the order-history mirror with a
	// retention TTL so unpaid orders survive a wiped primary.
	adapter := storage.NewAdapter(pg, storage.NewRedisStore(rdb, 7*24*time.Hour)).
		WithMirror(storage.KeyOrders, storage.KeyOrderHistory, storage.UnpaidOrdersFilter)

	catalog := menu.Default()
	system := service.NewOrderSystem(
		adapter,
		catalog,
		storage.NewKafkaPublisher(kafkaWriter),
		nil,
		storage.NewRedisPopularity(rdb),
	)
	system.Load(context.Background())
	defer system.Close()

	r := mux.NewRouter()
	httpapi.NewHandler(system, catalog).RegisterRoutes(r)

	handler := cors.Default().Handler(r)

	log.Println("Order Service starting on port 8081")
	log.Fatal(http.ListenAndServe(":8081", handler))
}
