package main

import (
	"log"
	"net/http"

	"tableside/api-gateway/internal/gateway"
	"tableside/config"

	"github.com/rs/cors"
)

func main() {
	cfg := gateway.Config{
		OrderSvcURL:     config.Getenv("ORDER_SVC_URL", "http://localhost:8081"),
		ReviewSvcURL:    config.Getenv("REVIEW_SVC_URL", "http://localhost:8082"),
		RecommendSvcURL: config.Getenv("RECOMMEND_SVC_URL", "http://localhost:8084"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Println("API Gateway starting on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
