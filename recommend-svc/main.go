package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"tableside/config"
	httpapi "tableside/recommend-svc/internal/api/http"
	"tableside/recommend-svc/internal/service"
	"tableside/recommend-svc/internal/storage"
	"tableside/recommend-svc/internal/weather"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	httpClient := &http.Client{Timeout: 5 * time.Second}

	lat := parseCoord(config.Getenv("RESTAURANT_LAT", "28.6139"))
	lon := parseCoord(config.Getenv("RESTAURANT_LON", "77.2090"))

	weatherClient := weather.NewClient(
		config.Getenv("WEATHER_API_URL", "https://api.open-meteo.com"),
		lat, lon,
		httpClient,
	)

	menuClient := storage.NewMenuClient(
		config.Getenv("ORDER_SVC_URL", "http://localhost:8081"),
		httpClient,
	)

	recommender := service.NewRecommender(weatherClient, menuClient)

	r := mux.NewRouter()
	httpapi.NewHandler(recommender).RegisterRoutes(r)

	handler := cors.Default().Handler(r)

	log.Println("Recommendation Service starting on port 8084")
	log.Fatal(http.ListenAndServe(":8084", handler))
}

func parseCoord(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatal("Invalid coordinate:", raw)
	}
	return v
}
