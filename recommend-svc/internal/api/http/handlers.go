package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tableside/recommend-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Recommender service.RecommenderInterface
}

func NewHandler(recommender service.RecommenderInterface) *Handler {
	return &Handler{Recommender: recommender}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/weather", h.getWeather).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/recommendations", h.getRecommendations).Methods("GET")
}

func (h *Handler) getWeather(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Recommender.Weather(r.Context()))
}

func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	groups, err := h.Recommender.Recommend(r.Context(), restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(groups)
}
