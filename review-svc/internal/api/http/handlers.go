package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tableside/review-svc/internal/domain"
	"tableside/review-svc/internal/service"

	"github.com/gorilla/mux"
)

// deviceCookie matches the identity cookie the order service issues.
const deviceCookie = "restaurant_device_id"

type Handler struct {
	Reviews service.ReviewServiceInterface
}

func NewHandler(reviews service.ReviewServiceInterface) *Handler {
	return &Handler{Reviews: reviews}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}/reviews", h.getItemReviews).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.createRestaurantReview).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.getRestaurantReviews).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews/summary", h.getSummary).Methods("GET")
	r.HandleFunc("/api/reviews", h.createBulkReviews).Methods("POST")
}

// deviceID resolves the reviewing customer. There is no account system;
// the device id minted at ordering time is the identity.
func deviceID(r *http.Request) string {
	if id := r.Header.Get("X-Device-ID"); id != "" {
		return id
	}
	if c, err := r.Cookie(deviceCookie); err == nil {
		return c.Value
	}
	return ""
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])

	var payload struct {
		OrderID string `json:"order_id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.OrderID == "" {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}

	review := domain.Review{
		ItemID:       vars["itemId"],
		OrderID:      payload.OrderID,
		RestaurantID: restaurantID,
		CustomerID:   deviceID(r),
		Rating:       payload.Rating,
		Comment:      payload.Comment,
	}

	if err := h.Reviews.CreateOrUpdate(r.Context(), &review); err != nil {
		writeReviewError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

func (h *Handler) getItemReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])

	reviews, err := h.Reviews.ListItemReviews(vars["itemId"], restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *Handler) createRestaurantReview(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var payload struct {
		OrderID string `json:"order_id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.OrderID == "" {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}

	review := domain.RestaurantReview{
		OrderID:      payload.OrderID,
		RestaurantID: restaurantID,
		CustomerID:   deviceID(r),
		Rating:       payload.Rating,
		Comment:      payload.Comment,
	}

	if err := h.Reviews.CreateRestaurantReview(r.Context(), &review); err != nil {
		writeReviewError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

func (h *Handler) getRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	reviews, err := h.Reviews.ListRestaurantReviews(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []domain.RestaurantReview{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	summary, err := h.Reviews.RestaurantSummary(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) createBulkReviews(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OrderID      string `json:"order_id"`
		RestaurantID int    `json:"restaurant_id"`
		Reviews      []struct {
			ItemID  string `json:"item_id"`
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		} `json:"reviews"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.OrderID == "" || len(payload.Reviews) == 0 {
		http.Error(w, "Missing order_id or reviews", http.StatusBadRequest)
		return
	}

	type reviewResult struct {
		ItemID  string `json:"item_id"`
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	}

	customer := deviceID(r)
	results := make([]reviewResult, 0, len(payload.Reviews))
	successCount := 0

	for _, incoming := range payload.Reviews {
		review := domain.Review{
			ItemID:       incoming.ItemID,
			OrderID:      payload.OrderID,
			RestaurantID: payload.RestaurantID,
			CustomerID:   customer,
			Rating:       incoming.Rating,
			Comment:      incoming.Comment,
		}

		if err := h.Reviews.CreateOrUpdate(r.Context(), &review); err != nil {
			results = append(results, reviewResult{
				ItemID:  incoming.ItemID,
				Status:  "error",
				Message: err.Error(),
			})
			continue
		}

		successCount++
		results = append(results, reviewResult{
			ItemID: incoming.ItemID,
			Status: "ok",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if successCount == 0 {
		w.WriteHeader(http.StatusBadRequest)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"processed": results,
		"created":   successCount,
		"failed":    len(results) - successCount,
	})
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRating):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrItemNotInOrder), errors.Is(err, service.ErrOrderMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrDuplicateReview):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
