package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tableside/config"
	"tableside/order-svc/internal/device"
	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/export"
	"tableside/order-svc/internal/menu"
	"tableside/order-svc/internal/order"
	"tableside/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
)

type Handler struct {
	Orders  service.OrderSystemInterface
	Catalog *menu.Catalog
}

func NewHandler(orders service.OrderSystemInterface, catalog *menu.Catalog) *Handler {
	return &Handler{Orders: orders, Catalog: catalog}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Customer surface.
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.getRestaurantMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/panels/{panel}", h.setPanel).Methods("PUT")
	r.HandleFunc("/api/panels", h.getPanels).Methods("GET")
	r.HandleFunc("/api/orders", h.getMyOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/pay", h.payOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	// Manager/chef dashboards.
	r.HandleFunc("/api/manager/login", h.managerLogin).Methods("POST")
	r.HandleFunc("/api/manager/orders", ManagerRequired(h.getAllOrders)).Methods("GET")
	r.HandleFunc("/api/manager/orders", ManagerRequired(h.clearHistory)).Methods("DELETE")
	r.HandleFunc("/api/manager/orders/export", ManagerRequired(h.exportOrders)).Methods("GET")
	r.HandleFunc("/api/manager/orders/{id}/{action}", ManagerRequired(h.transitionOrder)).Methods("POST")
	r.HandleFunc("/api/manager/orders/{id}/note", ManagerRequired(h.setChefNote)).Methods("PUT")
	r.HandleFunc("/api/manager/availability", ManagerRequired(h.getAvailability)).Methods("GET")
	r.HandleFunc("/api/manager/availability/{itemId}", ManagerRequired(h.setAvailability)).Methods("PUT")
	r.HandleFunc("/api/manager/analytics", ManagerRequired(h.getAnalytics)).Methods("GET")
}

// menuView merges fixture data with the live availability map.
type menuView struct {
	domain.MenuItem
	Available       bool    `json:"available"`
	DiscountPercent float64 `json:"discount_percent"`
	CurrentPrice    float64 `json:"current_price"`
}

func (h *Handler) menuViews(items []domain.MenuItem) []menuView {
	availability := h.Orders.Availability()
	views := make([]menuView, 0, len(items))
	for _, it := range items {
		av := availability.Lookup(it.ID)
		views = append(views, menuView{
			MenuItem:        it,
			Available:       av.Available,
			DiscountPercent: av.Discount,
			CurrentPrice:    availability.DiscountedPrice(it),
		})
	}
	return views
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.menuViews(h.Catalog.Items()))
}

func (h *Handler) getRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	writeJSON(w, http.StatusOK, h.menuViews(h.Catalog.RestaurantItems(restaurantID)))
}

type cartResponse struct {
	Items domain.Cart `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

func newCartResponse(c domain.Cart) cartResponse {
	var total float64
	var count int
	for _, line := range c {
		total += line.Price * float64(line.Quantity)
		count += line.Quantity
	}
	return cartResponse{Items: c, Total: total, Count: count}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	deviceID := device.GetOrCreate(w, r)

	c := h.Orders.Cart(r.Context(), deviceID, restaurantID)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	deviceID := device.GetOrCreate(w, r)

	var payload struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ItemID == "" {
		http.Error(w, "item_id is required", http.StatusBadRequest)
		return
	}

	c, err := h.Orders.AddToCart(r.Context(), deviceID, restaurantID, payload.ItemID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	deviceID := device.GetOrCreate(w, r)

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	c := h.Orders.SetQuantity(r.Context(), deviceID, restaurantID, vars["itemId"], payload.Quantity)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	deviceID := device.GetOrCreate(w, r)

	var c domain.Cart
	if r.URL.Query().Get("all") == "true" {
		c = h.Orders.DeleteFromCart(r.Context(), deviceID, restaurantID, vars["itemId"])
	} else {
		c = h.Orders.RemoveFromCart(r.Context(), deviceID, restaurantID, vars["itemId"])
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	deviceID := device.GetOrCreate(w, r)

	h.Orders.ClearCart(r.Context(), deviceID, restaurantID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	deviceID := device.GetOrCreate(w, r)

	o, err := h.Orders.PlaceOrder(r.Context(), deviceID, restaurantID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	deviceID := device.GetOrCreate(w, r)

	var mine []domain.Order
	for _, o := range h.Orders.Orders() {
		if o.CustomerID == deviceID {
			mine = append(mine, o)
		}
	}
	if mine == nil {
		mine = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, mine)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.Orders.OrderByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Method domain.PaymentMethod `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	o, err := h.Orders.CompletePayment(r.Context(), mux.Vars(r)["id"], payload.Method)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	o, ok := h.Orders.OrderByID(orderID)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	base := config.Getenv("PUBLIC_BASE_URL", "http://localhost")
	feedbackURL := fmt.Sprintf("%s/feedback.html?order_id=%s&restaurant_id=%d", base, o.ID, o.RestaurantID)
	png, err := qrcode.Encode(feedbackURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) setPanel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	deviceID := device.GetOrCreate(w, r)

	var payload struct {
		Open bool `json:"open"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	panels, err := h.Orders.SetPanel(r.Context(), deviceID, restaurantID, vars["panel"], payload.Open)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, panels)
}

func (h *Handler) getPanels(w http.ResponseWriter, r *http.Request) {
	deviceID := device.GetOrCreate(w, r)
	writeJSON(w, http.StatusOK, h.Orders.Panels(r.Context(), deviceID))
}

// --- manager ---

func (h *Handler) managerLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if !CheckManagerLogin(payload.Username, payload.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := GenerateManagerToken()
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	ledger := h.Orders.Orders()

	if status := r.URL.Query().Get("status"); status != "" {
		ledger = order.ByStatus(ledger, domain.OrderStatus(status))
	}
	if restaurant := r.URL.Query().Get("restaurant"); restaurant != "" {
		id, err := strconv.Atoi(restaurant)
		if err != nil {
			http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
			return
		}
		ledger = order.ByRestaurant(ledger, id)
	}
	if ledger == nil {
		ledger = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, ledger)
}

func (h *Handler) transitionOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["id"]

	var changed bool
	switch vars["action"] {
	case "confirm":
		changed = h.Orders.ConfirmOrder(r.Context(), orderID)
	case "prepare":
		changed = h.Orders.StartPreparing(r.Context(), orderID)
	case "ready":
		changed = h.Orders.MarkReady(r.Context(), orderID)
	case "complete":
		changed = h.Orders.CompleteOrder(r.Context(), orderID)
	case "cancel":
		changed = h.Orders.CancelOrder(r.Context(), orderID)
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}

	if !changed {
		http.Error(w, "Transition not applicable", http.StatusConflict)
		return
	}
	o, _ := h.Orders.OrderByID(orderID)
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) setChefNote(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	orderID := mux.Vars(r)["id"]
	if !h.Orders.SetChefNote(r.Context(), orderID, payload.Note) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	o, _ := h.Orders.OrderByID(orderID)
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.Availability())
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	if _, ok := h.Catalog.Item(itemID); !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	var payload domain.Availability
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Discount < 0 || payload.Discount > 100 {
		http.Error(w, "Discount must be between 0 and 100", http.StatusBadRequest)
		return
	}

	h.Orders.SetAvailability(r.Context(), itemID, payload)
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	restaurantID := -1
	if restaurant := r.URL.Query().Get("restaurant"); restaurant != "" {
		id, err := strconv.Atoi(restaurant)
		if err != nil {
			http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
			return
		}
		restaurantID = id
	}
	writeJSON(w, http.StatusOK, h.Orders.Analytics(r.Context(), restaurantID))
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	out, contentType, err := export.Orders(h.Orders.Orders(), format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="orders.`+format+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	h.Orders.ClearHistory(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, order.ErrItemUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, order.ErrUnknownItem), errors.Is(err, service.ErrUnknownItem):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidPayment):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
