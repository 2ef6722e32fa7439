package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableside/order-svc/internal/device"
	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/menu"
	"tableside/order-svc/internal/service"
	"tableside/order-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, service.OrderSystemInterface) {
	t.Helper()

	adapter := storage.NewAdapter(storage.NewMemoryStore(), storage.NewMemoryStore()).
		WithMirror(storage.KeyOrders, storage.KeyOrderHistory, storage.UnpaidOrdersFilter)
	system := service.NewOrderSystem(adapter, menu.Default(), nil, nil, nil)
	system.Load(context.Background())
	t.Cleanup(system.Close)

	router := mux.NewRouter()
	NewHandler(system, menu.Default()).RegisterRoutes(router)
	return router, system
}

func doJSON(t *testing.T, router *mux.Router, method, path, deviceID string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func managerToken(t *testing.T, router *mux.Router) string {
	t.Helper()

	rec := doJSON(t, router, "POST", "/api/manager/login", "", map[string]string{
		"username": "manager",
		"password": "tableside2024",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func doManager(t *testing.T, router *mux.Router, token, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetRestaurantMenu(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/restaurants/1/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.NotEmpty(t, views)
	for _, v := range views {
		assert.Equal(t, float64(1), v["restaurant_id"])
		assert.Equal(t, true, v["available"])
		assert.Equal(t, v["price"], v["current_price"])
	}
}

func TestCartFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/restaurants/1/cart/items", "dev-1", map[string]string{"item_id": "garlic-naan"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, "POST", "/api/restaurants/1/cart/items", "dev-1", map[string]string{"item_id": "garlic-naan"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 120.0, resp.Total)
	assert.Equal(t, 2, resp.Count)

	// Another device sees an empty cart.
	rec = doJSON(t, router, "GET", "/api/restaurants/1/cart", "dev-2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)

	rec = doJSON(t, router, "PUT", "/api/restaurants/1/cart/items/garlic-naan", "dev-1", map[string]int{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Items[0].Quantity)

	rec = doJSON(t, router, "DELETE", "/api/restaurants/1/cart/items/garlic-naan", "dev-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Items[0].Quantity)

	rec = doJSON(t, router, "DELETE", "/api/restaurants/1/cart/items/garlic-naan?all=true", "dev-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestAddUnknownItem(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/restaurants/1/cart/items", "dev-1", map[string]string{"item_id": "pizza"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrderAndPay(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/restaurants/1/cart/items", "dev-1", map[string]string{"item_id": "butter-chicken"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "POST", "/api/restaurants/1/orders", "dev-1", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var placed domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))
	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, domain.StatusPending, placed.Status)
	assert.Equal(t, 320.0, placed.Total)

	// Cart is cleared after placing.
	rec = doJSON(t, router, "GET", "/api/restaurants/1/cart", "dev-1", nil)
	var c cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Empty(t, c.Items)

	rec = doJSON(t, router, "GET", "/api/orders", "dev-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine, 1)

	rec = doJSON(t, router, "POST", "/api/orders/"+placed.ID+"/pay", "dev-1", map[string]string{"method": "upi"})
	require.Equal(t, http.StatusOK, rec.Code)
	var paid domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &paid))
	assert.True(t, paid.IsPaid)
	assert.Equal(t, domain.StatusCompleted, paid.Status)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/restaurants/1/orders", "dev-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayInvalidMethod(t *testing.T) {
	router, system := newTestRouter(t)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "garlic-naan")
	require.NoError(t, err)
	placed, err := system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)

	rec := doJSON(t, router, "POST", "/api/orders/"+placed.ID+"/pay", "dev-1", map[string]string{"method": "cheque"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderQRCode(t *testing.T) {
	router, system := newTestRouter(t)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "garlic-naan")
	require.NoError(t, err)
	placed, err := system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)

	rec := doJSON(t, router, "GET", "/api/orders/"+placed.ID+"/qrcode", "dev-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec = doJSON(t, router, "GET", "/api/orders/ORD-missing/qrcode", "dev-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceCookieIssued(t *testing.T) {
	router, _ := newTestRouter(t)

	// No header, no cookie: the response mints a device id.
	req := httptest.NewRequest("GET", "/api/restaurants/1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var found bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == device.CookieName {
			found = true
			assert.NotEmpty(t, ck.Value)
		}
	}
	assert.True(t, found, "expected a %s cookie to be set", device.CookieName)
}

func TestManagerLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/manager/login", "", map[string]string{
		"username": "manager",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestManagerRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/manager/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/api/manager/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestManagerOrderLifecycle(t *testing.T) {
	router, system := newTestRouter(t)
	token := managerToken(t, router)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "dal-makhani")
	require.NoError(t, err)
	placed, err := system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)

	for _, action := range []string{"confirm", "prepare", "ready", "complete"} {
		rec := doManager(t, router, token, "POST", "/api/manager/orders/"+placed.ID+"/"+action, nil)
		require.Equal(t, http.StatusOK, rec.Code, "action %s", action)
	}

	got, ok := system.OrderByID(placed.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	// Completed orders cannot be cancelled.
	rec := doManager(t, router, token, "POST", "/api/manager/orders/"+placed.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doManager(t, router, token, "POST", "/api/manager/orders/"+placed.ID+"/teleport", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManagerOrderFilters(t *testing.T) {
	router, system := newTestRouter(t)
	token := managerToken(t, router)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "garlic-naan")
	require.NoError(t, err)
	_, err = system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)
	_, err = system.AddToCart(context.Background(), "dev-2", 2, "masala-dosa")
	require.NoError(t, err)
	dosa, err := system.PlaceOrder(context.Background(), "dev-2", 2)
	require.NoError(t, err)
	require.True(t, system.ConfirmOrder(context.Background(), dosa.ID))

	rec := doManager(t, router, token, "GET", "/api/manager/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rec = doManager(t, router, token, "GET", "/api/manager/orders?status=confirmed", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, dosa.ID, all[0].ID)

	rec = doManager(t, router, token, "GET", "/api/manager/orders?restaurant=1", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].RestaurantID)
}

func TestManagerChefNote(t *testing.T) {
	router, system := newTestRouter(t)
	token := managerToken(t, router)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "garlic-naan")
	require.NoError(t, err)
	placed, err := system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)

	rec := doManager(t, router, token, "PUT", "/api/manager/orders/"+placed.ID+"/note", map[string]string{"note": "extra crispy"})
	require.Equal(t, http.StatusOK, rec.Code)

	got, _ := system.OrderByID(placed.ID)
	assert.Equal(t, "extra crispy", got.ChefNote)

	rec = doManager(t, router, token, "PUT", "/api/manager/orders/ORD-missing/note", map[string]string{"note": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestManagerAvailability(t *testing.T) {
	router, _ := newTestRouter(t)
	token := managerToken(t, router)

	rec := doManager(t, router, token, "PUT", "/api/manager/availability/butter-chicken", domain.Availability{Available: true, Discount: 25})
	require.Equal(t, http.StatusOK, rec.Code)

	// The discounted price shows up on the customer menu.
	rec = doJSON(t, router, "GET", "/api/restaurants/1/menu", "", nil)
	var views []menuView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	for _, v := range views {
		if v.ID == "butter-chicken" {
			assert.Equal(t, 240.0, v.CurrentPrice)
			assert.Equal(t, 25.0, v.DiscountPercent)
		}
	}

	rec = doManager(t, router, token, "PUT", "/api/manager/availability/butter-chicken", domain.Availability{Available: true, Discount: 150})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doManager(t, router, token, "PUT", "/api/manager/availability/pizza", domain.Availability{Available: true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestManagerAnalytics(t *testing.T) {
	router, system := newTestRouter(t)
	token := managerToken(t, router)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "butter-chicken")
	require.NoError(t, err)
	placed, err := system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)
	_, err = system.CompletePayment(context.Background(), placed.ID, domain.PayCard)
	require.NoError(t, err)

	rec := doManager(t, router, token, "GET", "/api/manager/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report service.AnalyticsReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 320.0, report.TotalSales)
	assert.Equal(t, 1, report.OrderCount)
}

func TestManagerExport(t *testing.T) {
	router, system := newTestRouter(t)
	token := managerToken(t, router)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "garlic-naan")
	require.NoError(t, err)
	_, err = system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)

	rec := doManager(t, router, token, "GET", "/api/manager/orders/export?format=csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Garlic Naan")

	rec = doManager(t, router, token, "GET", "/api/manager/orders/export?format=vhs", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManagerClearHistory(t *testing.T) {
	router, system := newTestRouter(t)
	token := managerToken(t, router)

	_, err := system.AddToCart(context.Background(), "dev-1", 1, "garlic-naan")
	require.NoError(t, err)
	_, err = system.PlaceOrder(context.Background(), "dev-1", 1)
	require.NoError(t, err)

	rec := doManager(t, router, token, "DELETE", "/api/manager/orders", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, system.Orders())
}
