package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"tableside/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func exportLedger() []domain.Order {
	return []domain.Order{
		{
			ID:           "ORD-1",
			CustomerID:   "dev-a",
			RestaurantID: 1,
			Date:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Items: []domain.CartItem{
				{ID: "item-a", Name: "Item A", Price: 100, Quantity: 2},
			},
			Total:         200,
			IsPaid:        true,
			PaymentMethod: domain.PayCash,
			Status:        domain.StatusCompleted,
		},
	}
}

func TestOrders_csv(t *testing.T) {
	out, contentType, err := Orders(exportLedger(), "csv")
	assert.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "ORD-1", records[1][0])
	assert.Equal(t, "200.00", records[1][5])
	assert.Contains(t, records[1][8], "Item A x2")
}

func TestOrders_json(t *testing.T) {
	out, contentType, err := Orders(exportLedger(), "json")
	assert.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Contains(t, string(out), `"id": "ORD-1"`)
}

func TestOrders_xml(t *testing.T) {
	out, contentType, err := Orders(exportLedger(), "xml")
	assert.NoError(t, err)
	assert.Equal(t, "application/xml", contentType)
	assert.Contains(t, string(out), "<orders>")
	assert.Contains(t, string(out), "ORD-1")
}

func TestOrders_unknownFormat(t *testing.T) {
	_, _, err := Orders(exportLedger(), "yaml")
	assert.Error(t, err)
}
