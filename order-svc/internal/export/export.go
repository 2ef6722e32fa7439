// Package export serializes the order ledger for manager downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"tableside/order-svc/internal/domain"
)

// Orders renders the ledger in the requested format. Supported formats are
// csv, json and xml.
func Orders(ledger []domain.Order, format string) ([]byte, string, error) {
	switch format {
	case "csv":
		out, err := toCSV(ledger)
		return out, "text/csv", err
	case "json":
		out, err := json.MarshalIndent(ledger, "", "  ")
		return out, "application/json", err
	case "xml":
		out, err := toXML(ledger)
		return out, "application/xml", err
	default:
		return nil, "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func toCSV(ledger []domain.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "customer_id", "restaurant_id", "date", "status", "total", "is_paid", "payment_method", "items"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, o := range ledger {
		var items bytes.Buffer
		for i, line := range o.Items {
			if i > 0 {
				items.WriteString("; ")
			}
			fmt.Fprintf(&items, "%s x%d @ %.2f", line.Name, line.Quantity, line.Price)
		}
		record := []string{
			o.ID,
			o.CustomerID,
			strconv.Itoa(o.RestaurantID),
			o.Date.Format(time.RFC3339),
			string(o.Status),
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			strconv.FormatBool(o.IsPaid),
			string(o.PaymentMethod),
			items.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

type xmlLedger struct {
	XMLName xml.Name       `xml:"orders"`
	Orders  []domain.Order `xml:"order"`
}

func toXML(ledger []domain.Order) ([]byte, error) {
	out, err := xml.MarshalIndent(xmlLedger{Orders: ledger}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
