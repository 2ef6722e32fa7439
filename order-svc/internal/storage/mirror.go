package storage

import (
	"encoding/json"
	"log"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/order"
)

// UnpaidOrdersFilter mirrors only the unpaid subset of the ledger to the
// side channel. Once every order is paid the mirror is dropped.
func UnpaidOrdersFilter(raw []byte) ([]byte, bool) {
	var ledger []domain.Order
	if err := json.Unmarshal(raw, &ledger); err != nil {
		log.Printf("[storage] mirror filter: malformed ledger: %v", err)
		return nil, false
	}

	unpaid := order.Unpaid(ledger)
	if len(unpaid) == 0 {
		return nil, false
	}

	mirrored, err := json.Marshal(unpaid)
	if err != nil {
		log.Printf("[storage] mirror filter: %v", err)
		return nil, false
	}
	return mirrored, true
}
