package service

import (
	"tableside/agg-svc/internal/domain"
	"tableside/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrderPlaced(event domain.OrderEvent) error
	RecordPayment(event domain.OrderEvent) error
	RecordReview(event domain.ReviewEvent) error
}

var _ StoreInterface = (*storage.Store)(nil)
