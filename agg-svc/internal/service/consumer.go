package service

import (
	"context"
	"encoding/json"
	"log"

	"tableside/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// OrderConsumer feeds order lifecycle events into the aggregate store.
type OrderConsumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewOrderConsumer(reader *kafka.Reader, store StoreInterface) *OrderConsumer {
	return &OrderConsumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *OrderConsumer) Start(ctx context.Context) {
	log.Println("Starting order event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrderEvent(event)
	}
}

func (c *OrderConsumer) ProcessOrderEvent(event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderPlaced:
		log.Printf("Processing placed order: OrderID=%s, RestaurantID=%d, Items=%d",
			event.OrderID, event.RestaurantID, len(event.Items))
		if err := c.Store.RecordOrderPlaced(event); err != nil {
			log.Printf("Error recording placed order: %v", err)
			return
		}
	case domain.EventPaymentCompleted:
		log.Printf("Processing payment: OrderID=%s, RestaurantID=%d, Total=%.2f",
			event.OrderID, event.RestaurantID, event.Total)
		if err := c.Store.RecordPayment(event); err != nil {
			log.Printf("Error recording payment: %v", err)
			return
		}
	default:
		return
	}

	log.Printf("Successfully processed %s for order %s", event.Type, event.OrderID)
}

// ReviewConsumer feeds review events into the aggregate store.
type ReviewConsumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewReviewConsumer(reader *kafka.Reader, store StoreInterface) *ReviewConsumer {
	return &ReviewConsumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *ReviewConsumer) Start(ctx context.Context) {
	log.Println("Starting review event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.ReviewEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessReviewEvent(event)
	}
}

func (c *ReviewConsumer) ProcessReviewEvent(event domain.ReviewEvent) {
	if event.Type != domain.EventNewReview {
		return
	}

	log.Printf("Processing review: ItemID=%s, RestaurantID=%d, Rating=%d",
		event.ItemID, event.RestaurantID, event.Rating)

	if err := c.Store.RecordReview(event); err != nil {
		log.Printf("Error recording review: %v", err)
		return
	}

	log.Printf("Successfully processed review for item %s", event.ItemID)
}
