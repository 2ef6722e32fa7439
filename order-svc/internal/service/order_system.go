package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"tableside/order-svc/internal/cart"
	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/menu"
	"tableside/order-svc/internal/order"
	"tableside/order-svc/internal/storage"
)

var (
	ErrUnknownItem    = errors.New("item is not on the menu")
	ErrUnknownPanel   = errors.New("unknown panel")
	ErrInvalidPayment = errors.New("unsupported payment method")
	ErrOrderNotFound  = errors.New("order not found")
)

// Panel names accepted by SetPanel.
const (
	PanelCart    = "cart"
	PanelConfirm = "confirm"
	PanelSuccess = "success"
	PanelPayment = "payment"
)

// OrderSystem owns all mutable ordering state: per-device carts, the
// canonical order ledger, the availability map and per-device panel flags.
// Every mutation computes the next value through a pure function, commits
// it under the lock, writes through to the storage adapter and emits a
// user-facing notice. Storage and broker failures are logged only; domain
// validation failures are the one user-visible error path.
type OrderSystem struct {
	mu sync.Mutex

	store     *storage.Adapter
	catalog   *menu.Catalog
	publisher EventPublisher
	notifier  Notifier
	popular   PopularityReader

	availability domain.AvailabilityMap
	ledger       []domain.Order
	carts        map[string]domain.CartState
	panels       map[string]domain.PanelState

	timers map[string]*time.Timer
	closed bool

	// SuccessCloseDelay is how long the order-success panel stays open
	// before the scheduled auto-close fires.
	SuccessCloseDelay time.Duration
}

func NewOrderSystem(store *storage.Adapter, catalog *menu.Catalog, publisher EventPublisher, notifier Notifier, popular PopularityReader) *OrderSystem {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &OrderSystem{
		store:             store,
		catalog:           catalog,
		publisher:         publisher,
		notifier:          notifier,
		popular:           popular,
		availability:      domain.AvailabilityMap{},
		carts:             make(map[string]domain.CartState),
		panels:            make(map[string]domain.PanelState),
		timers:            make(map[string]*time.Timer),
		SuccessCloseDelay: 4 * time.Second,
	}
}

// Load restores the ledger and availability map from storage. Missing or
// malformed state falls back to empty defaults and is reseeded.
func (s *OrderSystem) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := []domain.Order{}
	s.store.ReadOrSeed(ctx, storage.KeyOrders, &ledger)
	for i := range ledger {
		ledger[i].Normalize()
	}
	s.ledger = ledger

	availability := domain.AvailabilityMap{}
	s.store.ReadOrSeed(ctx, storage.KeyAvailability, &availability)
	s.availability = availability

	log.Printf("[order-svc] restored %d orders, %d availability records", len(ledger), len(availability))
}

// Close stops pending auto-close timers. Further timer fires become no-ops.
func (s *OrderSystem) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

// --- carts ---

func (s *OrderSystem) Cart(ctx context.Context, deviceID string, restaurantID int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.cartLocked(ctx, deviceID)[restaurantID])
}

func (s *OrderSystem) AddToCart(ctx context.Context, deviceID string, restaurantID int, itemID string) (domain.Cart, error) {
	item, ok := s.catalog.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.cartLocked(ctx, deviceID)
	next, err := cart.Add(state[restaurantID], item, s.availability)
	if err != nil {
		s.notifier.Notify(deviceID, "error", err.Error())
		return state[restaurantID], err
	}

	s.commitCartLocked(ctx, deviceID, restaurantID, next)
	s.notifier.Notify(deviceID, "success", item.Name+" added to cart")
	return cloneCart(next), nil
}

func (s *OrderSystem) RemoveFromCart(ctx context.Context, deviceID string, restaurantID int, itemID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cart.Decrement(s.cartLocked(ctx, deviceID)[restaurantID], itemID)
	s.commitCartLocked(ctx, deviceID, restaurantID, next)
	return cloneCart(next)
}

func (s *OrderSystem) DeleteFromCart(ctx context.Context, deviceID string, restaurantID int, itemID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cart.Remove(s.cartLocked(ctx, deviceID)[restaurantID], itemID)
	s.commitCartLocked(ctx, deviceID, restaurantID, next)
	s.notifier.Notify(deviceID, "info", "Item removed from cart")
	return cloneCart(next)
}

func (s *OrderSystem) SetQuantity(ctx context.Context, deviceID string, restaurantID int, itemID string, quantity int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cart.SetQuantity(s.cartLocked(ctx, deviceID)[restaurantID], itemID, quantity)
	s.commitCartLocked(ctx, deviceID, restaurantID, next)
	return cloneCart(next)
}

func (s *OrderSystem) ClearCart(ctx context.Context, deviceID string, restaurantID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitCartLocked(ctx, deviceID, restaurantID, domain.Cart{})
}

// cartLocked lazily restores a device's cart state from storage.
func (s *OrderSystem) cartLocked(ctx context.Context, deviceID string) domain.CartState {
	if state, ok := s.carts[deviceID]; ok {
		return state
	}
	state := domain.CartState{}
	s.store.Read(ctx, storage.Scoped(storage.KeyCart, deviceID), &state)
	s.carts[deviceID] = state
	return state
}

func (s *OrderSystem) commitCartLocked(ctx context.Context, deviceID string, restaurantID int, c domain.Cart) {
	state := s.cartLocked(ctx, deviceID)
	state[restaurantID] = c
	s.carts[deviceID] = state
	s.store.Write(ctx, storage.Scoped(storage.KeyCart, deviceID), state)
}

// --- orders ---

// PlaceOrder turns the device's cart for one restaurant into a pending
// order. The cart is cleared and the success panel opened only when the
// whole cart validates; an unavailable line aborts with the cart intact.
func (s *OrderSystem) PlaceOrder(ctx context.Context, deviceID string, restaurantID int) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.cartLocked(ctx, deviceID)[restaurantID]
	o, err := order.CreateFromCart(current, deviceID, restaurantID, s.catalog, s.availability, time.Now())
	if err != nil {
		if !errors.Is(err, order.ErrEmptyCart) {
			s.notifier.Notify(deviceID, "error", err.Error())
		}
		return domain.Order{}, err
	}

	s.ledger = append(s.ledger, o)
	s.store.Write(ctx, storage.KeyOrders, s.ledger)
	s.commitCartLocked(ctx, deviceID, restaurantID, domain.Cart{})

	flags := s.panelLocked(ctx, deviceID)[restaurantID]
	flags.ConfirmOpen = false
	flags.SuccessOpen = true
	s.commitPanelLocked(ctx, deviceID, restaurantID, flags)
	s.scheduleSuccessCloseLocked(deviceID, restaurantID)

	s.notifier.Notify(deviceID, "success", fmt.Sprintf("Order %s placed", o.ID))
	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		Status:       o.Status,
		Total:        o.Total,
		Items:        o.Items,
		Timestamp:    time.Now(),
	})
	return o, nil
}

func (s *OrderSystem) ConfirmOrder(ctx context.Context, orderID string) bool {
	return s.transition(ctx, orderID, order.Confirm, "Order confirmed")
}

func (s *OrderSystem) StartPreparing(ctx context.Context, orderID string) bool {
	return s.transition(ctx, orderID, order.StartPreparing, "Order is being prepared")
}

func (s *OrderSystem) MarkReady(ctx context.Context, orderID string) bool {
	return s.transition(ctx, orderID, order.MarkReady, "Order is ready")
}

func (s *OrderSystem) CompleteOrder(ctx context.Context, orderID string) bool {
	return s.transition(ctx, orderID, order.Complete, "Order completed")
}

func (s *OrderSystem) CancelOrder(ctx context.Context, orderID string) bool {
	return s.transition(ctx, orderID, order.Cancel, "Order cancelled")
}

func (s *OrderSystem) transition(ctx context.Context, orderID string, fn func([]domain.Order, string) ([]domain.Order, bool), notice string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.ledger, orderID)
	if !changed {
		return false
	}
	s.ledger = next
	s.store.Write(ctx, storage.KeyOrders, s.ledger)

	o, _ := order.ByID(s.ledger, orderID)
	s.notifier.Notify(o.CustomerID, "info", notice)
	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventStatusChanged,
		OrderID:      o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		Status:       o.Status,
		Total:        o.Total,
		Timestamp:    time.Now(),
	})
	return true
}

// CompletePayment marks the order paid and completed in one step.
func (s *OrderSystem) CompletePayment(ctx context.Context, orderID string, method domain.PaymentMethod) (domain.Order, error) {
	if !domain.ValidPaymentMethod(method) {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrInvalidPayment, method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := order.CompletePayment(s.ledger, orderID, method)
	if !changed {
		if o, ok := order.ByID(s.ledger, orderID); ok {
			return o, nil
		}
		return domain.Order{}, ErrOrderNotFound
	}

	s.ledger = next
	s.store.Write(ctx, storage.KeyOrders, s.ledger)

	o, _ := order.ByID(s.ledger, orderID)
	s.notifier.Notify(o.CustomerID, "success", fmt.Sprintf("Payment received (%s), order %s completed", method, o.ID))
	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventPaymentCompleted,
		OrderID:      o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		Status:       o.Status,
		Total:        o.Total,
		Method:       method,
		Timestamp:    time.Now(),
	})
	return o, nil
}

func (s *OrderSystem) SetChefNote(ctx context.Context, orderID, note string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := order.SetChefNote(s.ledger, orderID, note)
	if !changed {
		return false
	}
	s.ledger = next
	s.store.Write(ctx, storage.KeyOrders, s.ledger)
	return true
}

// --- reads ---

func (s *OrderSystem) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.ledger))
	copy(out, s.ledger)
	return out
}

func (s *OrderSystem) OrderByID(orderID string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return order.ByID(s.ledger, orderID)
}

func (s *OrderSystem) LatestCompletedOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return order.LatestCompletedID(s.ledger)
}

// Analytics aggregates sales from the ledger and decorates the leaderboard
// from redis, falling back to ledger counts when the leaderboard is
// unreachable.
func (s *OrderSystem) Analytics(ctx context.Context, restaurantID int) AnalyticsReport {
	ledger := s.Orders()

	report := AnalyticsReport{
		TotalSales:        order.TotalSales(ledger),
		OrderCount:        order.Count(ledger, restaurantID),
		AverageOrderValue: order.AverageOrderValue(ledger),
		RestaurantSales:   map[int]float64{},
	}
	for _, o := range ledger {
		if o.IsPaid {
			report.RestaurantSales[o.RestaurantID] += o.Total
		}
	}

	report.TopItems = s.topItems(ctx, ledger, restaurantID)
	return report
}

func (s *OrderSystem) topItems(ctx context.Context, ledger []domain.Order, restaurantID int) []domain.ItemScore {
	const limit = 5

	if s.popular != nil {
		if top, err := s.popular.TopItems(ctx, restaurantID, limit); err == nil && len(top) > 0 {
			for i := range top {
				if item, ok := s.catalog.Item(top[i].ItemID); ok {
					top[i].Name = item.Name
				}
			}
			return top
		}
	}

	// Leaderboard unavailable: derive from the ledger.
	counts := order.ItemCounts(ledger)
	top := make([]domain.ItemScore, 0, len(counts))
	for id, n := range counts {
		score := domain.ItemScore{ItemID: id, Score: float64(n)}
		if item, ok := s.catalog.Item(id); ok {
			score.Name = item.Name
		}
		top = append(top, score)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

// --- availability ---

func (s *OrderSystem) Availability() domain.AvailabilityMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.AvailabilityMap, len(s.availability))
	for k, v := range s.availability {
		out[k] = v
	}
	return out
}

func (s *OrderSystem) SetAvailability(ctx context.Context, itemID string, av domain.Availability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability[itemID] = av
	s.store.Write(ctx, storage.KeyAvailability, s.availability)
}

// --- panels ---

func (s *OrderSystem) Panels(ctx context.Context, deviceID string) domain.PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePanels(s.panelLocked(ctx, deviceID))
}

func (s *OrderSystem) SetPanel(ctx context.Context, deviceID string, restaurantID int, panel string, open bool) (domain.PanelState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags := s.panelLocked(ctx, deviceID)[restaurantID]
	switch panel {
	case PanelCart:
		flags.CartOpen = open
	case PanelConfirm:
		flags.ConfirmOpen = open
	case PanelSuccess:
		flags.SuccessOpen = open
	case PanelPayment:
		flags.PaymentOpen = open
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, panel)
	}
	s.commitPanelLocked(ctx, deviceID, restaurantID, flags)
	return clonePanels(s.panels[deviceID]), nil
}

func (s *OrderSystem) panelLocked(ctx context.Context, deviceID string) domain.PanelState {
	if state, ok := s.panels[deviceID]; ok {
		return state
	}
	state := domain.PanelState{}
	s.store.Read(ctx, storage.Scoped(storage.KeyCartOpen, deviceID), &state)
	s.panels[deviceID] = state
	return state
}

func (s *OrderSystem) commitPanelLocked(ctx context.Context, deviceID string, restaurantID int, flags domain.PanelFlags) {
	state := s.panelLocked(ctx, deviceID)
	state[restaurantID] = flags
	s.panels[deviceID] = state
	s.store.Write(ctx, storage.Scoped(storage.KeyCartOpen, deviceID), state)
}

// scheduleSuccessCloseLocked arms a cancellable timer that closes the
// success panel after SuccessCloseDelay. Re-placing an order rearms it.
func (s *OrderSystem) scheduleSuccessCloseLocked(deviceID string, restaurantID int) {
	key := fmt.Sprintf("%s:%d", deviceID, restaurantID)
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(s.SuccessCloseDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		delete(s.timers, key)
		flags := s.panels[deviceID][restaurantID]
		if !flags.SuccessOpen {
			return
		}
		flags.SuccessOpen = false
		s.commitPanelLocked(context.Background(), deviceID, restaurantID, flags)
	})
}

// --- history ---

// ClearHistory wipes the order ledger. The only bulk deletion in the
// system; individual orders are never removed.
func (s *OrderSystem) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = []domain.Order{}
	s.store.Write(ctx, storage.KeyOrders, s.ledger)
	log.Printf("[order-svc] order history cleared")
}

func (s *OrderSystem) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[order-svc] publish %s for %s: %v", event.Type, event.OrderID, err)
	}
}

func cloneCart(c domain.Cart) domain.Cart {
	out := make(domain.Cart, len(c))
	copy(out, c)
	return out
}

func clonePanels(p domain.PanelState) domain.PanelState {
	out := make(domain.PanelState, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

type logNotifier struct{}

func (logNotifier) Notify(deviceID, level, message string) {
	log.Printf("[order-svc] notify %s %s: %s", deviceID, level, message)
}
