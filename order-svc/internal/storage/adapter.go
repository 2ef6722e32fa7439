package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// Persisted keys. Device-scoped keys get ":<deviceID>" appended via Scoped.
const (
	KeyCart         = "restaurant_cart"
	KeyOrders       = "restaurant_orders"
	KeyOrderHistory = "restaurant_order_history"
	KeyAvailability = "restaurant_availability"
	KeyCartOpen     = "cart_open_state"
	KeyOrderConfirm = "order_confirm_state"
	KeyOrderSuccess = "order_success_state"
	KeyPaymentOpen  = "payment_open_state"
)

// Scoped appends a device id to a key.
func Scoped(key, deviceID string) string {
	return key + ":" + deviceID
}

// MirrorFilter reduces a value before it is written to the side channel.
// Returning false skips the mirror write and deletes any stale copy.
type MirrorFilter func(raw []byte) ([]byte, bool)

// Adapter binds typed state to the two storage backends. Reads prefer the
// durable store and fall back to the side channel; writes go to the durable
// store and, for the one mirrored key, a filtered copy goes to the side
// channel. Storage failures are logged and swallowed: the ordering flow
// must stay usable with persistence degraded.
type Adapter struct {
	durable Backend
	side    Backend

	mirrorKey    string
	sideKey      string
	mirrorFilter MirrorFilter
}

func NewAdapter(durable, side Backend) *Adapter {
	return &Adapter{durable: durable, side: side}
}

// WithMirror designates one durable key whose filtered value is mirrored
// to the side channel under sideKey.
func (a *Adapter) WithMirror(key, sideKey string, filter MirrorFilter) *Adapter {
	a.mirrorKey = key
	a.sideKey = sideKey
	a.mirrorFilter = filter
	return a
}

// Read decodes the stored value for key into dest, returning false when no
// usable value exists in either backend. Malformed data is treated as
// absent, never surfaced as an error.
func (a *Adapter) Read(ctx context.Context, key string, dest interface{}) bool {
	if raw, err := a.durable.Read(ctx, key); err == nil {
		if err := json.Unmarshal(raw, dest); err == nil {
			return true
		}
		log.Printf("[storage] malformed value for %q in durable store, ignoring", key)
	} else if !errors.Is(err, ErrNotFound) {
		log.Printf("[storage] durable read %q: %v", key, err)
	}

	if a.side == nil || key != a.mirrorKey {
		return false
	}

	raw, err := a.side.Read(ctx, a.sideKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[storage] side-channel read %q: %v", a.sideKey, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[storage] malformed value for %q in side channel, ignoring", a.sideKey)
		return false
	}
	return true
}

// ReadOrSeed reads key into dest; when absent it leaves dest at the
// caller-supplied default and seeds the backends with it.
func (a *Adapter) ReadOrSeed(ctx context.Context, key string, dest interface{}) {
	if a.Read(ctx, key, dest) {
		return
	}
	a.Write(ctx, key, dest)
}

// Write persists the value synchronously to the durable store, mirroring
// the designated key to the side channel through its filter. Failures are
// logged, never returned.
func (a *Adapter) Write(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[storage] marshal %q: %v", key, err)
		return
	}

	if err := a.durable.Write(ctx, key, raw); err != nil {
		log.Printf("[storage] durable write %q: %v", key, err)
	}

	if a.side == nil || key != a.mirrorKey {
		return
	}

	mirrored, keep := raw, true
	if a.mirrorFilter != nil {
		mirrored, keep = a.mirrorFilter(raw)
	}
	if !keep {
		if err := a.side.Delete(ctx, a.sideKey); err != nil {
			log.Printf("[storage] side-channel delete %q: %v", a.sideKey, err)
		}
		return
	}
	if err := a.side.Write(ctx, a.sideKey, mirrored); err != nil {
		log.Printf("[storage] side-channel write %q: %v", a.sideKey, err)
	}
}

// Delete removes a key from both backends.
func (a *Adapter) Delete(ctx context.Context, key string) {
	if err := a.durable.Delete(ctx, key); err != nil {
		log.Printf("[storage] durable delete %q: %v", key, err)
	}
	if a.side != nil && key == a.mirrorKey {
		if err := a.side.Delete(ctx, a.sideKey); err != nil {
			log.Printf("[storage] side-channel delete %q: %v", a.sideKey, err)
		}
	}
}
