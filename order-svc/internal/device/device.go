// Package device assigns a stable anonymous identifier per browser. The id
// attributes carts and orders to a customer without real authentication.
package device

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// CookieName matches the key the web client persisted the id under.
	CookieName = "restaurant_device_id"

	cookieMaxAge = 30 * 24 * time.Hour
)

// GetOrCreate returns the caller's device id. A previously issued id (via
// cookie or header) is returned unchanged; first contact mints a fresh one
// and sets the cookie. When the client refuses cookies the id is simply
// ephemeral per request, which degrades attribution but never fails.
func GetOrCreate(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get("X-Device-ID"); id != "" {
		return id
	}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
