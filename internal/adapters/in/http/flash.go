package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

const (
	flashCookieName = "backoffice_flash"
	flashContextKey = "backoffice.flashes"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Flasher stores flashes in a signed and encrypted cookie, so they survive the redirect
// that follows a successful post.
type Flasher struct {
	codec *securecookie.SecureCookie
}

// NewFlasher needs a hash key. The block key is optional; when set it must be an AES key
// of 16, 24 or 32 bytes.
func NewFlasher(hashKey, blockKey []byte) (*Flasher, error) {
	if len(hashKey) == 0 {
		return nil, errors.New("flash: hash key is required")
	}
	switch len(blockKey) {
	case 0, 16, 24, 32:
	default:
		return nil, fmt.Errorf("flash: block key must be 16, 24 or 32 bytes, got %d", len(blockKey))
	}
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Flasher{codec: codec}, nil
}

// Add queues a flash for this request and the next one.
func (f *Flasher) Add(c echo.Context, kind, message string) error {
	pending, _ := c.Get(flashContextKey).([]Flash)
	pending = append(pending, Flash{Kind: kind, Message: message})
	c.Set(flashContextKey, pending)

	encoded, err := f.codec.Encode(flashCookieName, pending)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the flashes carried by the request and those added during it, then clears
// the cookie.
func (f *Flasher) Pop(c echo.Context) []Flash {
	flashes := f.Read(c.Request())
	if pending, ok := c.Get(flashContextKey).([]Flash); ok {
		flashes = append(flashes, pending...)
		c.Set(flashContextKey, nil)
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return flashes
}

// Read decodes the flash cookie of r. A missing or tampered cookie yields no flashes.
func (f *Flasher) Read(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err = f.codec.Decode(flashCookieName, cookie.Value, &flashes); err != nil {
		return nil
	}
	return flashes
}
