package middleware

import (
	"net/http"
	"time"

	deliverycontext "light3d/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionCookieMaxAge keeps a visitor's cart for half a year of inactivity.
const sessionCookieMaxAge = 180 * 24 * time.Hour

// SessionMiddleware assigns every visitor a cart session id, carried in a
// cookie. The id is the only thing identifying a cart; there are no user
// accounts.
type SessionMiddleware struct{}

// NewSessionMiddleware creates a new cart session middleware
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Process reads the session cookie, minting a new id when absent or invalid.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := ""
		if cookie, err := c.Cookie(deliverycontext.CookieCartSession); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = cookie.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(&http.Cookie{
				Name:     deliverycontext.CookieCartSession,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(sessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		deliverycontext.SetSessionID(c, sessionID)

		return next(c)
	}
}
