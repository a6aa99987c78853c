package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "light3d/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSessionMiddleware(t *testing.T, req *http.Request) (sessionID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewSessionMiddleware().Process(func(c echo.Context) error {
		sessionID = deliverycontext.GetSessionID(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return sessionID, rec
}

func TestSessionMiddleware_MintsNewSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)

	sessionID, rec := runSessionMiddleware(t, req)

	_, err := uuid.Parse(sessionID)
	require.NoError(t, err, "minted session id should be a uuid")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, deliverycontext.CookieCartSession, cookie.Name)
	assert.Equal(t, sessionID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(sessionCookieMaxAge.Seconds()), cookie.MaxAge)
}

func TestSessionMiddleware_ReusesExistingSession(t *testing.T) {
	existing := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: deliverycontext.CookieCartSession, Value: existing})

	sessionID, rec := runSessionMiddleware(t, req)

	assert.Equal(t, existing, sessionID)
	assert.Empty(t, rec.Result().Cookies(), "no new cookie when the session is valid")
}

func TestSessionMiddleware_ReplacesInvalidCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: deliverycontext.CookieCartSession, Value: "not-a-uuid"})

	sessionID, rec := runSessionMiddleware(t, req)

	assert.NotEqual(t, "not-a-uuid", sessionID)
	_, err := uuid.Parse(sessionID)
	require.NoError(t, err)
	require.Len(t, rec.Result().Cookies(), 1)
}
