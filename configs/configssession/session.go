package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession builds the cookie-backed session store used for flash
// messages. Storage is in-memory; sessions do not survive a restart.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     12 * time.Hour,
		KeyLookup:      "cookie:stagedesk_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
