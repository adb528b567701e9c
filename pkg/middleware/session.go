package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the visitor's session id.
const SessionCookie = "agrimind_session"

const sessionKey = "session_id"

// Session makes sure every request carries a session id, issuing a new one
// when the cookie is missing or malformed. The cookie is refreshed on each
// request so active visitors keep their state.
func Session(ttl time.Duration, secure bool) gin.HandlerFunc {
	maxAge := int(ttl / time.Second)

	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil {
			id = uuid.NewString()
		} else if _, perr := uuid.Parse(id); perr != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, maxAge, "/", "", secure, true)
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
