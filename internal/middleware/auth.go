package middleware

import (
	"net/http"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/session"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	currentUserKey = "currentUser"
	sessionIDKey   = "sessionID"
)

// AuthMiddleware resolves the session cookie to a user and puts the
// user into the request context. Anything short of a live session
// redirects to the login page.
func AuthMiddleware(cookieName, jwtSecret string, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		user, err := sessions.Resolve(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Set(sessionIDKey, claims.SessionID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// SessionID returns the session ID placed by AuthMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
