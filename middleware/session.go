package middleware

import (
	"net/http"
	"time"

	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionOptions configures the session cookie.
type SessionOptions struct {
	TTL    time.Duration
	Secure bool
}

// SessionMiddleware loads the session named by the signed cookie, creating a new one when the
// cookie is missing, invalid or points at an expired session.
func SessionMiddleware(store utils.SessionStore, signer *utils.SessionSigner, opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLogger(c)
		ctx := c.Request.Context()

		var session *utils.Session
		if raw, err := c.Cookie(utils.SessionCookieName); err == nil && raw != "" {
			if id, err := signer.SessionID(raw); err == nil {
				if s, err := store.Get(ctx, id); err == nil {
					session = s
				} else if err != utils.ErrSessionNotFound {
					logger.Error("Failed to load session", zap.Error(err))
					utils.AbortWithError(c, utils.NewBackendError("Failed to load session", err))
					return
				}
			}
		}

		if session == nil {
			session = utils.NewSession()
			if err := store.Save(ctx, session); err != nil {
				logger.Error("Failed to create session", zap.Error(err))
				utils.AbortWithError(c, utils.NewBackendError("Failed to create session", err))
				return
			}
			token, err := signer.Sign(session.ID, opts.TTL)
			if err != nil {
				logger.Error("Failed to sign session", zap.Error(err))
				utils.AbortWithError(c, utils.NewBackendError("Failed to create session", err))
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(utils.SessionCookieName, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
		}

		c.Set(utils.ContextKeySession, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by SessionMiddleware.
func SessionFrom(c *gin.Context) *utils.Session {
	if v, ok := c.Get(utils.ContextKeySession); ok {
		if s, ok := v.(*utils.Session); ok {
			return s
		}
	}
	return nil
}
