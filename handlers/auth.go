package handlers

import (
	"crypto/subtle"
	"net/http"

	"shiftsync/middleware"
	"shiftsync/services/user"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// AuthHandler runs the Google OAuth consent flow.
type AuthHandler struct {
	OAuth             *oauth2.Config
	Sessions          utils.SessionStore
	Users             user.UserService
	PostLoginRedirect string
}

func NewAuthHandler(oauth *oauth2.Config, sessions utils.SessionStore, users user.UserService, postLoginRedirect string) *AuthHandler {
	if postLoginRedirect == "" {
		postLoginRedirect = "/"
	}
	return &AuthHandler{OAuth: oauth, Sessions: sessions, Users: users, PostLoginRedirect: postLoginRedirect}
}

// AuthRedirectHandler handles GET /auth.
func (h *AuthHandler) AuthRedirectHandler(c *gin.Context) {
	s := middleware.SessionFrom(c)
	state := ""
	if s != nil {
		state = s.ID
	}
	url := h.OAuth.AuthCodeURL(state, oauth2.AccessTypeOffline)
	getLogger(c).Debug("Generated OAuth URL", zap.String("redirect_uri", h.OAuth.RedirectURL))
	c.Redirect(http.StatusFound, url)
}

// OAuthCallbackHandler handles GET /oauth2callback.
func (h *AuthHandler) OAuthCallbackHandler(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	s := middleware.SessionFrom(c)
	code := c.Query("code")
	if s == nil || code == "" {
		logger.Warn("OAuth callback without code or session")
		c.Redirect(http.StatusFound, "/?error=auth_failed")
		return
	}
	// The consent URL carries the session id as state; a callback for any other session is refused.
	if subtle.ConstantTimeCompare([]byte(c.Query("state")), []byte(s.ID)) != 1 {
		logger.Warn("OAuth callback state does not match session")
		c.Redirect(http.StatusFound, "/?error=auth_failed")
		return
	}

	token, err := h.OAuth.Exchange(ctx, code)
	if err != nil {
		logger.Error("OAuth error", zap.Error(err))
		c.Redirect(http.StatusFound, "/?error=auth_failed")
		return
	}
	s.Token = token

	if h.Users != nil {
		if email, err := h.Users.Email(ctx, token); err != nil {
			logger.Warn("Could not resolve account email", zap.Error(err))
		} else {
			s.Email = email
		}
	}

	if err := h.Sessions.Save(ctx, s); err != nil {
		logger.Error("Failed to persist session", zap.Error(err))
		c.Redirect(http.StatusFound, "/?error=auth_failed")
		return
	}
	logger.Info("Tokens received successfully", zap.String("email", s.Email))
	c.Redirect(http.StatusFound, h.PostLoginRedirect)
}
