package handlers

import (
	"shiftsync/middleware"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions utils.SessionStore
	Signer   *utils.SessionSigner

	SessionOptions middleware.SessionOptions
	AllowedOrigins []string

	// Auth endpoints
	AuthRedirectHandler  gin.HandlerFunc
	OAuthCallbackHandler gin.HandlerFunc

	// User endpoints
	UserInfoHandler gin.HandlerFunc
	SaveNameHandler gin.HandlerFunc

	// Calendar endpoints
	ListEventsHandler  gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc

	// Schedule and shift endpoints
	GetScheduleHandler    gin.HandlerFunc
	AddShiftsHandler      gin.HandlerFunc
	UndoLastEventsHandler gin.HandlerFunc
	ExportShiftsHandler   gin.HandlerFunc
}
