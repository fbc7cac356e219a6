package routes

import (
	"time"

	"shiftsync/handlers"
	"shiftsync/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterAuthRoutes registers the OAuth consent flow. These routes load a session but do not require one.
func RegisterAuthRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	r.GET("/auth", hb.AuthRedirectHandler)
	r.GET("/oauth2callback", hb.OAuthCallbackHandler)
}

// RegisterAppRoutes registers the endpoints that need a signed in session.
func RegisterAppRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("")
	{
		api.Use(middleware.RequireAuth())
		api.GET("/user-info", hb.UserInfoHandler)
		api.POST("/save-name", hb.SaveNameHandler)
		api.GET("/events", hb.ListEventsHandler)
		api.DELETE("/delete-event/:eventId", hb.DeleteEventHandler)
		api.GET("/schedule", hb.GetScheduleHandler)
		api.POST("/add-shifts", hb.AddShiftsHandler)
		api.POST("/undo-last-events", hb.UndoLastEventsHandler)
		api.POST("/export-shifts", hb.ExportShiftsHandler)
	}
}

// corsConfig allows credentialed calls from the listed origins only.
func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// RegisterRoutes wires CORS, sessions and every endpoint onto r.
// Without configured origins the API is same-origin only and no CORS headers are sent.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if len(hb.AllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(hb.AllowedOrigins)))
	}

	RegisterHealthRoute(r)

	sessioned := r.Group("")
	sessioned.Use(middleware.SessionMiddleware(hb.Sessions, hb.Signer, hb.SessionOptions))
	RegisterAuthRoutes(sessioned, hb)
	RegisterAppRoutes(sessioned, hb)
}
