package handlers

import (
	"shiftsync/middleware"
	"shiftsync/services/backend"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// currentSession returns the request session or writes a 401.
func currentSession(c *gin.Context) (*utils.Session, bool) {
	s := middleware.SessionFrom(c)
	if !s.Authenticated() {
		utils.AbortWithError(c, utils.NewAuthenticationError("Not authenticated"))
		return nil, false
	}
	return s, true
}

// calendarFor builds the session's calendar backend, writing failMessage as a 500 on error.
func calendarFor(c *gin.Context, factory backend.Factory, s *utils.Session, failMessage string) (backend.CalendarBackend, bool) {
	cal, err := factory.Calendar(c.Request.Context(), s.Token)
	if err != nil {
		getLogger(c).Error("Failed to create calendar client", zap.Error(err))
		utils.AbortWithError(c, utils.NewBackendError(failMessage, err))
		return nil, false
	}
	return cal, true
}

// spreadsheetFor builds the session's schedule source, writing failMessage as a 500 on error.
func spreadsheetFor(c *gin.Context, factory backend.Factory, s *utils.Session, failMessage string) (backend.SpreadsheetBackend, bool) {
	src, err := factory.Spreadsheet(c.Request.Context(), s.Token)
	if err != nil {
		getLogger(c).Error("Failed to create spreadsheet client", zap.Error(err))
		utils.AbortWithError(c, utils.NewBackendError(failMessage, err))
		return nil, false
	}
	return src, true
}
