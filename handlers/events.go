package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"shiftsync/models"
	"shiftsync/services/backend"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler lists and deletes calendar events.
type CalendarHandler struct {
	Backends backend.Factory
	Location *time.Location
	Now      func() time.Time
}

func NewCalendarHandler(backends backend.Factory, loc *time.Location) *CalendarHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarHandler{Backends: backends, Location: loc, Now: time.Now}
}

// MonthBounds returns the first instant of now's month and of the following month in loc.
func MonthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	now = now.In(loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// ListEventsHandler handles GET /events.
func (h *CalendarHandler) ListEventsHandler(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	cal, ok := calendarFor(c, h.Backends, s, "Failed to retrieve events")
	if !ok {
		return
	}

	start, end := MonthBounds(h.Now(), h.Location)
	events, err := cal.ListEvents(c.Request.Context(), start, end)
	if err != nil {
		getLogger(c).Error("Failed to fetch events", zap.Error(err))
		utils.AbortWithError(c, utils.NewBackendError("Failed to retrieve events", err))
		return
	}

	out := make([]models.CalendarEventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, models.Summarize(e))
	}
	c.JSON(http.StatusOK, out)
}

// DeleteEventHandler handles DELETE /delete-event/:eventId.
func (h *CalendarHandler) DeleteEventHandler(c *gin.Context) {
	logger := getLogger(c)
	s, ok := currentSession(c)
	if !ok {
		return
	}
	eventID := strings.TrimSpace(c.Param("eventId"))
	if eventID == "" || eventID == "undefined" {
		utils.AbortWithError(c, utils.NewValidationError("Valid Event ID is required"))
		return
	}
	cal, ok := calendarFor(c, h.Backends, s, "Failed to delete event")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	event, err := cal.GetEvent(ctx, eventID)
	if err == nil {
		err = cal.DeleteEvent(ctx, eventID)
	}
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			utils.AbortWithError(c, utils.NewNotFoundError("Event not found or already deleted", err))
			return
		}
		logger.Error("Error deleting event", zap.String("eventId", eventID), zap.Error(err))
		utils.AbortWithError(c, utils.NewBackendError("Failed to delete event", err))
		return
	}

	logger.Info("Deleted event", zap.String("summary", event.Summary))
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Deleted event: " + event.Summary,
		"deletedEvent": event,
	})
}
