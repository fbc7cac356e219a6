package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shiftsync/models"
	"shiftsync/services/backend"
	"shiftsync/services/export"
	"shiftsync/services/schedule"
	"shiftsync/services/synchronizer"
	"shiftsync/services/undo"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShiftHandler adds, undoes and exports shift selections.
type ShiftHandler struct {
	Backends backend.Factory
	Schedule *schedule.Service
	Sync     synchronizer.Synchronizer
	Undo     *undo.Service
	Now      func() time.Time
}

func NewShiftHandler(backends backend.Factory, svc *schedule.Service, sync synchronizer.Synchronizer, undoSvc *undo.Service) *ShiftHandler {
	return &ShiftHandler{Backends: backends, Schedule: svc, Sync: sync, Undo: undoSvc, Now: time.Now}
}

// bindShifts decodes an add or export body. Both require an employee and a shift array.
func bindShifts(c *gin.Context) (models.AddShiftsRequest, bool) {
	var req models.AddShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeName == "" || req.Shifts == nil {
		if err != nil {
			getLogger(c).Debug("Rejected shift body", zap.Error(err))
		}
		utils.AbortWithError(c, utils.NewValidationError("Invalid request data"))
		return req, false
	}
	return req, true
}

// syncRequest loads the current schedule rows and builds the synchronizer input.
func (h *ShiftHandler) syncRequest(c *gin.Context, s *utils.Session, body models.AddShiftsRequest, failMessage string) (synchronizer.Request, bool) {
	src, ok := spreadsheetFor(c, h.Backends, s, failMessage)
	if !ok {
		return synchronizer.Request{}, false
	}
	records, err := h.Schedule.Records(c.Request.Context(), src)
	if err != nil {
		getLogger(c).Error("Failed to load schedule rows", zap.Error(err))
		utils.AbortWithError(c, utils.NewBackendError(failMessage, err))
		return synchronizer.Request{}, false
	}
	return synchronizer.Request{
		SessionID:  s.ID,
		Employee:   body.EmployeeName,
		Selections: body.Shifts,
		ColorID:    body.ColorID,
		Records:    records,
	}, true
}

// AddShiftsMessage formats the summary line of an add call.
func AddShiftsMessage(result models.SyncResult) string {
	msg := fmt.Sprintf("Added %d shifts to calendar", len(result.Added))
	if len(result.Skipped) > 0 {
		msg += fmt.Sprintf(", skipped %d duplicates", len(result.Skipped))
	}
	return msg
}

// AddShiftsHandler handles POST /add-shifts.
func (h *ShiftHandler) AddShiftsHandler(c *gin.Context) {
	const failMessage = "Failed to add shifts to calendar"
	s, ok := currentSession(c)
	if !ok {
		return
	}
	body, ok := bindShifts(c)
	if !ok {
		return
	}
	req, ok := h.syncRequest(c, s, body, failMessage)
	if !ok {
		return
	}
	cal, ok := calendarFor(c, h.Backends, s, failMessage)
	if !ok {
		return
	}

	result := h.Sync.Sync(c.Request.Context(), cal, req)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       AddShiftsMessage(result),
		"addedEvents":   result.Added,
		"skippedEvents": result.Skipped,
		"droppedEvents": result.Dropped,
	})
}

// UndoLastEventsHandler handles POST /undo-last-events.
func (h *ShiftHandler) UndoLastEventsHandler(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	cal, ok := calendarFor(c, h.Backends, s, "Failed to undo events")
	if !ok {
		return
	}

	res, err := h.Undo.UndoLast(c.Request.Context(), cal, s.ID)
	if errors.Is(err, undo.ErrNothingToUndo) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "No recent events to undo"})
		return
	}
	if err != nil {
		getLogger(c).Error("Error undoing events", zap.Error(err))
		utils.AbortWithError(c, utils.NewBackendError("Failed to undo events", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       fmt.Sprintf("Undid %d events for %s", len(res.Deleted), res.EmployeeName),
		"deletedEvents": res.Deleted,
	})
}

// ExportShiftsHandler handles POST /export-shifts and returns the selections as an iCalendar file.
func (h *ShiftHandler) ExportShiftsHandler(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	body, ok := bindShifts(c)
	if !ok {
		return
	}
	req, ok := h.syncRequest(c, s, body, "Failed to export shifts")
	if !ok {
		return
	}

	resolved, dropped := h.Sync.Resolve(req)
	if len(dropped) > 0 {
		getLogger(c).Info("Export dropped selections", zap.Int("dropped", len(dropped)))
	}
	c.Header("Content-Disposition", `attachment; filename="shifts.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(export.ICS(resolved, h.Now())))
}
