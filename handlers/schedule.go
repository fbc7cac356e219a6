package handlers

import (
	"net/http"

	"shiftsync/services/backend"
	"shiftsync/services/schedule"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the parsed week tabs.
type ScheduleHandler struct {
	Backends backend.Factory
	Schedule *schedule.Service
}

func NewScheduleHandler(backends backend.Factory, svc *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{Backends: backends, Schedule: svc}
}

// GetScheduleHandler handles GET /schedule.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	s, ok := currentSession(c)
	if !ok {
		return
	}
	src, ok := spreadsheetFor(c, h.Backends, s, "Failed to retrieve schedule")
	if !ok {
		return
	}

	resp, err := h.Schedule.Build(c.Request.Context(), src)
	if err != nil {
		logger.Error("Failed to fetch schedule", zap.Error(err))
		utils.AbortWithError(c, utils.NewBackendError("Failed to retrieve schedule", err))
		return
	}
	logger.Info("Sending schedule data", zap.Int("shifts", len(resp.Schedule)), zap.Int("dateHeaders", len(resp.DateHeaders)))
	c.JSON(http.StatusOK, resp)
}
