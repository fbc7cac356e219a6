package models

import "time"

// UndoEvent references one created calendar event.
type UndoEvent struct {
	Shift     string `json:"shift"`
	Date      string `json:"date"`
	EventID   string `json:"eventId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UndoBatch groups the events created by one synchronization call.
type UndoBatch struct {
	ID           string      `json:"id"`
	Timestamp    time.Time   `json:"timestamp"`
	EmployeeName string      `json:"employeeName"`
	Events       []UndoEvent `json:"events"`
}
