// File: utils/constants.go
package utils

// SessionCookieName names the cookie carrying the signed session token.
const SessionCookieName = "shiftsync_session"

// SessionPrefix is the prefix used for Redis session keys.
const SessionPrefix = "session:"

// UndoPrefix is the prefix used for Redis undo ledger keys.
const UndoPrefix = "undo:"

// LockPrefix is the prefix used for Redis synchronization locks.
const LockPrefix = "lock:"

// Gin context keys.
const (
	ContextKeyLogger    = "logger"
	ContextKeySession   = "session"
	ContextKeyRequestID = "requestID"
)
