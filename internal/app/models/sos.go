package models

import (
	"time"
)

// SOSAlert defines the SOS alert model based on the 'sos_alerts' table.
// Alerts are append-only; nothing mutates them after creation.
type SOSAlert struct {
	ID        int64     `json:"id" db:"id"`
	Author    string    `json:"author" db:"author"`
	Location  string    `json:"location" db:"location" example:"Library, 2nd Floor"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
}
