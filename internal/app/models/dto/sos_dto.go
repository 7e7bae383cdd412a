package dto

import (
	"time"

	"github.com/vani-campus/vani/internal/app/models"
)

// SOSRequest represents an SOS alert trigger
type SOSRequest struct {
	Location string `json:"location" example:"Library, 2nd Floor"`
}

// SOSResponse represents a recorded SOS alert
type SOSResponse struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSOSResponse maps an SOS alert model to its API shape
func NewSOSResponse(a *models.SOSAlert) SOSResponse {
	return SOSResponse{
		ID:        a.ID,
		Author:    a.Author,
		Location:  a.Location,
		Timestamp: a.Timestamp,
	}
}
