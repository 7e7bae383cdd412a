package services

import (
	"context"
	"strings"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
)

// UnknownLocation is stored when an alert is triggered without a location
const UnknownLocation = "Unknown Location"

// SOSService records safety alerts. Alerts always carry the caller's real
// name; there is no anonymous form.
type SOSService struct {
	alerts repositories.SOSStore
}

// NewSOSService creates a new SOSService
func NewSOSService(alerts repositories.SOSStore) *SOSService {
	return &SOSService{alerts: alerts}
}

// Trigger records a new alert for the given identity
func (s *SOSService) Trigger(ctx context.Context, caller models.Identity, location string) (*models.SOSAlert, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = UnknownLocation
	}

	alert := &models.SOSAlert{
		Author:   caller.Name,
		Location: location,
	}
	if _, err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	return alert, nil
}

// List returns all alerts, newest first
func (s *SOSService) List(ctx context.Context) ([]models.SOSAlert, error) {
	return s.alerts.GetAll(ctx)
}
