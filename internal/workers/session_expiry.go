package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/service"
)

// NewSessionExpiryWorker ends the session once its token expires, so an
// idle dashboard returns to the login screen without waiting for a 401.
func NewSessionExpiryWorker(sessions service.SessionService, interval time.Duration, logger *logger.Logger) Worker {
	return &periodicWorker{
		name:     "session-expiry",
		interval: interval,
		logger:   logger,
		tick: func(context.Context) {
			if sessions.CheckExpiry(time.Now()) {
				logger.Info().Msg("session expired")
			}
		},
	}
}
