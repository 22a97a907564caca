package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/service"
)

const flushTimeout = 2 * time.Second

// NewDraftAutosaveWorker snapshots every changed draft each interval and
// once more when stopped.
func NewDraftAutosaveWorker(drafts []service.DraftService, interval time.Duration, logger *logger.Logger) Worker {
	save := func(ctx context.Context) {
		for _, d := range drafts {
			saved, err := d.Autosave(ctx)
			if err != nil {
				logger.Warn().Err(err).Str("kind", d.Kind().String()).Msg("draft autosave failed")
				continue
			}
			if saved {
				logger.Debug().Str("kind", d.Kind().String()).Msg("draft snapshot saved")
			}
		}
	}

	return &periodicWorker{
		name:     "draft-autosave",
		interval: interval,
		logger:   logger,
		tick:     save,
		onStop: func(ctx context.Context) {
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
			defer cancel()
			save(flushCtx)
		},
	}
}
