// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sales-admin/internal/logger"
)

const defaultInterval = time.Minute

// periodicWorker calls tick every interval until its context ends, then
// calls onStop once if set.
type periodicWorker struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)
	onStop   func(ctx context.Context)
	logger   *logger.Logger
}

func (p *periodicWorker) Run(ctx context.Context) {
	interval := p.interval
	if interval <= 0 {
		interval = defaultInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	p.logger.Debug().Str("worker", p.name).Dur("interval", interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			if p.onStop != nil {
				p.onStop(ctx)
			}
			p.logger.Debug().Str("worker", p.name).Msg("worker stopped")
			return
		case <-t.C:
			p.tick(ctx)
		}
	}
}
