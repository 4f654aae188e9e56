package presence_sweep

import (
	"context"
	"time"

	"pickup-service/pkg/logger"
)

type Service interface {
	ReleaseStaleDrivers(ctx context.Context, threshold time.Duration) (int64, error)
}

type PresenceSweep struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	threshold time.Duration
}

func NewPresenceSweep(log logger.Logger, service Service, interval, threshold time.Duration) *PresenceSweep {
	return &PresenceSweep{
		log:       log,
		service:   service,
		interval:  interval,
		threshold: threshold,
	}
}

func (p *PresenceSweep) TTL() time.Duration {
	return p.interval
}

func (p *PresenceSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	released, err := p.service.ReleaseStaleDrivers(ctxWithTimeout, p.threshold)

	if released > 0 {
		p.log.With(
			logger.NewField("released_drivers", released),
			logger.NewField("threshold", p.threshold.String()),
		).Info("presence sweep")
	}

	return err
}

func (p *PresenceSweep) Info() string {
	return "presence sweep"
}
