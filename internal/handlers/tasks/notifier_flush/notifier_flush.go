package notifier_flush

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	Flush(ctx context.Context) (int, error)
}

type NotifierFlush struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewNotifierFlush(log logger.Logger, service Service, interval time.Duration) *NotifierFlush {
	return &NotifierFlush{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (n *NotifierFlush) TTL() time.Duration {
	return n.interval
}

func (n *NotifierFlush) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	sent, err := n.service.Flush(ctxWithTimeout)

	if sent > 0 {
		n.log.With(
			logger.NewField("published_events", sent),
		).Info("notifier flush")
	}

	return err
}

func (n *NotifierFlush) Info() string {
	return "notifier flush"
}
