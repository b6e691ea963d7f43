package notifier

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

// Dispatcher принимает события жизненного цикла без блокировки вызывающего
// и отдает их брокеру пачками из фоновой задачи. Очередь ограничена:
// при переполнении события отбрасываются, доставка best-effort.
type Dispatcher struct {
	log       handlerLogger
	publisher Publisher
	queue     chan entities.DeliveryEvent
}

func New(log handlerLogger, publisher Publisher, queueSize int) *Dispatcher {
	dispatcherLog := log.With()

	return &Dispatcher{
		log:       dispatcherLog,
		publisher: publisher,
		queue:     make(chan entities.DeliveryEvent, queueSize),
	}
}

func (d *Dispatcher) Notify(event entities.DeliveryEvent) {
	select {
	case d.queue <- event:
		NotificationsEnqueuedTotal.WithLabelValues(string(event.Type)).Inc()
	default:
		NotificationsDroppedTotal.WithLabelValues(string(event.Type)).Inc()
		d.log.Warn("notification queue full, dropping event",
			logger.NewField("type", event.Type),
			logger.NewField("channel", event.Channel),
		)
	}
}

// Flush отправляет накопленные события. Ошибки публикации не прерывают
// проход: событие отбрасывается, остальные уходят дальше.
func (d *Dispatcher) Flush(ctx context.Context) (int, error) {
	var sent int
	for {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		select {
		case event := <-d.queue:
			err := d.publisher.Publish(ctx, event)
			if err != nil {
				NotificationPublishErrorsTotal.WithLabelValues(string(event.Type)).Inc()
				d.log.Error("publish notification",
					logger.NewField("type", event.Type),
					logger.NewField("channel", event.Channel),
					logger.NewField("error", err),
				)
				continue
			}

			NotificationsPublishedTotal.WithLabelValues(string(event.Type)).Inc()
			sent++
		default:
			return sent, nil
		}
	}
}
