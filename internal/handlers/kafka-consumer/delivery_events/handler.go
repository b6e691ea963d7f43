package delivery_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	"service/pkg/logger"
)

type Handler struct {
	sender                   Sender
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, sender Sender, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		sender:                   sender,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("delivery.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("delivery.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// deliveryEvent - wire-формат события из топика уведомлений.
type deliveryEvent struct {
	Type     string            `json:"type"`
	Channel  string            `json:"channel"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata"`
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event deliveryEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("type", event.Type),
		logger.NewField("channel", event.Channel),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.events processing")

	err = h.sender.Send(ctx, entities.DeliveryEvent{
		Type:     entities.DeliveryEventType(event.Type),
		Channel:  event.Channel,
		Title:    event.Title,
		Body:     event.Body,
		Metadata: event.Metadata,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.events handler context cancelled, message will be reprocessed")
			return true
		}

		// push best-effort: недоставленное уведомление не блокирует поток
		msgLog.With(
			logger.NewField("error", err),
		).Warn("delivery.events handler failed to deliver notification")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("delivery.events: delivered")

	sess.MarkMessage(message, "")
	return false
}
