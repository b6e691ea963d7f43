//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_events_test
package delivery_events

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Sender interface {
	Send(ctx context.Context, event entities.DeliveryEvent) error
}
