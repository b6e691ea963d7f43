//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)

	// Update применяет modify только если updated_at записи равен expectedUpdatedAt,
	// иначе возвращает ErrConcurrentUpdate.
	Update(ctx context.Context, id string, expectedUpdatedAt time.Time, modify entities.DeliveryModify) (*entities.Delivery, error)

	List(ctx context.Context, filter entities.DeliveryFilter) (*entities.DeliveryPage, error)
}

type RouteGateway interface {
	Route(ctx context.Context, origin, destination string) (*entities.Route, error)
}

type Notifier interface {
	// Notify не блокирует и не возвращает ошибок, доставка best-effort.
	Notify(event entities.DeliveryEvent)
}

type MessageFactory interface {
	StatusMessage(status entities.DeliveryStatusType) (title, body string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
