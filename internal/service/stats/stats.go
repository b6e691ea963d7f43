package stats

import (
	"context"
	"fmt"
	"math"

	"service/internal/entities"
)

type Stats struct {
	repository Repository
}

func New(repository Repository) *Stats {
	return &Stats{
		repository: repository,
	}
}

// Overview считает агрегаты по всем доставкам, доступно только админу.
// Выручка учитывает только доставленные заказы.
func (s *Stats) Overview(ctx context.Context, actor entities.Actor) (*entities.DeliveryStats, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrForbidden
	}

	deliveries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}

	result := entities.DeliveryStats{
		Total: int64(len(deliveries)),
	}

	for _, d := range deliveries {
		switch d.Status {
		case entities.DeliveryPending:
			result.Pending++
		case entities.DeliveryConfirmed:
			result.Confirmed++
		case entities.DeliveryPickedUp:
			result.PickedUp++
		case entities.DeliveryInTransit:
			result.InTransit++
		case entities.DeliveryDelivered:
			result.Delivered++
			result.TotalRevenue += d.Price
		case entities.DeliveryCancelled:
			result.Cancelled++
		}
	}

	result.TotalRevenue = math.Round(result.TotalRevenue*100) / 100

	// метрика пока не определена продуктом, отдаем placeholder
	result.AverageDeliveryTime = 0

	return &result, nil
}
