//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Delivery, error)
}
