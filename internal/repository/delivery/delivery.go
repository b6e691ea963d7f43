package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, customer_id, driver_id, pickup_address, delivery_address,
		customer_name, customer_phone, customer_email, description,
		weight_kg, items, tier, status, price, distance_meters, duration_seconds,
		pickup_date, estimated_delivery_date, actual_delivery_date,
		pickup_lat, pickup_lng, delivery_lat, delivery_lng, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	model := FromDomain(&deliveryEntity)

	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING ` + deliveryColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		model.ID,
		model.CustomerID,
		model.DriverID,
		model.PickupAddress,
		model.DeliveryAddress,
		model.CustomerName,
		model.CustomerPhone,
		model.CustomerEmail,
		model.Description,
		model.WeightKg,
		model.Items,
		model.Tier,
		model.Status,
		model.Price,
		model.DistanceMeters,
		model.DurationSeconds,
		model.PickupDate,
		model.EstimatedDeliveryDate,
		model.ActualDeliveryDate,
		model.PickupLat,
		model.PickupLng,
		model.DeliveryLat,
		model.DeliveryLng,
		model.CreatedAt,
		model.UpdatedAt,
	)

	var created DeliveryDB
	err := scanDelivery(row, &created)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("delivery id %s already exists: %w", model.ID, err)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	var model DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, id), &model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Update(ctx context.Context, id string, expectedUpdatedAt time.Time, modify entities.DeliveryModify) (*entities.Delivery, error) {
	builder := qb.Update("deliveries")

	// опциональные поля
	if modify.DriverID != nil {
		builder = builder.Set("driver_id", *modify.DriverID)
	}
	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.ActualDeliveryDate != nil {
		builder = builder.Set("actual_delivery_date", *modify.ActualDeliveryDate)
	}
	if modify.PickupLocation != nil {
		builder = builder.
			Set("pickup_lat", modify.PickupLocation.Lat).
			Set("pickup_lng", modify.PickupLocation.Lng)
	}
	if modify.DeliveryLocation != nil {
		builder = builder.
			Set("delivery_lat", modify.DeliveryLocation.Lat).
			Set("delivery_lng", modify.DeliveryLocation.Lng)
	}
	if modify.UpdatedAt != nil {
		builder = builder.Set("updated_at", *modify.UpdatedAt)
	}

	// updated_at в WHERE - оптимистическая блокировка записи
	builder = builder.
		Where(sq.Eq{"id": id, "updated_at": expectedUpdatedAt}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var model DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveUpdateMiss(ctx, id)
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) (*entities.DeliveryPage, error) {
	conditions := filterConditions(filter)

	countBuilder := qb.Select("COUNT(*)").From("deliveries").Where(conditions)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	listBuilder := qb.
		Select(deliveryColumns).
		From("deliveries").
		Where(conditions).
		OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	models, err := scanDeliveries(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	pageSize := int64(filter.PageSize)
	return &entities.DeliveryPage{
		Items:    ToDomainList(models),
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
		Pages:    (total + pageSize - 1) / pageSize,
	}, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}
	defer rows.Close()

	models, err := scanDeliveries(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}

	return ToDomainList(models), nil
}

// resolveUpdateMiss различает пропавшую запись и проигрыш CAS по updated_at.
func (r *Repository) resolveUpdateMiss(ctx context.Context, id string) error {
	_, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, delivery.ErrDeliveryNotFound) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}
	return delivery.ErrConcurrentUpdate
}

func filterConditions(filter entities.DeliveryFilter) sq.Eq {
	conditions := sq.Eq{}
	if filter.CustomerID != "" {
		conditions["customer_id"] = filter.CustomerID
	}
	if filter.DriverID != "" {
		conditions["driver_id"] = filter.DriverID
	}
	if filter.Status != "" {
		conditions["status"] = filter.Status.String()
	}
	if filter.Tier != "" {
		conditions["tier"] = filter.Tier.String()
	}
	return conditions
}

func scanDelivery(row pgx.Row, model *DeliveryDB) error {
	return row.Scan(
		&model.ID,
		&model.CustomerID,
		&model.DriverID,
		&model.PickupAddress,
		&model.DeliveryAddress,
		&model.CustomerName,
		&model.CustomerPhone,
		&model.CustomerEmail,
		&model.Description,
		&model.WeightKg,
		&model.Items,
		&model.Tier,
		&model.Status,
		&model.Price,
		&model.DistanceMeters,
		&model.DurationSeconds,
		&model.PickupDate,
		&model.EstimatedDeliveryDate,
		&model.ActualDeliveryDate,
		&model.PickupLat,
		&model.PickupLng,
		&model.DeliveryLat,
		&model.DeliveryLng,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
}

func scanDeliveries(rows pgx.Rows) ([]DeliveryDB, error) {
	models := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var model DeliveryDB
		if err := scanDelivery(rows, &model); err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models, nil
}
