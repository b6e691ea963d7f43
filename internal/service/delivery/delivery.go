package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
)

const (
	defaultPage     = 1
	defaultPageSize = 10

	requestsChannel       = "delivery_requests"
	customerChannelPrefix = "customer_"
	driverChannelPrefix   = "driver_"
)

type Delivery struct {
	repository Repository
	routes     RouteGateway
	notifier   Notifier
	messages   MessageFactory
	txManager  TxManager
}

func New(
	repository Repository,
	routes RouteGateway,
	notifier Notifier,
	messages MessageFactory,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository: repository,
		routes:     routes,
		notifier:   notifier,
		messages:   messages,
		txManager:  txManager,
	}
}

func (d *Delivery) CreateDelivery(ctx context.Context, actor entities.Actor, create entities.DeliveryCreate) (*entities.Delivery, error) {
	if actor.Role != entities.RoleCustomer {
		return nil, ErrForbidden
	}

	if err := validateCreate(create); err != nil {
		return nil, err
	}

	route, err := d.routes.Route(ctx, create.PickupAddress, create.DeliveryAddress)
	if err != nil {
		return nil, fmt.Errorf("resolve route: %w: %w", ErrRouteUnavailable, err)
	}

	now := time.Now().UTC()
	deliveryEntity := entities.Delivery{
		ID:                    uuid.NewString(),
		CustomerID:            actor.ID,
		PickupAddress:         create.PickupAddress,
		DeliveryAddress:       create.DeliveryAddress,
		CustomerName:          create.CustomerName,
		CustomerPhone:         create.CustomerPhone,
		CustomerEmail:         create.CustomerEmail,
		Description:           create.Description,
		WeightKg:              create.WeightKg,
		Items:                 create.Items,
		Tier:                  create.Tier,
		Status:                entities.DeliveryPending,
		Price:                 calculatePrice(route.DistanceMeters, create.WeightKg, create.Tier),
		DistanceMeters:        route.DistanceMeters,
		DurationSeconds:       route.DurationSeconds,
		PickupDate:            create.PickupDate,
		EstimatedDeliveryDate: calculateEstimatedDelivery(create.PickupDate, route.DurationSeconds),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := d.repository.Create(ctx, deliveryEntity)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	d.notifier.Notify(entities.DeliveryEvent{
		Type:    entities.EventDeliveryCreated,
		Channel: requestsChannel,
		Title:   "New Delivery Request",
		Body:    fmt.Sprintf("New delivery request from %s to %s", created.PickupAddress, created.DeliveryAddress),
		Metadata: map[string]string{
			"deliveryId": created.ID,
			"tier":       created.Tier.String(),
		},
	})

	return created, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, actor entities.Actor, id string) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if !canView(actor, deliveryEntity) {
		return nil, ErrForbidden
	}

	return deliveryEntity, nil
}

func (d *Delivery) ListDeliveries(ctx context.Context, actor entities.Actor, filter entities.DeliveryFilter) (*entities.DeliveryPage, error) {
	// область видимости задает сервис, фильтры клиента не могут ее расширить
	switch actor.Role {
	case entities.RoleCustomer:
		filter.CustomerID = actor.ID
		filter.DriverID = ""
	case entities.RoleDriver:
		filter.DriverID = actor.ID
		filter.CustomerID = ""
	case entities.RoleAdmin:
	default:
		return nil, ErrForbidden
	}

	if filter.Status != "" && !isValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.Tier != "" && !isValidTier(filter.Tier) {
		return nil, ErrInvalidTier
	}

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}

	page, err := d.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return page, nil
}

func (d *Delivery) UpdateDeliveryStatus(
	ctx context.Context,
	actor entities.Actor,
	id string,
	status entities.DeliveryStatusType,
	location *entities.Location,
) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidTargetStatus(status) {
		return nil, ErrInvalidStatus
	}
	if actor.Role != entities.RoleDriver && actor.Role != entities.RoleAdmin {
		return nil, ErrForbidden
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if actor.Role == entities.RoleDriver && current.DriverID != actor.ID {
			return ErrForbidden
		}

		if current.Status.IsTerminal() {
			return ErrInvalidTransition
		}
		if actor.Role == entities.RoleDriver && !isAllowedDriverTransition(current.Status, status) {
			return ErrInvalidTransition
		}

		now := nextUpdateTime(current.UpdatedAt)
		modify := entities.DeliveryModify{
			Status:    &status,
			UpdatedAt: &now,
		}

		switch status {
		case entities.DeliveryPickedUp:
			modify.PickupLocation = location
		case entities.DeliveryDelivered:
			modify.DeliveryLocation = location
			modify.ActualDeliveryDate = &now
		}

		updated, err = d.repository.Update(ctx, id, current.UpdatedAt, modify)
		if err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	title, body := d.messages.StatusMessage(status)
	d.notifier.Notify(entities.DeliveryEvent{
		Type:    entities.EventStatusChanged,
		Channel: customerChannelPrefix + updated.CustomerID,
		Title:   title,
		Body:    body,
		Metadata: map[string]string{
			"deliveryId": updated.ID,
			"status":     updated.Status.String(),
		},
	})

	return updated, nil
}

func (d *Delivery) AssignDriver(ctx context.Context, actor entities.Actor, id, driverID string) (*entities.Delivery, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrForbidden
	}
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		// назначение всегда переводит запись в confirmed, независимо от
		// текущего статуса: админ может переназначить и вернуть в работу
		confirmed := entities.DeliveryConfirmed
		now := nextUpdateTime(current.UpdatedAt)
		modify := entities.DeliveryModify{
			DriverID:  &driverID,
			Status:    &confirmed,
			UpdatedAt: &now,
		}

		updated, err = d.repository.Update(ctx, id, current.UpdatedAt, modify)
		if err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notifier.Notify(entities.DeliveryEvent{
		Type:    entities.EventDriverAssigned,
		Channel: driverChannelPrefix + driverID,
		Title:   "New Delivery Assignment",
		Body:    fmt.Sprintf("You have a new %s delivery to %s", updated.Tier, updated.DeliveryAddress),
		Metadata: map[string]string{
			"deliveryId": updated.ID,
		},
	})

	return updated, nil
}

func (d *Delivery) CancelDelivery(ctx context.Context, actor entities.Actor, id string) (*entities.Delivery, error) {
	if actor.Role != entities.RoleCustomer {
		return nil, ErrForbidden
	}
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if current.CustomerID != actor.ID {
			return ErrForbidden
		}

		switch current.Status {
		case entities.DeliveryPickedUp, entities.DeliveryInTransit, entities.DeliveryDelivered:
			return ErrInvalidTransition
		}

		cancelled := entities.DeliveryCancelled
		now := nextUpdateTime(current.UpdatedAt)
		modify := entities.DeliveryModify{
			Status:    &cancelled,
			UpdatedAt: &now,
		}

		updated, err = d.repository.Update(ctx, id, current.UpdatedAt, modify)
		if err != nil {
			return fmt.Errorf("cancel delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.DriverID != "" {
		d.notifier.Notify(entities.DeliveryEvent{
			Type:    entities.EventDeliveryCancelled,
			Channel: driverChannelPrefix + updated.DriverID,
			Title:   "Delivery Cancelled",
			Body:    fmt.Sprintf("Delivery to %s has been cancelled by the customer", updated.DeliveryAddress),
			Metadata: map[string]string{
				"deliveryId": updated.ID,
			},
		})
	}

	return updated, nil
}

func validateCreate(create entities.DeliveryCreate) error {
	if create.PickupAddress == "" ||
		create.DeliveryAddress == "" ||
		create.CustomerName == "" ||
		create.CustomerPhone == "" ||
		len(create.Items) == 0 {
		return ErrMissingRequiredFields
	}

	if !isValidAddress(create.PickupAddress) {
		return ErrInvalidPickupAddress
	}
	if !isValidAddress(create.DeliveryAddress) {
		return ErrInvalidDeliveryAddress
	}
	if !isValidName(create.CustomerName) {
		return ErrInvalidCustomerName
	}
	if !isValidPhone(create.CustomerPhone) {
		return ErrInvalidCustomerPhone
	}
	if !isValidWeight(create.WeightKg) {
		return ErrInvalidWeight
	}
	if !isValidItems(create.Items) {
		return ErrInvalidItems
	}
	if !isValidTier(create.Tier) {
		return ErrInvalidTier
	}
	if !isValidPickupDate(create.PickupDate) {
		return ErrInvalidPickupDate
	}
	return nil
}

func canView(actor entities.Actor, deliveryEntity *entities.Delivery) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleCustomer:
		return deliveryEntity.CustomerID == actor.ID
	case entities.RoleDriver:
		return deliveryEntity.DriverID == actor.ID
	default:
		return false
	}
}

// nextUpdateTime гарантирует строгий рост updated_at даже при грубом
// разрешении системных часов.
func nextUpdateTime(previous time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(previous) {
		return previous.Add(time.Microsecond)
	}
	return now
}
