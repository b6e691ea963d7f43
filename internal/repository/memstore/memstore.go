package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"service/internal/entities"
	"service/internal/service/delivery"
)

// Store - потокобезопасное in-memory хранилище доставок.
// Повторяет контракт postgres-адаптера, включая CAS по updated_at,
// используется в dev-режиме и в тестах сервисов.
type Store struct {
	mu         sync.RWMutex
	deliveries map[string]entities.Delivery
}

func New() *Store {
	return &Store{
		deliveries: make(map[string]entities.Delivery),
	}
}

func (s *Store) Create(_ context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.deliveries[deliveryEntity.ID]; exists {
		return nil, fmt.Errorf("delivery id %s already exists", deliveryEntity.ID)
	}

	s.deliveries[deliveryEntity.ID] = cloneDelivery(deliveryEntity)

	created := cloneDelivery(deliveryEntity)
	return &created, nil
}

func (s *Store) GetByID(_ context.Context, id string) (*entities.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, exists := s.deliveries[id]
	if !exists {
		return nil, delivery.ErrDeliveryNotFound
	}

	result := cloneDelivery(stored)
	return &result, nil
}

func (s *Store) Update(_ context.Context, id string, expectedUpdatedAt time.Time, modify entities.DeliveryModify) (*entities.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.deliveries[id]
	if !exists {
		return nil, delivery.ErrDeliveryNotFound
	}

	if !stored.UpdatedAt.Equal(expectedUpdatedAt) {
		return nil, delivery.ErrConcurrentUpdate
	}

	if modify.DriverID != nil {
		stored.DriverID = *modify.DriverID
	}
	if modify.Status != nil {
		stored.Status = *modify.Status
	}
	if modify.ActualDeliveryDate != nil {
		actual := *modify.ActualDeliveryDate
		stored.ActualDeliveryDate = &actual
	}
	if modify.PickupLocation != nil {
		location := *modify.PickupLocation
		stored.PickupLocation = &location
	}
	if modify.DeliveryLocation != nil {
		location := *modify.DeliveryLocation
		stored.DeliveryLocation = &location
	}
	if modify.UpdatedAt != nil {
		stored.UpdatedAt = *modify.UpdatedAt
	}

	s.deliveries[id] = cloneDelivery(stored)

	result := cloneDelivery(stored)
	return &result, nil
}

func (s *Store) List(_ context.Context, filter entities.DeliveryFilter) (*entities.DeliveryPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Delivery, 0, len(s.deliveries))
	for _, stored := range s.deliveries {
		if matchesFilter(stored, filter) {
			matched = append(matched, cloneDelivery(stored))
		}
	}

	// свежие записи первыми, ID для стабильного порядка при равном времени
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	pageSize := int64(filter.PageSize)

	start := (filter.Page - 1) * filter.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return &entities.DeliveryPage{
		Items:    matched[start:end],
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
		Pages:    (total + pageSize - 1) / pageSize,
	}, nil
}

func (s *Store) GetAll(_ context.Context) ([]entities.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Delivery, 0, len(s.deliveries))
	for _, stored := range s.deliveries {
		result = append(result, cloneDelivery(stored))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func matchesFilter(d entities.Delivery, filter entities.DeliveryFilter) bool {
	if filter.CustomerID != "" && d.CustomerID != filter.CustomerID {
		return false
	}
	if filter.DriverID != "" && d.DriverID != filter.DriverID {
		return false
	}
	if filter.Status != "" && d.Status != filter.Status {
		return false
	}
	if filter.Tier != "" && d.Tier != filter.Tier {
		return false
	}
	return true
}

func cloneDelivery(d entities.Delivery) entities.Delivery {
	clone := d

	clone.Items = append([]string(nil), d.Items...)

	if d.ActualDeliveryDate != nil {
		actual := *d.ActualDeliveryDate
		clone.ActualDeliveryDate = &actual
	}
	if d.PickupLocation != nil {
		location := *d.PickupLocation
		clone.PickupLocation = &location
	}
	if d.DeliveryLocation != nil {
		location := *d.DeliveryLocation
		clone.DeliveryLocation = &location
	}

	return clone
}
