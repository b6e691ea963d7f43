package delivery

import "service/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:                    d.ID,
		CustomerID:            d.CustomerID,
		DriverID:              d.DriverID,
		PickupAddress:         d.PickupAddress,
		DeliveryAddress:       d.DeliveryAddress,
		CustomerName:          d.CustomerName,
		CustomerPhone:         d.CustomerPhone,
		CustomerEmail:         d.CustomerEmail,
		Description:           d.Description,
		WeightKg:              d.WeightKg,
		Items:                 d.Items,
		Tier:                  entities.DeliveryTierType(d.Tier),
		Status:                entities.DeliveryStatusType(d.Status),
		Price:                 d.Price,
		DistanceMeters:        d.DistanceMeters,
		DurationSeconds:       d.DurationSeconds,
		PickupDate:            d.PickupDate,
		EstimatedDeliveryDate: d.EstimatedDeliveryDate,
		ActualDeliveryDate:    d.ActualDeliveryDate,
		PickupLocation:        toLocation(d.PickupLat, d.PickupLng),
		DeliveryLocation:      toLocation(d.DeliveryLat, d.DeliveryLng),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func ToDomainList(models []DeliveryDB) []entities.Delivery {
	result := make([]entities.Delivery, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}
	model := &DeliveryDB{
		ID:                    d.ID,
		CustomerID:            d.CustomerID,
		DriverID:              d.DriverID,
		PickupAddress:         d.PickupAddress,
		DeliveryAddress:       d.DeliveryAddress,
		CustomerName:          d.CustomerName,
		CustomerPhone:         d.CustomerPhone,
		CustomerEmail:         d.CustomerEmail,
		Description:           d.Description,
		WeightKg:              d.WeightKg,
		Items:                 d.Items,
		Tier:                  d.Tier.String(),
		Status:                d.Status.String(),
		Price:                 d.Price,
		DistanceMeters:        d.DistanceMeters,
		DurationSeconds:       d.DurationSeconds,
		PickupDate:            d.PickupDate,
		EstimatedDeliveryDate: d.EstimatedDeliveryDate,
		ActualDeliveryDate:    d.ActualDeliveryDate,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}

	if d.PickupLocation != nil {
		model.PickupLat = &d.PickupLocation.Lat
		model.PickupLng = &d.PickupLocation.Lng
	}
	if d.DeliveryLocation != nil {
		model.DeliveryLat = &d.DeliveryLocation.Lat
		model.DeliveryLng = &d.DeliveryLocation.Lng
	}

	return model
}

func toLocation(lat, lng *float64) *entities.Location {
	if lat == nil || lng == nil {
		return nil
	}
	return &entities.Location{
		Lat: *lat,
		Lng: *lng,
	}
}
