package delivery

import "time"

type DeliveryDB struct {
	ID                    string
	CustomerID            string
	DriverID              string
	PickupAddress         string
	DeliveryAddress       string
	CustomerName          string
	CustomerPhone         string
	CustomerEmail         string
	Description           string
	WeightKg              float64
	Items                 []string
	Tier                  string
	Status                string
	Price                 float64
	DistanceMeters        int64
	DurationSeconds       int64
	PickupDate            time.Time
	EstimatedDeliveryDate time.Time
	ActualDeliveryDate    *time.Time
	PickupLat             *float64
	PickupLng             *float64
	DeliveryLat           *float64
	DeliveryLng           *float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
