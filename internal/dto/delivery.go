package dto

import (
	"time"

	"service/internal/entities"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DeliveryCreate struct {
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerEmail   string    `json:"customerEmail"`
	Description     string    `json:"description"`
	Weight          float64   `json:"weight"`
	Items           []string  `json:"items"`
	Type            string    `json:"type"`
	PickupDate      time.Time `json:"pickupDate"`
}

type Delivery struct {
	ID                    string     `json:"id"`
	CustomerID            string     `json:"customerId"`
	DriverID              string     `json:"driverId,omitempty"`
	PickupAddress         string     `json:"pickupAddress"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	CustomerName          string     `json:"customerName"`
	CustomerPhone         string     `json:"customerPhone"`
	CustomerEmail         string     `json:"customerEmail,omitempty"`
	Description           string     `json:"description,omitempty"`
	Weight                float64    `json:"weight"`
	Items                 []string   `json:"items"`
	Type                  string     `json:"type"`
	Status                string     `json:"status"`
	Price                 float64    `json:"price"`
	Distance              int64      `json:"distance"`
	Duration              int64      `json:"duration"`
	PickupDate            time.Time  `json:"pickupDate"`
	EstimatedDeliveryDate time.Time  `json:"estimatedDeliveryDate"`
	ActualDeliveryDate    *time.Time `json:"actualDeliveryDate,omitempty"`
	PickupLocation        *Location  `json:"pickupLocation,omitempty"`
	DeliveryLocation      *Location  `json:"deliveryLocation,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type DeliveryResponse struct {
	Delivery Delivery `json:"delivery"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type DeliveryListResponse struct {
	Deliveries []Delivery `json:"deliveries"`
	Pagination Pagination `json:"pagination"`
}

type StatusUpdate struct {
	Status   string    `json:"status"`
	Location *Location `json:"location,omitempty"`
}

type DriverAssign struct {
	DriverID string `json:"driverId"`
}

type Stats struct {
	Total               int64   `json:"total"`
	Pending             int64   `json:"pending"`
	Confirmed           int64   `json:"confirmed"`
	PickedUp            int64   `json:"pickedUp"`
	InTransit           int64   `json:"inTransit"`
	Delivered           int64   `json:"delivered"`
	Cancelled           int64   `json:"cancelled"`
	TotalRevenue        float64 `json:"totalRevenue"`
	AverageDeliveryTime float64 `json:"averageDeliveryTime"`
}

type StatsResponse struct {
	Stats Stats `json:"stats"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

func NewDelivery(e *entities.Delivery) Delivery {
	return Delivery{
		ID:                    e.ID,
		CustomerID:            e.CustomerID,
		DriverID:              e.DriverID,
		PickupAddress:         e.PickupAddress,
		DeliveryAddress:       e.DeliveryAddress,
		CustomerName:          e.CustomerName,
		CustomerPhone:         e.CustomerPhone,
		CustomerEmail:         e.CustomerEmail,
		Description:           e.Description,
		Weight:                e.WeightKg,
		Items:                 e.Items,
		Type:                  e.Tier.String(),
		Status:                e.Status.String(),
		Price:                 e.Price,
		Distance:              e.DistanceMeters,
		Duration:              e.DurationSeconds,
		PickupDate:            e.PickupDate,
		EstimatedDeliveryDate: e.EstimatedDeliveryDate,
		ActualDeliveryDate:    e.ActualDeliveryDate,
		PickupLocation:        newLocation(e.PickupLocation),
		DeliveryLocation:      newLocation(e.DeliveryLocation),
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func NewDeliveryList(items []entities.Delivery) []Delivery {
	result := make([]Delivery, 0, len(items))
	for i := range items {
		result = append(result, NewDelivery(&items[i]))
	}
	return result
}

func newLocation(l *entities.Location) *Location {
	if l == nil {
		return nil
	}
	return &Location{
		Lat: l.Lat,
		Lng: l.Lng,
	}
}
