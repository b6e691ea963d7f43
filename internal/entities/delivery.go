package entities

import "time"

type Delivery struct {
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
	Tier                  DeliveryTierType
	Status                DeliveryStatusType
	Price                 float64
	DistanceMeters        int64
	DurationSeconds       int64
	PickupDate            time.Time
	EstimatedDeliveryDate time.Time
	ActualDeliveryDate    *time.Time
	PickupLocation        *Location
	DeliveryLocation      *Location
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// DeliveryCreate - поля, которые задает клиент при создании,
// остальное (цена, ETA, статус, идентификатор) вычисляет сервис.
type DeliveryCreate struct {
	PickupAddress   string
	DeliveryAddress string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Description     string
	WeightKg        float64
	Items           []string
	Tier            DeliveryTierType
	PickupDate      time.Time
}

type DeliveryModify struct {
	DriverID           *string
	Status             *DeliveryStatusType
	ActualDeliveryDate *time.Time
	PickupLocation     *Location
	DeliveryLocation   *Location
	UpdatedAt          *time.Time
}

type Location struct {
	Lat float64
	Lng float64
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryConfirmed DeliveryStatusType = "confirmed"
	DeliveryPickedUp  DeliveryStatusType = "pickedUp"
	DeliveryInTransit DeliveryStatusType = "inTransit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

// IsTerminal сообщает, что запись достигла конечного статуса жизненного цикла.
func (t DeliveryStatusType) IsTerminal() bool {
	return t == DeliveryDelivered || t == DeliveryCancelled
}

type DeliveryTierType string

const (
	TierExpress  DeliveryTierType = "express"
	TierStandard DeliveryTierType = "standard"
	TierEconomy  DeliveryTierType = "economy"
)

func (t DeliveryTierType) String() string {
	return string(t)
}

type DeliveryFilter struct {
	CustomerID string
	DriverID   string
	Status     DeliveryStatusType
	Tier       DeliveryTierType
	Page       int
	PageSize   int
}

type DeliveryPage struct {
	Items    []Delivery
	Page     int
	PageSize int
	Total    int64
	Pages    int64
}

type DeliveryStats struct {
	Total               int64
	Pending             int64
	Confirmed           int64
	PickedUp            int64
	InTransit           int64
	Delivered           int64
	Cancelled           int64
	TotalRevenue        float64
	AverageDeliveryTime float64
}
