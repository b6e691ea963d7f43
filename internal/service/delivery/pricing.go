package delivery

import (
	"math"
	"time"

	"service/internal/entities"
)

const (
	pricePerKm = 2.0
	pricePerKg = 0.5

	expressMultiplier  = 1.5
	standardMultiplier = 1.0
	economyMultiplier  = 0.8

	// запас к ETA поверх расчетного времени маршрута
	deliveryTimeBuffer = 2 * time.Hour
)

func calculatePrice(distanceMeters int64, weightKg float64, tier entities.DeliveryTierType) float64 {
	distancePrice := float64(distanceMeters) / 1000 * pricePerKm
	total := distancePrice*tierMultiplier(tier) + weightKg*pricePerKg
	return round2(total)
}

func tierMultiplier(tier entities.DeliveryTierType) float64 {
	switch tier {
	case entities.TierExpress:
		return expressMultiplier
	case entities.TierEconomy:
		return economyMultiplier
	default:
		return standardMultiplier
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func calculateEstimatedDelivery(pickupDate time.Time, durationSeconds int64) time.Time {
	return pickupDate.
		Add(time.Duration(durationSeconds) * time.Second).
		Add(deliveryTimeBuffer)
}
