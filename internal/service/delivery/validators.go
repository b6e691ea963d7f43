package delivery

import (
	"strings"
	"time"

	"service/internal/entities"
)

func isValidDeliveryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidDriverID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	return strings.TrimSpace(phone) != ""
}

func isValidWeight(weightKg float64) bool {
	return weightKg > 0
}

func isValidItems(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return false
		}
	}
	return true
}

func isValidTier(tier entities.DeliveryTierType) bool {
	switch tier {
	case entities.TierExpress, entities.TierStandard, entities.TierEconomy:
		return true
	default:
		return false
	}
}

func isValidPickupDate(pickupDate time.Time) bool {
	return !pickupDate.IsZero()
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	return status == entities.DeliveryPending || isValidTargetStatus(status)
}

// isValidTargetStatus - pending назначается только при создании,
// целью обновления быть не может.
func isValidTargetStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryConfirmed,
		entities.DeliveryPickedUp,
		entities.DeliveryInTransit,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}

// isAllowedDriverTransition - водитель двигает доставку строго по цепочке
// pending -> confirmed -> pickedUp -> inTransit -> delivered,
// отмена доступна только до забора посылки.
func isAllowedDriverTransition(from, to entities.DeliveryStatusType) bool {
	if to == entities.DeliveryCancelled {
		return from == entities.DeliveryPending || from == entities.DeliveryConfirmed
	}

	switch from {
	case entities.DeliveryPending:
		return to == entities.DeliveryConfirmed
	case entities.DeliveryConfirmed:
		return to == entities.DeliveryPickedUp
	case entities.DeliveryPickedUp:
		return to == entities.DeliveryInTransit
	case entities.DeliveryInTransit:
		return to == entities.DeliveryDelivered
	default:
		return false
	}
}
