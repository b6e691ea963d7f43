package status_message

import "service/internal/entities"

// MessageFactory собирает текст push-уведомления по статусу доставки.
type MessageFactory struct{}

func New() *MessageFactory {
	return &MessageFactory{}
}

func (f *MessageFactory) StatusMessage(status entities.DeliveryStatusType) (string, string) {
	const title = "Delivery Update"

	switch status {
	case entities.DeliveryConfirmed:
		return title, "Your delivery has been confirmed"
	case entities.DeliveryPickedUp:
		return title, "Your package has been picked up"
	case entities.DeliveryInTransit:
		return title, "Your package is on the way"
	case entities.DeliveryDelivered:
		return title, "Your package has been delivered"
	case entities.DeliveryCancelled:
		return title, "Your delivery has been cancelled"
	default:
		return title, "Delivery status updated"
	}
}
