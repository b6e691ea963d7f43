package entities

type DeliveryEventType string

const (
	EventDeliveryCreated   DeliveryEventType = "delivery_created"
	EventStatusChanged     DeliveryEventType = "status_changed"
	EventDriverAssigned    DeliveryEventType = "driver_assigned"
	EventDeliveryCancelled DeliveryEventType = "delivery_cancelled"
)

// DeliveryEvent - уведомление жизненного цикла доставки.
// Channel определяет адресата: delivery_requests, customer_{id}, driver_{id}.
type DeliveryEvent struct {
	Type     DeliveryEventType
	Channel  string
	Title    string
	Body     string
	Metadata map[string]string
}
