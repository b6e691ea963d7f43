package delivery

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidDeliveryID      = errors.New("invalid delivery id")
	ErrInvalidDriverID        = errors.New("invalid driver id")
	ErrInvalidPickupAddress   = errors.New("invalid pickup address")
	ErrInvalidDeliveryAddress = errors.New("invalid delivery address")
	ErrInvalidCustomerName    = errors.New("invalid customer name")
	ErrInvalidCustomerPhone   = errors.New("invalid customer phone")
	ErrInvalidWeight          = errors.New("invalid weight")
	ErrInvalidItems           = errors.New("invalid items")
	ErrInvalidTier            = errors.New("invalid delivery tier")
	ErrInvalidStatus          = errors.New("invalid delivery status")
	ErrInvalidPickupDate      = errors.New("invalid pickup date")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrForbidden         = errors.New("operation forbidden for actor")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConcurrentUpdate  = errors.New("delivery modified concurrently")
	ErrRouteUnavailable  = errors.New("route service unavailable")
)
