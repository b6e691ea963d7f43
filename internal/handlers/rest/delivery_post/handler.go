package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/delivery"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createEntity := entities.DeliveryCreate{
		PickupAddress:   createDTO.PickupAddress,
		DeliveryAddress: createDTO.DeliveryAddress,
		CustomerName:    createDTO.CustomerName,
		CustomerPhone:   createDTO.CustomerPhone,
		CustomerEmail:   createDTO.CustomerEmail,
		Description:     createDTO.Description,
		WeightKg:        createDTO.Weight,
		Items:           createDTO.Items,
		Tier:            entities.DeliveryTierType(createDTO.Type),
		PickupDate:      createDTO.PickupDate,
	}

	created, err := h.service.CreateDelivery(r.Context(), actor, createEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidPickupAddress),
			errors.Is(err, delivery.ErrInvalidDeliveryAddress),
			errors.Is(err, delivery.ErrInvalidCustomerName),
			errors.Is(err, delivery.ErrInvalidCustomerPhone),
			errors.Is(err, delivery.ErrInvalidWeight),
			errors.Is(err, delivery.ErrInvalidItems),
			errors.Is(err, delivery.ErrInvalidTier),
			errors.Is(err, delivery.ErrInvalidPickupDate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrRouteUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryResponse{
		Delivery: dto.NewDelivery(created),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
