package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := h.service.ListDeliveries(r.Context(), actor, filter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidStatus),
			errors.Is(err, delivery.ErrInvalidTier):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryListResponse{
		Deliveries: dto.NewDeliveryList(page.Items),
		Pagination: dto.Pagination{
			Page:  page.Page,
			Limit: page.PageSize,
			Total: page.Total,
			Pages: page.Pages,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.DeliveryFilter, error) {
	query := r.URL.Query()

	filter := entities.DeliveryFilter{
		Status: entities.DeliveryStatusType(query.Get("status")),
		Tier:   entities.DeliveryTierType(query.Get("type")),
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return entities.DeliveryFilter{}, err
		}
		filter.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return entities.DeliveryFilter{}, err
		}
		filter.PageSize = limit
	}

	return filter, nil
}
