package stats_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/stats"
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

	overview, err := h.service.Overview(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StatsResponse{
		Stats: dto.Stats{
			Total:               overview.Total,
			Pending:             overview.Pending,
			Confirmed:           overview.Confirmed,
			PickedUp:            overview.PickedUp,
			InTransit:           overview.InTransit,
			Delivered:           overview.Delivered,
			Cancelled:           overview.Cancelled,
			TotalRevenue:        overview.TotalRevenue,
			AverageDeliveryTime: overview.AverageDeliveryTime,
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
