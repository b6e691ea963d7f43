package maps

import (
	"errors"

	"service/internal/entities"
)

// Формат ответа distance-matrix API (совместим с Google Maps).
type routeResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int64 `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

var errNoRoute = errors.New("no route in distance matrix response")

func toDomain(resp *routeResponse) (*entities.Route, error) {
	if resp == nil || len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, errNoRoute
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "" && element.Status != "OK" {
		return nil, errNoRoute
	}

	return &entities.Route{
		DistanceMeters:  element.Distance.Value,
		DurationSeconds: element.Duration.Value,
	}, nil
}
