package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"train-dispatch-service/internal/api/dto"
	"train-dispatch-service/internal/services"
)

// NetworkHandler exposes read-only views of the loaded track network and cargo catalog.
type NetworkHandler struct {
	Network *services.TrackNetwork
	Catalog *services.CargoLedger
}

func (h *NetworkHandler) Stations(w http.ResponseWriter, r *http.Request) {
	stations := h.Network.Stations()

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		conns := h.Network.Neighbors(s)
		out := dto.StationResponse{
			Name:        s.String(),
			Connections: make([]dto.ConnectionResponse, 0, len(conns)),
		}
		for _, c := range conns {
			out.Connections = append(out.Connections, dto.ConnectionResponse{
				Name:          c.Name,
				Destination:   c.Destination.String(),
				TravelSeconds: c.TravelSeconds,
			})
		}
		res.Stations = append(res.Stations, out)
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *NetworkHandler) Items(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.Items()

	res := dto.ListItemsResponse{
		Items: make([]dto.ItemResponse, 0, len(items)),
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.ItemResponse{
			Name:        it.Name,
			Weight:      it.Weight,
			Source:      it.Source.String(),
			Destination: it.Destination.String(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Path returns the shortest route between the "from" and "to" query parameters.
func (h *NetworkHandler) Path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	route, err := services.FindRoute(h.Network, from, to)
	if errors.Is(err, services.ErrUnknownStation) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("find route failed: from=%s to=%s err=%v", from, to, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.PathResponse{
		From:          route.From.String(),
		To:            route.To.String(),
		Found:         route.Found,
		Stations:      make([]string, 0, len(route.Stations)),
		TravelSeconds: route.TravelSeconds,
	}
	for _, s := range route.Stations {
		res.Stations = append(res.Stations, s.String())
	}

	writeJSON(w, r, http.StatusOK, res)
}
