package handlers

import (
	"errors"
	"log"
	"net/http"
	"train-dispatch-service/internal/adapters/scenario"
	"train-dispatch-service/internal/api/dto"
	"train-dispatch-service/internal/ports"
	"train-dispatch-service/internal/services"
)

type SimulationHandler struct {
	Network *services.TrackNetwork
	Catalog ports.ItemCatalog
	Sinks   []ports.TravelLogSink
}

// Run executes a plan of moves against the shared network and returns the travel log.
// A plan aborted by a capacity violation answers 422 with the records logged before it.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Plan) == 0 {
		writeError(w, r, http.StatusBadRequest, "plan must contain at least one step")
		return
	}
	if req.Persist && len(h.Sinks) == 0 {
		writeError(w, r, http.StatusBadRequest, "persistence is not configured")
		return
	}

	res, err := services.RunSimulation(r.Context(), scenario.BuildRequest(req.Trains, req.Plan), h.Network, h.Catalog)
	if err != nil {
		// RunSimulation only fails before moving anything, on a malformed request.
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	status := http.StatusOK
	switch {
	case res.Err == nil:
	case errors.Is(res.Err, services.ErrCapacityExceeded):
		status = http.StatusUnprocessableEntity
	default:
		log.Printf("run_id=%s simulation aborted: %v", res.RunID, res.Err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := toSimulationResponse(res)
	if req.Persist {
		if err := services.PublishRun(r.Context(), res, h.Sinks...); err != nil {
			log.Printf("run_id=%s persist failed: %v", res.RunID, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		out.Persisted = true
	}

	writeJSON(w, r, status, out)
}

func toSimulationResponse(res *services.SimulationResult) dto.SimulationResponse {
	out := dto.SimulationResponse{
		RunID:   res.RunID.String(),
		Records: make([]dto.MovementResponse, 0, len(res.Records)),
		Trains:  make([]dto.TrainStateResponse, 0, len(res.Trains)),
		Steps:   make([]dto.StepResponse, 0, len(res.Steps)),
	}

	for _, rec := range res.Records {
		out.Records = append(out.Records, dto.MovementResponse{
			TimeSeconds: rec.TimeSeconds,
			Train:       rec.Train,
			From:        string(rec.From),
			To:          string(rec.To),
			PickUps:     rec.PickUps,
			DropOffs:    rec.DropOffs,
			Line:        rec.String(),
		})
	}
	for _, t := range res.Trains {
		out.Trains = append(out.Trains, dto.TrainStateResponse{
			Name:               t.Name,
			Capacity:           t.Capacity,
			Current:            t.Current.String(),
			AvailableAtSeconds: t.AvailableAtSeconds,
		})
	}
	for _, s := range res.Steps {
		out.Steps = append(out.Steps, dto.StepResponse{
			Train:       s.Step.Train,
			Destination: s.Step.Destination,
			Outcome:     s.Result.Outcome.String(),
			Hops:        s.Result.Hops,
		})
	}

	if res.Err != nil {
		out.Error = res.Err.Error()
		at := res.AbortedAt
		out.AbortedAt = &at
	}
	return out
}
