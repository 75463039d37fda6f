package dto

import "train-dispatch-service/internal/adapters/scenario"

type SimulationRequest struct {
	Trains []scenario.TrainSeed `json:"trains"`
	Plan   []scenario.StepSeed  `json:"plan"`
	// Persist stores the travel log in every configured sink.
	Persist bool `json:"persist"`
}

type MovementResponse struct {
	TimeSeconds int      `json:"time_seconds"`
	Train       string   `json:"train"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	PickUps     []string `json:"pick_ups"`
	DropOffs    []string `json:"drop_offs"`
	Line        string   `json:"line"`
}

type TrainStateResponse struct {
	Name               string `json:"name"`
	Capacity           int    `json:"capacity"`
	Current            string `json:"current"`
	AvailableAtSeconds int    `json:"available_at_seconds"`
}

type StepResponse struct {
	Train       string `json:"train"`
	Destination string `json:"destination"`
	Outcome     string `json:"outcome"`
	Hops        int    `json:"hops"`
}

type SimulationResponse struct {
	RunID     string               `json:"run_id"`
	Records   []MovementResponse   `json:"records"`
	Trains    []TrainStateResponse `json:"trains"`
	Steps     []StepResponse       `json:"steps"`
	Persisted bool                 `json:"persisted"`
	Error     string               `json:"error,omitempty"`
	AbortedAt *int                 `json:"aborted_at,omitempty"`
}
