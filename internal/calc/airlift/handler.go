package airlift

import (
	"bytes"
	"encoding/json"
	"net/http"
)

type Handler struct{}

type TotalRequest struct {
	Requirements []SupplyRequirement `json:"requirements"`
}

type TotalResponse struct {
	TotalTons float64 `json:"total_tons"`
}

type DefaultsResponse struct {
	Input
	HistoricalContext string         `json:"historical_context"`
	HistoricalNote    string         `json:"historical_note"`
	AircraftNotes     []AircraftNote `json:"aircraft_notes"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, Calculate(input))
}

func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	var req TotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := (Input{Requirements: req.Requirements}).Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, TotalResponse{TotalTons: Total(req.Requirements)})
}

func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, DefaultsResponse{
		Input:             DefaultInput(),
		HistoricalContext: HistoricalContext,
		HistoricalNote:    HistoricalNote,
		AircraftNotes:     AircraftNotes(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}
