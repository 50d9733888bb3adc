package airlift

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// FieldError points at the offending table entry, e.g. "fleet[2].payload_tons".
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// Validate performs the checks the input side owes Calculate. Calculate itself
// never fails.
func (in Input) Validate() error {
	seen := make(map[string]struct{}, len(in.Requirements))
	required := 0.0
	for i, req := range in.Requirements {
		field := fmt.Sprintf("requirements[%d]", i)
		if err := checkName(field, req.Name, seen); err != nil {
			return err
		}
		if err := checkAmount(field+".tons", req.Tons); err != nil {
			return err
		}
		required += req.Tons
		if math.IsInf(required, 0) {
			return &FieldError{Field: field + ".tons", Reason: "total overflows"}
		}
	}

	seen = make(map[string]struct{}, len(in.Fleet))
	capacity := 0.0
	for i, ac := range in.Fleet {
		field := fmt.Sprintf("fleet[%d]", i)
		if err := checkName(field, ac.Name, seen); err != nil {
			return err
		}
		if err := checkAmount(field+".payload_tons", ac.PayloadTons); err != nil {
			return err
		}
		if ac.Available < 0 {
			return &FieldError{Field: field + ".available", Reason: "must not be negative"}
		}
		daily := ac.PayloadTons * float64(ac.Available)
		capacity += daily
		if math.IsInf(daily, 0) || math.IsInf(capacity, 0) {
			return &FieldError{Field: field + ".available", Reason: "total overflows"}
		}
	}

	// Sums and products are finite at this point, but a tiny payload or
	// requirement can still push a quotient out of range.
	res := Calculate(in)
	for i, row := range res.Aircraft {
		if !finite(row.FlightsNeeded, row.AircraftNeeded, row.PercentOfRequirement) {
			return &FieldError{Field: fmt.Sprintf("fleet[%d].payload_tons", i), Reason: "derived figures overflow"}
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func checkName(field, name string, seen map[string]struct{}) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &FieldError{Field: field + ".name", Reason: "must not be empty"}
	}
	if _, dup := seen[name]; dup {
		return &FieldError{Field: field + ".name", Reason: fmt.Sprintf("duplicate name %q", name)}
	}
	seen[name] = struct{}{}
	return nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FieldError{Field: field, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &FieldError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
