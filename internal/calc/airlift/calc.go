package airlift

import "math"

// Total is the running requirement total shown next to the input table.
// Calculate uses it for step one so the two figures never disagree.
func Total(requirements []SupplyRequirement) float64 {
	total := 0.0
	for _, req := range requirements {
		total += req.Tons
	}
	return total
}

// Calculate estimates whether the fleet covers the daily requirements.
// Quotients with a zero divisor are reported as 0. Nothing is rounded.
func Calculate(in Input) Result {
	required := Total(in.Requirements)

	rows := make([]AircraftBreakdown, 0, len(in.Fleet))
	capacity := 0.0
	for _, ac := range in.Fleet {
		daily := ac.PayloadTons * float64(ac.Available)
		capacity += daily

		flights := 0.0
		if ac.PayloadTons > 0 {
			flights = required / ac.PayloadTons
		}
		needed := 0.0
		if daily > 0 {
			needed = required / daily * float64(ac.Available)
		}
		percent := 0.0
		if required > 0 {
			percent = daily / required * 100
		}

		rows = append(rows, AircraftBreakdown{
			Name:                 ac.Name,
			PayloadTons:          ac.PayloadTons,
			Available:            ac.Available,
			DailyCapacityTons:    daily,
			FlightsNeeded:        flights,
			AircraftNeeded:       needed,
			PercentOfRequirement: percent,
		})
	}

	reqs := make([]SupplyRequirement, len(in.Requirements))
	copy(reqs, in.Requirements)

	res := Result{
		TotalRequiredTons: required,
		TotalCapacityTons: capacity,
		BalanceTons:       capacity - required,
		Requirements:      reqs,
		Aircraft:          rows,
	}
	if res.BalanceTons < 0 {
		res.Status = StatusShortage
		res.ShortageTons = math.Abs(res.BalanceTons)
		if required > 0 {
			res.DeficitPercent = res.ShortageTons / required * 100
		}
	} else {
		res.Status = StatusSurplus
		res.SurplusTons = res.BalanceTons
	}
	return res
}
