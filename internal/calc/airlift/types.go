package airlift

type SupplyRequirement struct {
	Name string  `json:"name" yaml:"name"`
	Tons float64 `json:"tons" yaml:"tons"`
}

type AircraftType struct {
	Name        string  `json:"name" yaml:"name"`
	PayloadTons float64 `json:"payload_tons" yaml:"payload_tons"`
	Available   int     `json:"available" yaml:"available"`
}

// Input holds both editable tables. Slice order is display order.
type Input struct {
	Requirements []SupplyRequirement `json:"requirements" yaml:"requirements"`
	Fleet        []AircraftType      `json:"fleet" yaml:"fleet"`
}

type Status string

const (
	StatusShortage Status = "SHORTAGE"
	StatusSurplus  Status = "SURPLUS"
)

type AircraftBreakdown struct {
	Name                 string  `json:"name"`
	PayloadTons          float64 `json:"payload_tons"`
	Available            int     `json:"available"`
	DailyCapacityTons    float64 `json:"daily_capacity_tons"`
	FlightsNeeded        float64 `json:"flights_needed"`
	AircraftNeeded       float64 `json:"aircraft_needed"`
	PercentOfRequirement float64 `json:"percent_of_requirement"`
}

type Result struct {
	TotalRequiredTons float64             `json:"total_required_tons"`
	TotalCapacityTons float64             `json:"total_capacity_tons"`
	BalanceTons       float64             `json:"balance_tons"`
	Status            Status              `json:"status"`
	ShortageTons      float64             `json:"shortage_tons"`
	SurplusTons       float64             `json:"surplus_tons"`
	DeficitPercent    float64             `json:"deficit_percent"`
	Requirements      []SupplyRequirement `json:"requirements"`
	Aircraft          []AircraftBreakdown `json:"aircraft"`
}

func (r Result) Shortage() bool {
	return r.Status == StatusShortage
}
