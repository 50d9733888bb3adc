package airlift

// Historical figures for the Stalingrad airlift, winter 1942-43.

func DefaultRequirements() []SupplyRequirement {
	return []SupplyRequirement{
		{Name: "Food", Tons: 300},
		{Name: "Ammunition", Tons: 250},
		{Name: "Fuel", Tons: 180},
		{Name: "Medical supplies", Tons: 50},
		{Name: "Other supplies", Tons: 20},
	}
}

func DefaultFleet() []AircraftType {
	return []AircraftType{
		{Name: "Ju 52", PayloadTons: 2.0, Available: 250},
		{Name: "He 111", PayloadTons: 1.5, Available: 165},
		{Name: "Ju 86", PayloadTons: 1.0, Available: 40},
		{Name: "Fw 200", PayloadTons: 2.5, Available: 15},
	}
}

// DefaultInput returns fresh slices on every call; callers may edit them.
func DefaultInput() Input {
	return Input{
		Requirements: DefaultRequirements(),
		Fleet:        DefaultFleet(),
	}
}

const HistoricalContext = `The 6th Army at Stalingrad (November 1942 - February 1943):
- Approximately 270,000 soldiers trapped
- Needed minimum of 800 tons of supplies daily
- Luftwaffe promised 300 tons daily but rarely delivered
- Airlift operation ultimately failed, leading to surrender
- Weather, Soviet air defenses, and inadequate aircraft numbers contributed to failure`

const HistoricalNote = `In reality, the Luftwaffe never achieved the promised 300 tons per day due to weather, ` +
	`Soviet air defenses, and operational difficulties. On most days, less than 100 tons reached the encircled forces.`

type AircraftNote struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Facts []string `json:"facts"`
}

func AircraftNotes() []AircraftNote {
	return []AircraftNote{
		{Name: "Ju 52", Title: `Ju 52 "Tante Ju" (Aunt Ju)`, Facts: []string{
			"Primary transport aircraft",
			"Reliable but slow (maximum speed 211 km/h)",
			"Three-engine design",
			"Poor performance in winter conditions",
		}},
		{Name: "He 111", Title: "He 111", Facts: []string{
			"Medium bomber converted for transport",
			"Faster but less reliable for cargo",
			"Less efficient for loading/unloading",
		}},
		{Name: "Ju 86", Title: "Ju 86", Facts: []string{
			"Older bomber aircraft",
			"Limited cargo capacity",
			"Used as supplement",
		}},
		{Name: "Fw 200", Title: "Fw 200 Condor", Facts: []string{
			"Long-range maritime patrol aircraft",
			"Larger payload but fewer available",
			"Not designed for short airfield operations",
		}},
	}
}
