package models

import "strings"

type Mode string

const (
	Land Mode = "land"
	Sea  Mode = "sea"
	Air  Mode = "air"
)

// EmissionFactor is the CO2 output in kg per km travelled, per mode.
var EmissionFactor = map[Mode]float64{
	Sea:  0.01,
	Land: 0.1,
	Air:  0.7,
}

// ModeSpeed (km/h) and ModeCost ($/km) are the reference benchmarks used
// when synthesizing edge attributes from raw distances.
var ModeSpeed = map[Mode]float64{
	Air:  800,
	Sea:  35,
	Land: 70,
}

var ModeCost = map[Mode]float64{
	Air:  0.5,
	Sea:  0.1,
	Land: 0.25,
}

func AllModes() []Mode {
	return []Mode{Land, Sea, Air}
}

func ParseMode(input string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "land":
		return Land, true
	case "sea":
		return Sea, true
	case "air":
		return Air, true
	default:
		return "", false
	}
}
