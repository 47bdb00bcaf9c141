package analysis

import "time"

// Device identifies a sensor device in the field campaign.
type Device string

const (
	// DeviceEXPE is the slow temperature logger, sampling at 1 Hz.
	DeviceEXPE Device = "EXPE"

	// DeviceSONIC is the ultrasonic anemometer, sampling at 2 Hz.
	DeviceSONIC Device = "SONIC"
)

// Variable identifies a measured quantity.
type Variable string

const (
	VariableTemperature    Variable = "t"
	VariableHorizontalWind Variable = "wind_h"
	VariableVerticalWind   Variable = "wind_z"
)

// Devices lists the campaign devices.
func Devices() []Device {
	return []Device{DeviceEXPE, DeviceSONIC}
}

// Variables returns the quantities a device records. EXPE only measures
// temperature; SONIC adds the two wind components.
func Variables(device Device) []Variable {
	switch device {
	case DeviceSONIC:
		return []Variable{VariableTemperature, VariableHorizontalWind, VariableVerticalWind}
	default:
		return []Variable{VariableTemperature}
	}
}

// Period describes one observation period (PUO) within a measurement day.
type Period struct {
	ID    string    `json:"id"`    // e.g. "PUO_03"
	Start time.Time `json:"start"` // First sample timestamp
	End   time.Time `json:"end"`   // Last sample timestamp
	Date  string    `json:"date"`  // Calendar date label, e.g. "11.07.2023"
	Day   int       `json:"day"`   // 1-based measurement day index
}

// Hours returns the period duration in hours, rounded to one decimal.
func (p Period) Hours() float64 {
	return float64(int(p.End.Sub(p.Start).Hours()*10+0.5)) / 10
}

// SeriesSource yields the measurement series for a (device, period, variable)
// triple. The CSV-backed implementation lives in the store package; tests use
// synthetic sources.
type SeriesSource interface {
	Series(device Device, periodID string, variable Variable) (*TimeSeries, error)
}
