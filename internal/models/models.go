package models

import "fmt"

// Forecast represents a point forecast document from the SMHI pmp3g API
type Forecast struct {
	ApprovedTime  string      `json:"approvedTime"`
	ReferenceTime string      `json:"referenceTime"`
	Geometry      Geometry    `json:"geometry"`
	TimeSeries    []TimeSlice `json:"timeSeries"`
}

type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// TimeSlice holds every forecast parameter valid at one point in time
type TimeSlice struct {
	ValidTime  string      `json:"validTime"`
	Parameters []Parameter `json:"parameters"`
}

// Parameter is a single named forecast value, e.g. "ws" (wind speed) or "wd" (wind direction)
type Parameter struct {
	Name      string    `json:"name"`
	LevelType string    `json:"levelType,omitempty"`
	Level     int       `json:"level,omitempty"`
	Unit      string    `json:"unit"`
	Values    []float64 `json:"values"`
}

// Current returns the first time slice of the forecast. The series is ordered
// by the API and the first entry is taken as "now" without looking at validTime.
func (f *Forecast) Current() (*TimeSlice, error) {
	if f == nil || len(f.TimeSeries) == 0 {
		return nil, fmt.Errorf("forecast has no time series")
	}
	slice := f.TimeSeries[0]
	return &slice, nil
}

// GetParameterValue returns the first parameter in slice with the given name,
// or nil when the slice is nil or has no such parameter.
func GetParameterValue(slice *TimeSlice, name string) *Parameter {
	if slice == nil {
		return nil
	}
	for i := range slice.Parameters {
		if slice.Parameters[i].Name == name {
			return &slice.Parameters[i]
		}
	}
	return nil
}

// First returns the first value of the parameter
func (p *Parameter) First() (float64, bool) {
	if p == nil || len(p.Values) == 0 {
		return 0, false
	}
	return p.Values[0], true
}
