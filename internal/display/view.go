package display

import (
	"strconv"
	"strings"
	"windvane/internal/models"
)

const (
	WindSpeed     = "ws"
	WindDirection = "wd"
)

// View is everything the wind screen shows for one outcome and heading
type View struct {
	Loading       bool    `json:"loading"`
	Error         string  `json:"error,omitempty"`
	ValidTime     string  `json:"valid_time,omitempty"`
	SpeedText     string  `json:"speed"`
	DirectionText string  `json:"direction"`
	Heading       float64 `json:"heading"`
	ArrowRotation float64 `json:"arrow_rotation"`
	Hue           float64 `json:"hue"`
	Color         string  `json:"color"`
}

// Derive builds the view. A missing wind direction counts as 0 for the arrow
// and missing parameters show as empty text.
func Derive(outcome models.Outcome, heading float64) View {
	v := View{Heading: heading}

	switch outcome.State {
	case models.Loading:
		v.Loading = true
		return v
	case models.Failure:
		v.Error = outcome.Reason
		return v
	}

	ws := models.GetParameterValue(outcome.Slice, WindSpeed)
	wd := models.GetParameterValue(outcome.Slice, WindDirection)
	direction, _ := wd.First()

	if outcome.Slice != nil {
		v.ValidTime = outcome.Slice.ValidTime
	}
	v.SpeedText = ValueText(ws)
	v.DirectionText = ValueText(wd)
	v.ArrowRotation = ArrowRotation(direction, heading)
	v.Hue = Hue(v.ArrowRotation)
	v.Color = Color(v.ArrowRotation)
	return v
}

// ValueText renders "<first value> <unit>", leaving out whatever is missing
func ValueText(p *models.Parameter) string {
	if p == nil {
		return ""
	}

	var parts []string
	if v, ok := p.First(); ok {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	if p.Unit != "" {
		parts = append(parts, p.Unit)
	}
	return strings.Join(parts, " ")
}

// Lines renders the view as text lines
func (v View) Lines(labels *Labels) []string {
	if v.Error != "" {
		return []string{labels.Error(v.Error)}
	}
	if v.Loading {
		return []string{labels.Loading()}
	}

	rotation := strconv.FormatFloat(v.ArrowRotation, 'f', -1, 64)
	return []string{
		labels.Arrow(Glyph(v.ArrowRotation), rotation, v.Color),
		labels.Speed(v.SpeedText),
		labels.Direction(v.DirectionText),
	}
}
