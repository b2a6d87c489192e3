// Package aqi holds the pure air-quality rule tables: the category mapper,
// the health recommendation tables, and the piecewise AQI computation used
// when a provider payload lacks a numeric index.
package aqi

// Category labels in increasing severity.
const (
	CategoryGood          = "Good"
	CategoryModerate      = "Moderate"
	CategorySensitive     = "Unhealthy for Sensitive Groups"
	CategoryUnhealthy     = "Unhealthy"
	CategoryVeryUnhealthy = "Very Unhealthy"
	CategoryHazardous     = "Hazardous"
)

// Breakpoints delimiting the six category bands.
const (
	BreakpointGood          = 50
	BreakpointModerate      = 100
	BreakpointSensitive     = 150
	BreakpointUnhealthy     = 200
	BreakpointVeryUnhealthy = 300
)

// Category maps a numeric AQI value to its category label and display color.
// Total over all inputs: anything above 300 (or any absurd value that falls
// through every upper-bound test) maps to Hazardous.
func Category(value float64) (label, color string) {
	switch {
	case value <= BreakpointGood:
		return CategoryGood, "#4CAF50" // Green
	case value <= BreakpointModerate:
		return CategoryModerate, "#FFEB3B" // Yellow
	case value <= BreakpointSensitive:
		return CategorySensitive, "#FF9800" // Orange
	case value <= BreakpointUnhealthy:
		return CategoryUnhealthy, "#F44336" // Red
	case value <= BreakpointVeryUnhealthy:
		return CategoryVeryUnhealthy, "#9C27B0" // Purple
	default:
		return CategoryHazardous, "#800000" // Maroon
	}
}
