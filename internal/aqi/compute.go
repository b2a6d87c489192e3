package aqi

// Compute derives an AQI value from raw pollutant concentrations keyed by
// provider parameter names (pm25, pm10, no2, o3). It is a simplified
// piecewise-linear lookup used only when the provider payload carries no
// numeric index of its own. PM2.5 wins when present, then PM10, then crude
// NO2/O3 scalings, then a default of 50 for incomplete data.
func Compute(pollutants map[string]float64) int {
	if pm25, ok := pollutants["pm25"]; ok {
		switch {
		case pm25 <= 12:
			return int(50 * (pm25 / 12))
		case pm25 <= 35.4:
			return int(50 + 50*(pm25-12)/23.4)
		case pm25 <= 55.4:
			return int(100 + 50*(pm25-35.4)/20)
		case pm25 <= 150.4:
			return int(150 + 50*(pm25-55.4)/95)
		case pm25 <= 250.4:
			return int(200 + 100*(pm25-150.4)/100)
		default:
			return int(300 + 200*(pm25-250.4)/250)
		}
	}

	if pm10, ok := pollutants["pm10"]; ok {
		switch {
		case pm10 <= 54:
			return int(50 * (pm10 / 54))
		case pm10 <= 154:
			return int(50 + 50*(pm10-54)/100)
		case pm10 <= 254:
			return int(100 + 50*(pm10-154)/100)
		case pm10 <= 354:
			return int(150 + 50*(pm10-254)/100)
		case pm10 <= 424:
			return int(200 + 100*(pm10-354)/70)
		default:
			return int(300 + 200*(pm10-424)/176)
		}
	}

	if no2, ok := pollutants["no2"]; ok {
		return min(300, int(no2*2))
	}
	if o3, ok := pollutants["o3"]; ok {
		return min(300, int(o3*1.5))
	}

	return 50
}
