package weather

import "fmt"

// Units selects the measurement system for display values.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

func (u Units) Valid() bool {
	return u == Metric || u == Imperial
}

func KelvinToCelsius(k float64) float64 {
	return k - 273.15
}

func KelvinToFahrenheit(k float64) float64 {
	return (k-273.15)*9/5 + 32
}

// Temp formats a Kelvin temperature in the chosen units.
func (u Units) Temp(k float64) string {
	if u == Imperial {
		return fmt.Sprintf("%.0f°F", KelvinToFahrenheit(k))
	}
	return fmt.Sprintf("%.0f°C", KelvinToCelsius(k))
}

// Wind formats a wind speed given in m/s.
func (u Units) Wind(ms float64) string {
	if u == Imperial {
		return fmt.Sprintf("%.1f mph", ms*2.23694)
	}
	return fmt.Sprintf("%.1f km/h", ms*3.6)
}

// Glyph maps an OpenWeatherMap condition ID group to a terminal glyph.
func Glyph(id int) string {
	switch {
	case id >= 200 && id < 300:
		return "⛈"
	case id >= 300 && id < 500:
		return "🌦"
	case id >= 500 && id < 600:
		return "🌧"
	case id >= 600 && id < 700:
		return "❄"
	case id >= 700 && id < 800:
		return "🌫"
	case id == 800:
		return "☀"
	case id > 800 && id < 900:
		return "☁"
	default:
		return "🌡"
	}
}
