package weather

import (
	"math"
	"testing"
)

func TestKelvinConversions(t *testing.T) {
	if got := KelvinToCelsius(273.15); got != 0 {
		t.Errorf("KelvinToCelsius(273.15) = %v, want 0", got)
	}
	if got := KelvinToCelsius(300.15); math.Abs(got-27) > 1e-9 {
		t.Errorf("KelvinToCelsius(300.15) = %v, want 27", got)
	}
	if got := KelvinToFahrenheit(273.15); math.Abs(got-32) > 1e-9 {
		t.Errorf("KelvinToFahrenheit(273.15) = %v, want 32", got)
	}
	if got := KelvinToFahrenheit(373.15); math.Abs(got-212) > 1e-9 {
		t.Errorf("KelvinToFahrenheit(373.15) = %v, want 212", got)
	}
}

func TestUnitsTemp(t *testing.T) {
	if got := Metric.Temp(291.15); got != "18°C" {
		t.Errorf("Metric.Temp = %q, want 18°C", got)
	}
	if got := Imperial.Temp(291.15); got != "64°F" {
		t.Errorf("Imperial.Temp = %q, want 64°F", got)
	}
}

func TestUnitsWind(t *testing.T) {
	if got := Metric.Wind(3.0); got != "10.8 km/h" {
		t.Errorf("Metric.Wind = %q, want 10.8 km/h", got)
	}
	if got := Imperial.Wind(3.0); got != "6.7 mph" {
		t.Errorf("Imperial.Wind = %q, want 6.7 mph", got)
	}
}

func TestUnitsValid(t *testing.T) {
	if !Metric.Valid() || !Imperial.Valid() {
		t.Error("metric and imperial must be valid")
	}
	if Units("kelvin").Valid() {
		t.Error("kelvin is not a display unit")
	}
}

func TestGlyphGroups(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{211, "⛈"},
		{301, "🌦"},
		{502, "🌧"},
		{601, "❄"},
		{741, "🌫"},
		{800, "☀"},
		{804, "☁"},
	}
	for _, tt := range tests {
		if got := Glyph(tt.id); got != tt.want {
			t.Errorf("Glyph(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
