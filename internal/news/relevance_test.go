package news

import "testing"

func TestRelevantAccepts(t *testing.T) {
	tests := []struct {
		title   string
		summary string
	}{
		{"Heavy rainfall forecast for the weekend", ""},
		{"IMD issues cyclone warning for coastal districts", "Landfall expected Friday"},
		{"Temperatures to soar next week", "A heatwave is building over the plains"},
		{"City braces for thunderstorm", "Gusty winds and hail possible"},
	}
	for _, tt := range tests {
		if !Relevant(tt.title, tt.summary) {
			t.Errorf("Relevant(%q, %q) = false, want true", tt.title, tt.summary)
		}
	}
}

func TestRelevantRejectsWithoutWeatherTerm(t *testing.T) {
	tests := []struct {
		title   string
		summary string
	}{
		{"Local bakery opens", "no relevant content"},
		{"", ""},
		{"City council passes new budget", "Road repairs planned for spring"},
	}
	for _, tt := range tests {
		if Relevant(tt.title, tt.summary) {
			t.Errorf("Relevant(%q, %q) = true, want false", tt.title, tt.summary)
		}
	}
}

func TestRelevantBlocklistOverrides(t *testing.T) {
	// Off-topic markers reject even when weather terms are present.
	tests := []struct {
		title   string
		summary string
	}{
		{"New hurricane movie sets box office record", "weather storm action thriller"},
		{"Novel set in a coastal storm wins prize", "the author describes wild weather"},
		{"Rain delays cricket match", "weather interrupts play"},
	}
	for _, tt := range tests {
		if Relevant(tt.title, tt.summary) {
			t.Errorf("Relevant(%q, %q) = true, want false", tt.title, tt.summary)
		}
	}
}
