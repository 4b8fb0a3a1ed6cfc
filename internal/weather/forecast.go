package weather

import "time"

// Day is a per-day forecast aggregate built from 3-hour slots.
type Day struct {
	Date        time.Time
	Min         float64 // Kelvin
	Max         float64 // Kelvin
	Description string
	ConditionID int
}

// DailySummary groups 3-hour slots into at most days daily aggregates. The
// first (partial) day is skipped when a later day exists, so "next 5 days"
// starts tomorrow. Each day's description comes from the slot nearest
// midday, the most representative reading.
func DailySummary(slots []Slot, days int) []Day {
	byDay := make(map[string][]Slot)
	var order []string
	for _, s := range slots {
		key := s.Time.Format("2006-01-02")
		if _, ok := byDay[key]; !ok {
			order = append(order, key)
		}
		byDay[key] = append(byDay[key], s)
	}

	if len(order) > 1 {
		order = order[1:]
	}
	if days > 0 && len(order) > days {
		order = order[:days]
	}

	out := make([]Day, 0, len(order))
	for _, key := range order {
		group := byDay[key]
		day := Day{Min: group[0].Temp, Max: group[0].Temp}
		best := group[0]
		for _, s := range group {
			if s.Temp < day.Min {
				day.Min = s.Temp
			}
			if s.Temp > day.Max {
				day.Max = s.Temp
			}
			if middayDistance(s.Time) < middayDistance(best.Time) {
				best = s
			}
		}
		day.Date = time.Date(best.Time.Year(), best.Time.Month(), best.Time.Day(), 0, 0, 0, 0, best.Time.Location())
		day.Description = best.Description
		day.ConditionID = best.ConditionID
		out = append(out, day)
	}
	return out
}

func middayDistance(t time.Time) time.Duration {
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
	d := t.Sub(noon)
	if d < 0 {
		d = -d
	}
	return d
}
