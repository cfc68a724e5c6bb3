package derive

import (
	"time"

	"tempdash-server/internal/modules/readings/types"
)

// onlineThreshold is how stale the newest reading may be before the sensor is
// shown as offline. Purely a display heuristic, not an API health check.
const onlineThreshold = 10 * time.Minute

// IsOnline reports whether the most recent reading's timestamp is within the
// liveness threshold of now.
func IsOnline(readings []types.Reading, now time.Time) bool {
	if len(readings) == 0 {
		return false
	}
	newest := readings[0].Timestamp
	for _, r := range readings[1:] {
		if r.Timestamp > newest {
			newest = r.Timestamp
		}
	}
	return now.UnixMilli()-newest < onlineThreshold.Milliseconds()
}

// Extreme pairs a temperature with the timestamp it was observed at.
type Extreme struct {
	Value     float64
	Timestamp int64
}

// MinMax returns the minimum and maximum temperature in the list along with
// their timestamps. Ties keep the first-seen reading. Both are nil for an
// empty list.
func MinMax(readings []types.Reading) (min, max *Extreme) {
	for _, r := range readings {
		if min == nil || r.Temperature < min.Value {
			min = &Extreme{Value: r.Temperature, Timestamp: r.Timestamp}
		}
		if max == nil || r.Temperature > max.Value {
			max = &Extreme{Value: r.Temperature, Timestamp: r.Timestamp}
		}
	}
	return min, max
}

// HasHumidity reports whether any reading carries a humidity value. It drives
// the switch between single- and dual-axis chart layouts and is recomputed
// from the fetched list on every render, never stored.
func HasHumidity(readings []types.Reading) bool {
	for _, r := range readings {
		if r.Humidity != nil {
			return true
		}
	}
	return false
}
