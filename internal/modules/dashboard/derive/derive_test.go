package derive

import (
	"testing"
	"time"

	"tempdash-server/internal/modules/readings/types"
)

func ptr(f float64) *float64 { return &f }

func TestIsOnline(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name     string
		readings []types.Reading
		want     bool
	}{
		{name: "empty list is offline", readings: nil, want: false},
		{
			name:     "fresh reading is online",
			readings: []types.Reading{{Timestamp: now.UnixMilli() - 60_000}},
			want:     true,
		},
		{
			name:     "reading just inside threshold is online",
			readings: []types.Reading{{Timestamp: now.UnixMilli() - 10*60*1000 + 1}},
			want:     true,
		},
		{
			name:     "reading at threshold is offline",
			readings: []types.Reading{{Timestamp: now.UnixMilli() - 10*60*1000}},
			want:     false,
		},
		{
			name: "newest reading counts regardless of order",
			readings: []types.Reading{
				{Timestamp: now.UnixMilli() - 2*60*60*1000},
				{Timestamp: now.UnixMilli() - 30_000},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOnline(tt.readings, now); got != tt.want {
				t.Errorf("IsOnline() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	t.Run("nil for empty list", func(t *testing.T) {
		min, max := MinMax(nil)
		if min != nil || max != nil {
			t.Errorf("MinMax(nil) = %v, %v; want nil, nil", min, max)
		}
	})

	t.Run("finds extremes with timestamps", func(t *testing.T) {
		readings := []types.Reading{
			{Temperature: 15.0, Timestamp: 100},
			{Temperature: 9.5, Timestamp: 200},
			{Temperature: 22.0, Timestamp: 300},
			{Temperature: 18.0, Timestamp: 400},
		}
		min, max := MinMax(readings)
		if min == nil || min.Value != 9.5 || min.Timestamp != 200 {
			t.Errorf("min = %+v; want {9.5 200}", min)
		}
		if max == nil || max.Value != 22.0 || max.Timestamp != 300 {
			t.Errorf("max = %+v; want {22.0 300}", max)
		}
	})

	t.Run("ties keep first-seen reading", func(t *testing.T) {
		readings := []types.Reading{
			{Temperature: 10.0, Timestamp: 100},
			{Temperature: 10.0, Timestamp: 200},
		}
		min, max := MinMax(readings)
		if min.Timestamp != 100 {
			t.Errorf("min.Timestamp = %d; want first-seen 100", min.Timestamp)
		}
		if max.Timestamp != 100 {
			t.Errorf("max.Timestamp = %d; want first-seen 100", max.Timestamp)
		}
	})

	t.Run("single reading is both min and max", func(t *testing.T) {
		min, max := MinMax([]types.Reading{{Temperature: 7.0, Timestamp: 50}})
		if min == nil || max == nil || min.Value != 7.0 || max.Value != 7.0 {
			t.Errorf("MinMax = %+v, %+v; want both {7.0 50}", min, max)
		}
	})
}

func TestHasHumidity(t *testing.T) {
	if HasHumidity(nil) {
		t.Error("HasHumidity(nil) = true; want false")
	}
	if HasHumidity([]types.Reading{{Temperature: 10.0}, {Temperature: 12.0}}) {
		t.Error("HasHumidity(humidity-less rows) = true; want false")
	}
	if !HasHumidity([]types.Reading{{Temperature: 10.0}, {Temperature: 12.0, Humidity: ptr(55.0)}}) {
		t.Error("HasHumidity(one humidity row) = false; want true")
	}
}
