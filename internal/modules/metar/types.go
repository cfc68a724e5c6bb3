package metar

// MetarReading is a normalized aviation-weather observation. It is a
// read-only passthrough from the upstream feed and is never persisted.
type MetarReading struct {
	StationID   string   `json:"station_id"`
	RawText     string   `json:"raw_text"`
	TempC       *float64 `json:"temp_c"`
	DewpointC   *float64 `json:"dewpoint_c"`
	PressureHpa *float64 `json:"pressure_hpa"`
	WindDirDeg  *int     `json:"wind_dir_deg"`
	WindSpeedKt *int     `json:"wind_speed_kt"`
	ObservedAt  int64    `json:"observed_at"` // epoch milliseconds
}
