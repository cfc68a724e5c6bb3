package types

// Reading is one persisted sensor sample. Rows are append-only: once written
// a reading is never updated or deleted.
type Reading struct {
	ID          int64    `json:"id"`
	Temperature float64  `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Location    string   `json:"location"`
	Timestamp   int64    `json:"timestamp"` // epoch milliseconds
	CreatedAt   string   `json:"created_at"`
}

// Stats is a derived aggregate over a time window, recomputed per request.
// Aggregate fields are nil (never zero) when the window has no matching rows;
// AvgHumidity only considers rows with a non-null humidity.
type Stats struct {
	AvgTemp     *float64 `json:"avg_temp"`
	MinTemp     *float64 `json:"min_temp"`
	MaxTemp     *float64 `json:"max_temp"`
	AvgHumidity *float64 `json:"avg_humidity"`
	Count       int64    `json:"count"`
}
