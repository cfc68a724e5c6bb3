package repository

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"tempdash-server/internal/modules/readings/types"
)

//go:embed sql/insert-reading.sql
var insertReadingSQL string

//go:embed sql/get-readings.sql
var getReadingsSQL string

//go:embed sql/get-latest-reading.sql
var getLatestReadingSQL string

//go:embed sql/get-stats.sql
var getStatsSQL string

type ReadingsRepository interface {
	Insert(temperature float64, humidity *float64, location string, tsMillis int64) (int64, error)
	List(sinceMillis int64, location string, limit int) ([]types.Reading, error)
	Latest(location string) (*types.Reading, error)
	StatsSince(sinceMillis int64, location string) (types.Stats, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ReadingsRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Insert(temperature float64, humidity *float64, location string, tsMillis int64) (int64, error) {
	var humidityVal any
	if humidity != nil {
		humidityVal = *humidity
	}

	res, err := r.db.Exec(insertReadingSQL, temperature, humidityVal, location, tsMillis)
	if err != nil {
		return 0, fmt.Errorf("insert reading: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert reading id: %w", err)
	}
	return id, nil
}

func (r *repositoryImpl) List(sinceMillis int64, location string, limit int) ([]types.Reading, error) {
	rows, err := r.db.Query(getReadingsSQL, sinceMillis, location, location, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close readings rows", "error", err)
		}
	}()
	return scanReadings(rows)
}

func (r *repositoryImpl) Latest(location string) (*types.Reading, error) {
	row := r.db.QueryRow(getLatestReadingSQL, location, location)
	var rec types.Reading
	err := row.Scan(&rec.ID, &rec.Temperature, &rec.Humidity, &rec.Location, &rec.Timestamp, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repositoryImpl) StatsSince(sinceMillis int64, location string) (types.Stats, error) {
	var s types.Stats
	err := r.db.QueryRow(getStatsSQL, sinceMillis, location, location).
		Scan(&s.AvgTemp, &s.MinTemp, &s.MaxTemp, &s.AvgHumidity, &s.Count)
	if err != nil {
		return types.Stats{}, err
	}
	return s, nil
}

func scanReadings(rows *sql.Rows) ([]types.Reading, error) {
	var out []types.Reading
	for rows.Next() {
		var rec types.Reading
		if err := rows.Scan(&rec.ID, &rec.Temperature, &rec.Humidity, &rec.Location, &rec.Timestamp, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
