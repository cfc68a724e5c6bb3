package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"tempdash-server/internal/modules/readings/repository"
	"tempdash-server/internal/utils"
)

type ReadingsController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type readingsControllerImpl struct {
	repository      repository.ReadingsRepository
	defaultLocation string
}

func NewReadingsController(repo repository.ReadingsRepository, defaultLocation string) ReadingsController {
	return &readingsControllerImpl{repository: repo, defaultLocation: defaultLocation}
}

func (c *readingsControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/temperature", c.handleRecord)
	mux.HandleFunc("GET /api/temperature", c.handleList)
	mux.HandleFunc("GET /api/temperature/latest", c.handleLatest)
	mux.HandleFunc("GET /api/temperature/stats", c.handleStats)
}

// recordPayload matches the sensor POST body. Temperature is a pointer so a
// missing field can be told apart from 0.
type recordPayload struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Location    string   `json:"location"`
	Timestamp   *int64   `json:"timestamp"`
}

func (c *readingsControllerImpl) handleRecord(w http.ResponseWriter, r *http.Request) {
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Temperature == nil {
		utils.WriteError(w, http.StatusBadRequest, "temperature is required")
		return
	}

	ts := time.Now().UnixMilli()
	if payload.Timestamp != nil {
		ts = *payload.Timestamp
	}
	location := payload.Location
	if location == "" {
		location = c.defaultLocation
	}

	if _, err := c.repository.Insert(*payload.Temperature, payload.Humidity, location, ts); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Echo the resolved timestamp so the caller can correlate its submission.
	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"timestamp": ts,
	})
}

func (c *readingsControllerImpl) handleList(w http.ResponseWriter, r *http.Request) {
	hours, location, limit, err := parseListQuery(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour).UnixMilli()
	readings, err := c.repository.List(since, location, limit)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteData(w, http.StatusOK, readings)
}

func (c *readingsControllerImpl) handleLatest(w http.ResponseWriter, r *http.Request) {
	latest, err := c.repository.Latest(r.URL.Query().Get("location"))
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// latest is nil when no rows exist; the envelope then carries data: null.
	utils.WriteData(w, http.StatusOK, latest)
}

func (c *readingsControllerImpl) handleStats(w http.ResponseWriter, r *http.Request) {
	hours, location, err := parseWindowQuery(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour).UnixMilli()
	stats, err := c.repository.StatsSince(since, location)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteData(w, http.StatusOK, stats)
}
