package metar

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"tempdash-server/internal/utils"
)

const (
	defaultWindowHours = 24
	maxWindowHours     = 168 // upstream serves at most one week of history
)

type fetcher interface {
	Fetch(ctx context.Context, station string, hours int) ([]MetarReading, error)
}

type Controller struct {
	client         fetcher
	defaultStation string
}

func NewController(client fetcher, defaultStation string) *Controller {
	return &Controller{client: client, defaultStation: defaultStation}
}

func (c *Controller) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/metar", c.handleMetar)
}

func (c *Controller) handleMetar(w http.ResponseWriter, r *http.Request) {
	station := r.URL.Query().Get("station")
	if station == "" {
		station = c.defaultStation
	}

	hours, err := parseHoursQuery(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	readings, err := c.client.Fetch(r.Context(), station, hours)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteData(w, http.StatusOK, readings)
}

// parseHoursQuery returns the lookback window, clamped to one week.
func parseHoursQuery(r *http.Request) (int, error) {
	hours := defaultWindowHours
	if s := r.URL.Query().Get("hours"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, errors.New("invalid 'hours' (expected integer)")
		}
		if n <= 0 {
			return 0, errors.New("'hours' must be > 0")
		}
		hours = n
	}
	if hours > maxWindowHours {
		hours = maxWindowHours
	}
	return hours, nil
}
