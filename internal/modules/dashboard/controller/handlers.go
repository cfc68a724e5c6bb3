package controller

import (
	"log/slog"
	"net/http"
	"time"

	"tempdash-server/internal/modules/dashboard/derive"
	"tempdash-server/internal/modules/dashboard/views"
	"tempdash-server/internal/modules/readings/repository"
	"tempdash-server/internal/modules/readings/types"
	"tempdash-server/internal/utils"
)

const defaultWindowHours = 24

var windowOptions = []views.WindowOption{
	{Label: "1h", Hours: 1},
	{Label: "6h", Hours: 6},
	{Label: "24h", Hours: 24},
	{Label: "7d", Hours: 168},
}

type DashboardController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type dashboardControllerImpl struct {
	repository repository.ReadingsRepository
	location   string
}

func NewDashboardController(repo repository.ReadingsRepository, location string) DashboardController {
	return &dashboardControllerImpl{repository: repo, location: location}
}

func (c *dashboardControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", c.handleDashboard)
}

// handleDashboard renders the dashboard page with the current window's state
// so the first paint does not wait for the polling script.
func (c *dashboardControllerImpl) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	now := time.Now()
	since := now.Add(-defaultWindowHours * time.Hour).UnixMilli()

	readings, err := c.repository.List(since, "", 500)
	if err != nil {
		slog.Error("dashboard: list readings failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load readings")
		return
	}
	stats, err := c.repository.StatsSince(since, "")
	if err != nil {
		slog.Error("dashboard: stats failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	var latest *types.Reading
	if len(readings) > 0 {
		latest = &readings[0]
	}

	data := views.DashboardData{
		Location:    c.location,
		WindowHours: defaultWindowHours,
		Windows:     windowOptions,
		Latest:      latest,
		Stats:       &stats,
		Online:      derive.IsOnline(readings, now),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.RenderDashboard(w, &data); err != nil {
		slog.Error("dashboard template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
}
