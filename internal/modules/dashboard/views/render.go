package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"

	"tempdash-server/internal/modules/readings/types"
)

var dashboardTmpl *template.Template

// loadTemplatesFromFS loads dashboard templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	funcs := template.FuncMap{
		"deref": func(f *float64) float64 {
			if f == nil {
				return 0
			}
			return *f
		},
	}
	dashboardTmpl, err = template.New("dashboard").Funcs(funcs).ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads embedded dashboard templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// WindowOption is the view model for one entry in the lookback selector.
type WindowOption struct {
	Label string
	Hours int
}

// DashboardData is the view model for the dashboard page. The page renders
// the current state server-side; the polling script takes over from there.
type DashboardData struct {
	Location    string
	WindowHours int
	Windows     []WindowOption
	Latest      *types.Reading
	Stats       *types.Stats
	Online      bool
}

func RenderDashboard(w io.Writer, data *DashboardData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "dashboard.html", data)
}

// RenderStatsPartial executes only the stats-cards partial into w.
func RenderStatsPartial(w io.Writer, data *DashboardData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "partials/stats.html", data)
}
