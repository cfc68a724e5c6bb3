package metar

import (
	"net/http"

	"tempdash-server/internal/config"
)

func RegisterFeature(mux *http.ServeMux, cfg config.Config) {
	client := NewClient(cfg.MetarBaseURL, cfg.MetarTimeout)
	ctrl := NewController(client, cfg.MetarDefaultStation)
	ctrl.RegisterRoutes(mux)
}
