package httpapi

import (
	"net/http"

	"tempdash-server/internal/config"
)

func NewServer(cfg config.Config, mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: requestLogger(cors(mux)),
	}
}
