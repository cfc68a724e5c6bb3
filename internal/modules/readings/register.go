package readings

import (
	"database/sql"
	"net/http"

	"tempdash-server/internal/modules/readings/controller"
	"tempdash-server/internal/modules/readings/repository"
)

func RegisterFeature(mux *http.ServeMux, db *sql.DB, defaultLocation string) repository.ReadingsRepository {
	repo := repository.NewRepository(db)
	ctrl := controller.NewReadingsController(repo, defaultLocation)
	ctrl.RegisterRoutes(mux)
	return repo
}
