package dashboard

import (
	"net/http"

	"tempdash-server/internal/modules/dashboard/controller"
	"tempdash-server/internal/modules/readings/repository"
)

func RegisterFeature(mux *http.ServeMux, repo repository.ReadingsRepository, location string) {
	ctrl := controller.NewDashboardController(repo, location)
	ctrl.RegisterRoutes(mux)
}
