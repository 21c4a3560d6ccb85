package app

import (
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	systemInfo := api.SystemInfo{
		Version:     version,
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
