package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) GetDomes(w http.ResponseWriter, r *http.Request) {
	domes, err := app.domeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DomeListResponse{
		PlanetariumDomes: toDomeResponses(domes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetDome(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "domeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	dome, err := app.domeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toDomeResponse(*dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateDome(w http.ResponseWriter, r *http.Request) {
	var input api.DomeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	dome := domain.Dome{
		Name:        input.Name,
		Rows:        input.Rows,
		SeatsPerRow: input.SeatsPerRow,
	}

	err = app.domeRepo.Create(r.Context(), &dome)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := http.Header{}
	headers.Set("Location", fmt.Sprintf("/domes/%d", dome.ID))

	err = app.writeJSON(w, http.StatusCreated, toDomeResponse(dome), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateDome(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "domeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.DomeRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	dome := domain.Dome{
		ID:          id,
		Name:        input.Name,
		Rows:        input.Rows,
		SeatsPerRow: input.SeatsPerRow,
	}

	err = app.domeRepo.Update(r.Context(), &dome)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toDomeResponse(dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteDome(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "domeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.domeRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDomeResponses(domes []domain.Dome) []api.DomeResponse {
	resp := make([]api.DomeResponse, len(domes))

	for i, dome := range domes {
		resp[i] = toDomeResponse(dome)
	}

	return resp
}

func toDomeResponse(dome domain.Dome) api.DomeResponse {
	return api.DomeResponse{
		Id:          dome.ID,
		Name:        dome.Name,
		Rows:        dome.Rows,
		SeatsPerRow: dome.SeatsPerRow,
		Capacity:    dome.Capacity(),
	}
}
