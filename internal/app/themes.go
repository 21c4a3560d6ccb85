package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) GetThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := app.themeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ThemeListResponse{
		ShowThemes: toThemeResponses(themes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheme(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "themeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	theme, err := app.themeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toThemeResponse(*theme), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheme(w http.ResponseWriter, r *http.Request) {
	var input api.ThemeRequest

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

	theme := domain.Theme{Name: input.Name}

	err = app.themeRepo.Create(r.Context(), &theme)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := http.Header{}
	headers.Set("Location", fmt.Sprintf("/themes/%d", theme.ID))

	err = app.writeJSON(w, http.StatusCreated, toThemeResponse(theme), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "themeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.ThemeRequest

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

	theme := domain.Theme{ID: id, Name: input.Name}

	err = app.themeRepo.Update(r.Context(), &theme)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toThemeResponse(theme), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "themeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.themeRepo.Delete(r.Context(), id)
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

func toThemeResponse(theme domain.Theme) api.ThemeResponse {
	return api.ThemeResponse{
		Id:   theme.ID,
		Name: theme.Name,
	}
}
