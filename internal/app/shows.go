package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	page, err := readIntParam(qs, "page")
	if err != nil {
		app.filterValidationResponse(w, r, "page", err)
		return
	}

	pageSize, err := readIntParam(qs, "pageSize")
	if err != nil {
		app.filterValidationResponse(w, r, "pageSize", err)
		return
	}

	themeIDs, err := readCSVIntParam(qs, "showTheme")
	if err != nil {
		app.filterValidationResponse(w, r, "showTheme", err)
		return
	}

	params := api.GetShowsParams{
		Page:      page,
		PageSize:  pageSize,
		Title:     readStringParam(qs, "title"),
		ShowTheme: readStringParam(qs, "showTheme"),
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toShowFilters(params, themeIDs)

	shows, metadata, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		Shows:    toShowSummaries(shows),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowDetailResponse(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var input api.ShowRequest

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

	show := domain.Show{
		Title:       input.Title,
		Description: input.Description,
	}
	for _, themeId := range input.ThemeIds {
		show.Themes = append(show.Themes, domain.Theme{ID: themeId})
	}

	err = app.showRepo.Create(r.Context(), &show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.validationErrorResponse(w, r, []api.ValidationError{
				{Field: "showThemeIds", Issue: "one or more show themes do not exist"},
			})
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.showRepo.GetById(r.Context(), show.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := http.Header{}
	headers.Set("Location", fmt.Sprintf("/shows/%d", created.ID))

	err = app.writeJSON(w, http.StatusCreated, toShowDetailResponse(created), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowFilters(params api.GetShowsParams, themeIDs []int) domain.ShowFilters {
	filters := domain.ShowFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		ThemeIDs: themeIDs,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Title != nil {
		filters.Title = *params.Title
	}

	return filters
}

func toShowSummaries(shows []*domain.Show) []api.ShowSummary {
	summaries := make([]api.ShowSummary, len(shows))

	for i, show := range shows {
		summaries[i] = toShowSummary(show)
	}

	return summaries
}

func toShowSummary(show *domain.Show) api.ShowSummary {
	if show == nil {
		return api.ShowSummary{}
	}

	themes := make([]string, len(show.Themes))
	for i, theme := range show.Themes {
		themes[i] = theme.Name
	}

	return api.ShowSummary{
		Id:          show.ID,
		Title:       show.Title,
		Description: show.Description,
		ShowThemes:  themes,
	}
}

func toShowDetailResponse(show *domain.Show) api.ShowDetailResponse {
	return api.ShowDetailResponse{
		Id:          show.ID,
		Title:       show.Title,
		Description: show.Description,
		ShowThemes:  toThemeResponses(show.Themes),
	}
}

func toThemeResponses(themes []domain.Theme) []api.ThemeResponse {
	resp := make([]api.ThemeResponse, len(themes))

	for i, theme := range themes {
		resp[i] = api.ThemeResponse{
			Id:   theme.ID,
			Name: theme.Name,
		}
	}

	return resp
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
