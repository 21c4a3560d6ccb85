package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) GetSessions(w http.ResponseWriter, r *http.Request) {
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

	showId, err := readIntParam(qs, "astronomyShow")
	if err != nil {
		app.filterValidationResponse(w, r, "astronomyShow", err)
		return
	}

	params := api.GetSessionsParams{
		Page:          page,
		PageSize:      pageSize,
		Date:          readStringParam(qs, "date"),
		AstronomyShow: readStringParam(qs, "astronomyShow"),
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toSessionFilters(params, showId)

	sessions, metadata, err := app.sessionRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SessionListResponse{
		ShowSessions: toSessionSummaries(sessions),
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	session, err := app.sessionRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toSessionDetailResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input api.SessionRequest

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

	session := domain.ShowSession{
		ShowID:   input.AstronomyShowId,
		DomeID:   input.PlanetariumDomeId,
		ShowTime: input.ShowTime,
	}

	err = app.sessionRepo.Create(r.Context(), &session)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.validationErrorResponse(w, r, []api.ValidationError{
				{Field: "showSession", Issue: "astronomy show or planetarium dome does not exist"},
			})
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.sessionRepo.GetById(r.Context(), session.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := http.Header{}
	headers.Set("Location", fmt.Sprintf("/show-sessions/%d", created.ID))

	err = app.writeJSON(w, http.StatusCreated, toSessionDetailResponse(created), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.SessionRequest

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

	session := domain.ShowSession{
		ID:       id,
		ShowID:   input.AstronomyShowId,
		DomeID:   input.PlanetariumDomeId,
		ShowTime: input.ShowTime,
	}

	err = app.sessionRepo.Update(r.Context(), &session)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	updated, err := app.sessionRepo.GetById(r.Context(), session.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSessionDetailResponse(updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.sessionRepo.Delete(r.Context(), id)
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

func toSessionFilters(params api.GetSessionsParams, showId *int) domain.SessionFilters {
	filters := domain.SessionFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Date != nil {
		// already validated against the date layout
		date, err := time.Parse("2006-01-02", *params.Date)
		if err == nil {
			filters.Date = &date
		}
	}
	if showId != nil {
		filters.ShowID = *showId
	}

	return filters
}

func toSessionSummaries(sessions []domain.SessionSummary) []api.SessionSummary {
	summaries := make([]api.SessionSummary, len(sessions))

	for i, session := range sessions {
		summaries[i] = toSessionSummary(session)
	}

	return summaries
}

func toSessionSummary(session domain.SessionSummary) api.SessionSummary {
	return api.SessionSummary{
		Id:                      session.ID,
		ShowTime:                session.ShowTime,
		AstronomyShow:           session.ShowTitle,
		PlanetariumDome:         session.DomeName,
		PlanetariumDomeCapacity: session.DomeCapacity,
		TicketsAvailable:        session.TicketsAvailable,
	}
}

func toSessionDetailResponse(session *domain.SessionDetail) api.SessionDetailResponse {
	takenPlaces := make([]api.SeatPosition, len(session.TakenPlaces))
	for i, place := range session.TakenPlaces {
		takenPlaces[i] = api.SeatPosition{Row: place.Row, Seat: place.Seat}
	}

	return api.SessionDetailResponse{
		Id:              session.ID,
		ShowTime:        session.ShowTime,
		AstronomyShow:   toShowSummary(&session.Show),
		PlanetariumDome: toDomeResponse(session.Dome),
		TakenPlaces:     takenPlaces,
	}
}
