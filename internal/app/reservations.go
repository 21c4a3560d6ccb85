package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) GetReservations(w http.ResponseWriter, r *http.Request) {
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

	params := api.GetReservationsParams{
		Page:     page,
		PageSize: pageSize,
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	pagination := toPagination(params)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationListResponse{
		Reservations: toReservationSummaries(reservations),
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ReservationRequest

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

	sessionIds := distinctSessionIds(input.Tickets)

	seatings, err := app.sessionRepo.GetSeatingBySessionIds(r.Context(), sessionIds)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	domesBySession := make(map[int]domain.Dome, len(seatings))
	for _, seating := range seatings {
		domesBySession[seating.SessionID] = seating.Dome
	}

	reservation := domain.Reservation{
		UserID:  app.contextGetUserId(r),
		Tickets: make([]domain.Ticket, len(input.Tickets)),
	}

	for i, ticket := range input.Tickets {
		dome, ok := domesBySession[ticket.ShowSessionId]
		if !ok {
			logger.Warn("reservation attempt for non-existent session", "sessionId", ticket.ShowSessionId)
			app.notFoundResponse(w, r)
			return
		}

		err = domain.ValidateTicket(ticket.Row, ticket.Seat, dome)
		if err != nil {
			var seatErr *domain.SeatValidationError
			if errors.As(err, &seatErr) {
				app.seatValidationResponse(w, r, seatErr)
				return
			}

			app.serverErrorResponse(w, r, err)
			return
		}

		reservation.Tickets[i] = domain.Ticket{
			SessionID: ticket.ShowSessionId,
			Row:       ticket.Row,
			Seat:      ticket.Seat,
		}
	}

	err = app.reservationRepo.Create(r.Context(), &reservation)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			logger.Warn("reservation rejected due to seat conflict")
			app.seatsConflictResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	headers := http.Header{}
	headers.Set("Location", fmt.Sprintf("/reservations/%d", reservation.ID))

	err = app.writeJSON(w, http.StatusCreated, toReservationResponse(reservation), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func distinctSessionIds(tickets []api.TicketRequest) []int {
	seen := make(map[int]struct{}, len(tickets))
	ids := make([]int, 0, len(tickets))

	for _, ticket := range tickets {
		if _, ok := seen[ticket.ShowSessionId]; ok {
			continue
		}

		seen[ticket.ShowSessionId] = struct{}{}
		ids = append(ids, ticket.ShowSessionId)
	}

	return ids
}

func toPagination(params api.GetReservationsParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toReservationResponse(reservation domain.Reservation) api.ReservationResponse {
	tickets := make([]api.CreatedTicket, len(reservation.Tickets))

	for i, ticket := range reservation.Tickets {
		tickets[i] = api.CreatedTicket{
			Id:            ticket.ID,
			Row:           ticket.Row,
			Seat:          ticket.Seat,
			ShowSessionId: ticket.SessionID,
		}
	}

	return api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   tickets,
	}
}

func toReservationSummaries(reservations []domain.ReservationSummary) []api.ReservationSummary {
	summaries := make([]api.ReservationSummary, len(reservations))

	for i, reservation := range reservations {
		tickets := make([]api.TicketSummary, len(reservation.Tickets))

		for j, ticket := range reservation.Tickets {
			tickets[j] = api.TicketSummary{
				Id:          ticket.ID,
				Row:         ticket.Row,
				Seat:        ticket.Seat,
				ShowSession: toSessionSummary(ticket.Session),
			}
		}

		summaries[i] = api.ReservationSummary{
			Id:        reservation.ID,
			CreatedAt: reservation.CreatedAt,
			Tickets:   tickets,
		}
	}

	return summaries
}
