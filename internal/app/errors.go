package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	appvalidator "github.com/metinatakli/planetarium-reservation-system/internal/validator"
)

// Error messages referenced from handler tests.
const (
	ErrServerError        = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrMethodNotAllowed   = "The method is not supported for this resource"
	ErrUnauthorized       = "You must be authenticated to access this resource"
	ErrForbidden          = "You do not have permission to access this resource"
	ErrEditConflict       = "Unable to complete the request due to a conflict, please try again"
	ErrSeatsConflict      = "One or more of the requested seats were just booked by someone else"
	ErrInvalidCredentials = "Invalid credentials"
	ErrValidationFailed   = "One or more fields have invalid values"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrServerError)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorized)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

func (app *Application) editConflictResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusConflict, ErrEditConflict)
}

func (app *Application) seatsConflictResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusConflict, ErrSeatsConflict)
}

// failedValidationResponse turns go-playground validation errors into the 422
// envelope, one entry per offending field.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	fieldErrors := make([]api.ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors = append(fieldErrors, api.ValidationError{
			Field: fieldError.Field(),
			Issue: appvalidator.ValidationMessage(fieldError),
		})
	}

	app.validationErrorResponse(w, r, fieldErrors)
}

// seatValidationResponse reports out-of-grid seat positions accumulated by
// domain.ValidateTicket.
func (app *Application) seatValidationResponse(w http.ResponseWriter, r *http.Request, err *domain.SeatValidationError) {
	fieldErrors := make([]api.ValidationError, 0, len(err.Fields))
	for _, field := range []string{"row", "seat"} {
		if issue, ok := err.Fields[field]; ok {
			fieldErrors = append(fieldErrors, api.ValidationError{Field: field, Issue: issue})
		}
	}

	app.validationErrorResponse(w, r, fieldErrors)
}

func (app *Application) filterValidationResponse(w http.ResponseWriter, r *http.Request, field string, err error) {
	app.validationErrorResponse(w, r, []api.ValidationError{{Field: field, Issue: err.Error()}})
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrValidationFailed,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: fieldErrors,
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}
