// Package api holds the request and response payload types of the public
// HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50,alpha"`
	LastName  string `json:"lastName" validate:"required,max=50,alpha"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Activated bool      `json:"activated"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserActivationRequest struct {
	Token string `json:"token" validate:"required,len=43"`
}

type UserActivationResponse struct {
	Activated bool `json:"activated"`
}

type ActivationTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ActivationTokenResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type ThemeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type ThemeResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type ThemeListResponse struct {
	ShowThemes []ThemeResponse `json:"showThemes"`
}

type ShowRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	ThemeIds    []int  `json:"showThemeIds" validate:"unique,dive,min=1"`
}

// ShowSummary is the listing shape: themes flattened to their names.
type ShowSummary struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ShowThemes  []string `json:"showThemes"`
}

type ShowDetailResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ShowThemes  []ThemeResponse `json:"showThemes"`
}

type ShowListResponse struct {
	Shows    []ShowSummary `json:"shows"`
	Metadata *Metadata     `json:"metadata"`
}

type GetShowsParams struct {
	Page      *int    `validate:"omitempty,min=1"`
	PageSize  *int    `validate:"omitempty,min=1,max=100"`
	Title     *string `validate:"omitempty,max=100"`
	ShowTheme *string `validate:"omitempty"`
}

type DomeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Rows        int    `json:"rows" validate:"required,min=1"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,min=1"`
}

type DomeResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seatsPerRow"`
	Capacity    int    `json:"capacity"`
}

type DomeListResponse struct {
	PlanetariumDomes []DomeResponse `json:"planetariumDomes"`
}

type SessionRequest struct {
	AstronomyShowId   int       `json:"astronomyShowId" validate:"required,min=1"`
	PlanetariumDomeId int       `json:"planetariumDomeId" validate:"required,min=1"`
	ShowTime          time.Time `json:"showTime" validate:"required"`
}

type SessionSummary struct {
	Id                      int       `json:"id"`
	ShowTime                time.Time `json:"showTime"`
	AstronomyShow           string    `json:"astronomyShow"`
	PlanetariumDome         string    `json:"planetariumDome"`
	PlanetariumDomeCapacity int       `json:"planetariumDomeCapacity"`
	TicketsAvailable        int       `json:"ticketsAvailable"`
}

type SessionListResponse struct {
	ShowSessions []SessionSummary `json:"showSessions"`
	Metadata     *Metadata        `json:"metadata"`
}

type SeatPosition struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type SessionDetailResponse struct {
	Id              int            `json:"id"`
	ShowTime        time.Time      `json:"showTime"`
	AstronomyShow   ShowSummary    `json:"astronomyShow"`
	PlanetariumDome DomeResponse   `json:"planetariumDome"`
	TakenPlaces     []SeatPosition `json:"takenPlaces"`
}

type GetSessionsParams struct {
	Page          *int    `validate:"omitempty,min=1"`
	PageSize      *int    `validate:"omitempty,min=1,max=100"`
	Date          *string `validate:"omitempty,datetime=2006-01-02"`
	AstronomyShow *string `validate:"omitempty"`
}

type TicketRequest struct {
	Row           int `json:"row" validate:"required,min=1"`
	Seat          int `json:"seat" validate:"required,min=1"`
	ShowSessionId int `json:"showSessionId" validate:"required,min=1"`
}

type ReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

// CreatedTicket is the create-response shape: the session stays a bare id.
type CreatedTicket struct {
	Id            int `json:"id"`
	Row           int `json:"row"`
	Seat          int `json:"seat"`
	ShowSessionId int `json:"showSessionId"`
}

type ReservationResponse struct {
	Id        int             `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Tickets   []CreatedTicket `json:"tickets"`
}

// TicketSummary is the listing shape: the session is expanded like the
// session listing expands it.
type TicketSummary struct {
	Id          int            `json:"id"`
	Row         int            `json:"row"`
	Seat        int            `json:"seat"`
	ShowSession SessionSummary `json:"showSession"`
}

type ReservationSummary struct {
	Id        int             `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Tickets   []TicketSummary `json:"tickets"`
}

type ReservationListResponse struct {
	Reservations []ReservationSummary `json:"reservations"`
	Metadata     *Metadata            `json:"metadata"`
}

type GetReservationsParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}
