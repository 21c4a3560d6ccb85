package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/metinatakli/planetarium-reservation-system/internal/mocks"
	"github.com/metinatakli/planetarium-reservation-system/internal/validator"
)

func TestGetShows(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		getAllFunc     func(context.Context, domain.ShowFilters) ([]*domain.Show, *domain.Metadata, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ShowListResponse
	}{
		{
			name: "successful retrieval with default parameters",
			url:  "/shows",
			getAllFunc: func(ctx context.Context, filters domain.ShowFilters) ([]*domain.Show, *domain.Metadata, error) {
				if filters.Page != DefaultPage || filters.PageSize != DefaultPageSize {
					return nil, nil, fmt.Errorf("unexpected filters: %+v", filters)
				}

				shows := []*domain.Show{
					{
						ID:          1,
						Title:       "Across the Milky Way",
						Description: "A guided tour of our galaxy",
						Themes:      []domain.Theme{{ID: 1, Name: "Galaxies"}},
					},
					{
						ID:     2,
						Title:  "Black Holes",
						Themes: []domain.Theme{},
					},
				}
				metadata := &domain.Metadata{
					CurrentPage:  1,
					FirstPage:    1,
					LastPage:     1,
					PageSize:     10,
					TotalRecords: 2,
				}
				return shows, metadata, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ShowListResponse{
				Shows: []api.ShowSummary{
					{
						Id:          1,
						Title:       "Across the Milky Way",
						Description: "A guided tour of our galaxy",
						ShowThemes:  []string{"Galaxies"},
					},
					{
						Id:         2,
						Title:      "Black Holes",
						ShowThemes: []string{},
					},
				},
				Metadata: &api.Metadata{
					CurrentPage:  1,
					FirstPage:    1,
					LastPage:     1,
					PageSize:     10,
					TotalRecords: 2,
				},
			},
		},
		{
			name: "title and theme filters are passed through",
			url:  "/shows?page=2&pageSize=5&title=nebula&showTheme=1,3",
			getAllFunc: func(ctx context.Context, filters domain.ShowFilters) ([]*domain.Show, *domain.Metadata, error) {
				want := domain.ShowFilters{Page: 2, PageSize: 5, Title: "nebula", ThemeIDs: []int{1, 3}}
				if diff := cmp.Diff(want, filters); diff != "" {
					return nil, nil, fmt.Errorf("filters mismatch: %s", diff)
				}

				return []*domain.Show{}, &domain.Metadata{
					CurrentPage:  2,
					FirstPage:    1,
					LastPage:     2,
					PageSize:     5,
					TotalRecords: 6,
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ShowListResponse{
				Shows: []api.ShowSummary{},
				Metadata: &api.Metadata{
					CurrentPage:  2,
					FirstPage:    1,
					LastPage:     2,
					PageSize:     5,
					TotalRecords: 6,
				},
			},
		},
		{
			name:           "validation error - malformed theme filter",
			url:            "/shows?showTheme=sci,fi",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a comma-separated list of integers",
		},
		{
			name:           "validation error - negative page",
			url:            "/shows?page=-1",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinLength, "1"),
		},
		{
			name:           "validation error - page size too large",
			url:            "/shows?pageSize=1000",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMaxLength, "100"),
		},
		{
			name: "database error",
			url:  "/shows",
			getAllFunc: func(ctx context.Context, filters domain.ShowFilters) ([]*domain.Show, *domain.Metadata, error) {
				return nil, nil, fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.showRepo = &mocks.MockShowRepo{
					GetAllFunc: tt.getAllFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)

			app.GetShows(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetShows() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.ShowListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetShows() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetShow(t *testing.T) {
	tests := []struct {
		name           string
		showId         string
		getByIdFunc    func(context.Context, int) (*domain.Show, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ShowDetailResponse
	}{
		{
			name:   "successful retrieval",
			showId: "1",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Show, error) {
				return &domain.Show{
					ID:          1,
					Title:       "Across the Milky Way",
					Description: "A guided tour of our galaxy",
					Themes:      []domain.Theme{{ID: 1, Name: "Galaxies"}, {ID: 2, Name: "Stars"}},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ShowDetailResponse{
				Id:          1,
				Title:       "Across the Milky Way",
				Description: "A guided tour of our galaxy",
				ShowThemes: []api.ThemeResponse{
					{Id: 1, Name: "Galaxies"},
					{Id: 2, Name: "Stars"},
				},
			},
		},
		{
			name:   "show not found",
			showId: "99",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Show, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "invalid show id",
			showId:         "abc",
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:   "database error",
			showId: "1",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Show, error) {
				return nil, fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.showRepo = &mocks.MockShowRepo{
					GetByIdFunc: tt.getByIdFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/shows/"+tt.showId, nil)
			r = withUrlParam(r, "showId", tt.showId)

			app.GetShow(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetShow() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.ShowDetailResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetShow() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestCreateShow(t *testing.T) {
	validBody := api.ShowRequest{
		Title:       "Across the Milky Way",
		Description: "A guided tour of our galaxy",
		ThemeIds:    []int{1},
	}

	tests := []struct {
		name           string
		body           any
		createFunc     func(context.Context, *domain.Show) error
		getByIdFunc    func(context.Context, int) (*domain.Show, error)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful creation",
			body: validBody,
			createFunc: func(ctx context.Context, show *domain.Show) error {
				show.ID = 7
				return nil
			},
			getByIdFunc: func(ctx context.Context, id int) (*domain.Show, error) {
				return &domain.Show{
					ID:          7,
					Title:       "Across the Milky Way",
					Description: "A guided tour of our galaxy",
					Themes:      []domain.Theme{{ID: 1, Name: "Galaxies"}},
				}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown theme id",
			body: validBody,
			createFunc: func(ctx context.Context, show *domain.Show) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "one or more show themes do not exist",
		},
		{
			name:           "validation error - missing title",
			body:           api.ShowRequest{ThemeIds: []int{1}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "validation error - duplicate theme ids",
			body:           api.ShowRequest{Title: "Across the Milky Way", ThemeIds: []int{1, 1}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrUnique,
		},
		{
			name: "database error",
			body: validBody,
			createFunc: func(ctx context.Context, show *domain.Show) error {
				return fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.showRepo = &mocks.MockShowRepo{
					CreateFunc:  tt.createFunc,
					GetByIdFunc: tt.getByIdFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/shows", tt.body)

			app.CreateShow(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateShow() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusCreated {
				if got := w.Header().Get("Location"); got != "/shows/7" {
					t.Errorf("CreateShow() Location = %v, want /shows/7", got)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
