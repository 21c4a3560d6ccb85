package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidateTicket(t *testing.T) {
	dome := Dome{Rows: 10, SeatsPerRow: 20}

	tests := []struct {
		name       string
		row        int
		seat       int
		wantFields map[string]string
	}{
		{
			name: "first seat of the grid",
			row:  1,
			seat: 1,
		},
		{
			name: "last seat of the grid",
			row:  10,
			seat: 20,
		},
		{
			name: "row below range",
			row:  0,
			seat: 5,
			wantFields: map[string]string{
				"row": "row number must be in available range: (1, 10)",
			},
		},
		{
			name: "row above range",
			row:  11,
			seat: 5,
			wantFields: map[string]string{
				"row": "row number must be in available range: (1, 10)",
			},
		},
		{
			name: "seat below range",
			row:  5,
			seat: 0,
			wantFields: map[string]string{
				"seat": "seat number must be in available range: (1, 20)",
			},
		},
		{
			name: "seat above range",
			row:  5,
			seat: 21,
			wantFields: map[string]string{
				"seat": "seat number must be in available range: (1, 20)",
			},
		},
		{
			name: "both row and seat out of range",
			row:  0,
			seat: 21,
			wantFields: map[string]string{
				"row":  "row number must be in available range: (1, 10)",
				"seat": "seat number must be in available range: (1, 20)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTicket(tt.row, tt.seat, dome)

			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("ValidateTicket(%d, %d) = %v, want nil", tt.row, tt.seat, err)
				}
				return
			}

			var seatErr *SeatValidationError
			if !errors.As(err, &seatErr) {
				t.Fatalf("ValidateTicket(%d, %d) = %v, want SeatValidationError", tt.row, tt.seat, err)
			}

			if len(seatErr.Fields) != len(tt.wantFields) {
				t.Errorf("got %d field errors, want %d", len(seatErr.Fields), len(tt.wantFields))
			}

			for field, want := range tt.wantFields {
				if got := seatErr.Fields[field]; got != want {
					t.Errorf("field %q message = %q, want %q", field, got, want)
				}
			}
		})
	}
}

func TestValidateTicketGridBoundaries(t *testing.T) {
	// Every position inside the grid validates, every position one step
	// outside it does not.
	dome := Dome{Rows: 3, SeatsPerRow: 4}

	for row := 0; row <= dome.Rows+1; row++ {
		for seat := 0; seat <= dome.SeatsPerRow+1; seat++ {
			inside := row >= 1 && row <= dome.Rows && seat >= 1 && seat <= dome.SeatsPerRow

			err := ValidateTicket(row, seat, dome)

			if inside && err != nil {
				t.Errorf("ValidateTicket(%d, %d) = %v, want nil", row, seat, err)
			}
			if !inside && err == nil {
				t.Errorf("ValidateTicket(%d, %d) = nil, want error", row, seat)
			}
		}
	}
}

func TestDomeCapacity(t *testing.T) {
	tests := []struct {
		rows        int
		seatsPerRow int
		want        int
	}{
		{rows: 1, seatsPerRow: 1, want: 1},
		{rows: 10, seatsPerRow: 20, want: 200},
		{rows: 7, seatsPerRow: 13, want: 91},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.rows, tt.seatsPerRow), func(t *testing.T) {
			dome := Dome{Rows: tt.rows, SeatsPerRow: tt.seatsPerRow}

			if got := dome.Capacity(); got != tt.want {
				t.Errorf("Capacity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		page         int
		pageSize     int
		wantLastPage int
	}{
		{name: "exact multiple", totalRecords: 20, page: 1, pageSize: 10, wantLastPage: 2},
		{name: "partial last page", totalRecords: 21, page: 1, pageSize: 10, wantLastPage: 3},
		{name: "single page", totalRecords: 3, page: 1, pageSize: 10, wantLastPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := NewMetadata(tt.totalRecords, tt.page, tt.pageSize)

			if metadata.LastPage != tt.wantLastPage {
				t.Errorf("LastPage = %d, want %d", metadata.LastPage, tt.wantLastPage)
			}
			if metadata.TotalRecords != tt.totalRecords {
				t.Errorf("TotalRecords = %d, want %d", metadata.TotalRecords, tt.totalRecords)
			}
		})
	}
}
