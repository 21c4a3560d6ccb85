package domain

import "fmt"

// Ticket is a claim on one specific (row, seat) position within one show session.
type Ticket struct {
	ID        int
	SessionID int
	Row       int
	Seat      int
}

// SeatValidationError reports the seat grid fields that fall outside a dome's
// seating grid. Fields maps the offending field name ("row" or "seat") to a
// message stating the acceptable inclusive range.
type SeatValidationError struct {
	Fields map[string]string
}

func (e *SeatValidationError) Error() string {
	return "seat position is outside the dome seating grid"
}

// ValidateTicket checks that a candidate (row, seat) lies within the dome's
// grid. Both fields are checked independently so a ticket that is out of range
// on both reports both at once. It is pure: the handler runs it on every
// requested ticket before opening the reservation transaction.
func ValidateTicket(row, seat int, dome Dome) error {
	fields := make(map[string]string)

	if row < 1 || row > dome.Rows {
		fields["row"] = fmt.Sprintf("row number must be in available range: (1, %d)", dome.Rows)
	}
	if seat < 1 || seat > dome.SeatsPerRow {
		fields["seat"] = fmt.Sprintf("seat number must be in available range: (1, %d)", dome.SeatsPerRow)
	}

	if len(fields) > 0 {
		return &SeatValidationError{Fields: fields}
	}

	return nil
}
