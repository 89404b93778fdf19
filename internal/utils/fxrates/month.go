package fxrates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
)

// Month is a calendar month addressed as a running index (year*12 + month-1),
// which makes month arithmetic a subtraction.
type Month int

// ParseMonth parses a YYYY-MM key.
func ParseMonth(key string) (Month, error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: month key must be YYYY-MM, got '%s'", apperrors.ErrValidation, key)
	}
	y, errY := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("%w: month key must be YYYY-MM, got '%s'", apperrors.ErrValidation, key)
	}
	return MonthOf(y, m), nil
}

// MonthOf builds a Month from a year and a 1-based month number.
func MonthOf(year, month int) Month {
	return Month(year*12 + month - 1)
}

// Year returns the calendar year.
func (m Month) Year() int { return int(m) / 12 }

// Number returns the 1-based month number.
func (m Month) Number() int { return int(m)%12 + 1 }

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), m.Number())
}
