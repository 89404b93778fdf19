package mapping

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/price_dashboard/internal/apperrors"
)

// NormalizeDate resolves the date shapes found in the price CSVs to a calendar date:
//
//	DD/MM/YYYY  day first, slash separated
//	YYYY-MM-DD  dash separated, year first when the first segment has four characters
//	DD-MM-YYYY  dash separated otherwise
//
// Anything else is an apperrors.ErrMalformedRow.
func NormalizeDate(raw string) (civil.Date, error) {
	raw = strings.TrimSpace(raw)

	var year, month, day string
	switch {
	case strings.Contains(raw, "/"):
		parts := strings.Split(raw, "/")
		if len(parts) != 3 || len(strings.TrimSpace(parts[2])) != 4 {
			return civil.Date{}, fmt.Errorf("%w: unrecognised date '%s'", apperrors.ErrMalformedRow, raw)
		}
		day, month, year = parts[0], parts[1], parts[2]
	case strings.Contains(raw, "-"):
		parts := strings.Split(raw, "-")
		if len(parts) != 3 {
			return civil.Date{}, fmt.Errorf("%w: unrecognised date '%s'", apperrors.ErrMalformedRow, raw)
		}
		if len(strings.TrimSpace(parts[0])) == 4 {
			year, month, day = parts[0], parts[1], parts[2]
		} else {
			day, month, year = parts[0], parts[1], parts[2]
		}
		if len(strings.TrimSpace(year)) != 4 {
			return civil.Date{}, fmt.Errorf("%w: unrecognised date '%s'", apperrors.ErrMalformedRow, raw)
		}
	default:
		return civil.Date{}, fmt.Errorf("%w: unrecognised date '%s'", apperrors.ErrMalformedRow, raw)
	}

	y, errY := atoiPart(year)
	m, errM := atoiPart(month)
	d, errD := atoiPart(day)
	if errY != nil || errM != nil || errD != nil {
		return civil.Date{}, fmt.Errorf("%w: non-numeric date part in '%s'", apperrors.ErrMalformedRow, raw)
	}

	date := civil.Date{Year: y, Month: time.Month(m), Day: d}
	if !date.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: '%s' is not a calendar date", apperrors.ErrMalformedRow, raw)
	}
	return date, nil
}

func atoiPart(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty date part")
	}
	return strconv.Atoi(s)
}
