package repositories

import "context"

// DataSource fetches the raw CSV bytes of the price dataset.
// Implementations wrap every failure with apperrors.ErrSourceUnavailable.
type DataSource interface {
	// Fetch reads the whole resource. It is the only blocking call of a load.
	Fetch(ctx context.Context) ([]byte, error)

	// Location describes where the data comes from (path or URL), for status and logs.
	Location() string
}
