package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrSourceUnavailable indicates that the primary CSV source could not be fetched or read.
// The dataset service recovers from it by loading the embedded fallback dataset.
var ErrSourceUnavailable = errors.New("data source unavailable")

// ErrMalformedRow indicates that a CSV data line could not be resolved to a calendar date.
var ErrMalformedRow = errors.New("malformed row")
