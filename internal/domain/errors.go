package domain

import "errors"

// ErrValidation is returned when request input fails a business rule
// (missing fuel efficiency, unknown fuel type). Handlers map it to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrNoPriceData is returned when price resolution exhausted both the
// regional series and the national fallback without a usable data point.
// Handlers map it to HTTP 500; it is not retried.
var ErrNoPriceData = errors.New("no fuel price data available")

// ErrNotFound is returned by vehicle-data lookups when the requested
// vehicle or its MPG figure does not exist. Handlers map it to HTTP 404.
var ErrNotFound = errors.New("not found")
