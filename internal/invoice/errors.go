package invoice

import "errors"

// Invoice construction and override errors.
var (
	// ErrMissingLineItems is returned when an operation that requires at
	// least one line item is applied to an empty invoice.
	ErrMissingLineItems = errors.New("invoice has no line items")

	// ErrPaymentExceedsTotal is returned when the supplied paid amount
	// exceeds the computed net total.
	ErrPaymentExceedsTotal = errors.New("amount paid exceeds the net total")

	// ErrConfigParse is returned when a configuration cannot be
	// deserialized as either JSON or YAML.
	ErrConfigParse = errors.New("config is neither valid JSON nor valid YAML")
)
