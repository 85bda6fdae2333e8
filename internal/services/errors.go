// Package services defines the business logic of the storefront.
// This file centralizes service-level error values so that handlers can map
// them to HTTP results with errors.Is.
package services

import "errors"

var (
	// ErrProductNotFound indicates that no product has the requested id.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound indicates that no custom order has the requested id.
	ErrOrderNotFound = errors.New("custom order not found")

	// ErrContactNotFound indicates that no contact submission has the requested id.
	ErrContactNotFound = errors.New("contact not found")

	// ErrUserNotFound indicates that no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyQuery is returned when a search query has no searchable terms.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrUnsupportedCurrency is returned for currencies other than KES and USD.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrInvalidAmount is returned for negative or unparsable amounts.
	ErrInvalidAmount = errors.New("amount must be a non-negative number")

	// ErrInvalidCredentials is returned when a username or password is blank.
	ErrInvalidCredentials = errors.New("username and password are required")
)
