// Package handlers defines the HTTP-layer error codes of the storefront API.
//
// Every error response carries one of these codes next to a human-readable
// message, so clients can branch on the code while showing the message.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "validation_failed",
//	  "message": "Invalid order data",
//	  "errors": [{"field": "email", "tag": "email", "message": "email must be a valid email address"}]
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidation       = "validation_failed"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Operation failures.
	ErrCodeListFailed   = "list_failed"
	ErrCodeCreateFailed = "create_failed"
)

// Messages returned to clients. They are part of the public contract.
const (
	msgProductsFailed         = "Failed to fetch products"
	msgProductsCategoryFailed = "Failed to fetch products by category"
	msgProductFailed          = "Failed to fetch product"
	msgProductNotFound        = "Product not found"
	msgSearchFailed           = "Failed to search products"
	msgInvalidOrder           = "Invalid order data"
	msgOrderCreateFailed      = "Failed to create custom order"
	msgOrdersFailed           = "Failed to fetch custom orders"
	msgOrderFailed            = "Failed to fetch custom order"
	msgOrderNotFound          = "Custom order not found"
	msgInvalidContact         = "Invalid contact data"
	msgContactFailed          = "Failed to submit contact form"
	msgContactsFailed         = "Failed to fetch contact submissions"
	msgRateFailed             = "Failed to fetch exchange rate"
)
