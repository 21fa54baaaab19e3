// Package types holds the JSON envelopes shared by every endpoint the
// storefront and admin dashboard call. The responses package writes them;
// middleware and handler tests decode them to assert on wire shape.
package types

// SuccessEnvelope wraps every 2xx payload, from cart snapshots to the
// admin CSV export receipt.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape. Details carries per-field validation
// messages when present and is omitted otherwise.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
