package rest

// ErrorResponse is the JSON error payload returned by API handlers: a
// general message plus a human-readable detail string.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
