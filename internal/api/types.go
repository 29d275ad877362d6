// Package api holds the response envelopes and request helpers shared by all handlers.
package api

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a write. Generated ids are not returned;
// callers re-list to discover them.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// OK is the canonical write acknowledgement.
var OK = SuccessResponse{Success: true}
