// Package httputil provides HTTP helpers for the arena API.
//
// # Overview
//
// The API speaks JSON in both directions. This package holds the pieces every
// handler repeats:
//
//   - [DecodeJSON]: bounded, strict request body decoding
//   - [WriteJSON]: JSON responses with a status code
//   - [WriteError]: coded error responses
//   - [StatusFor]: maps [errors.Code] values to HTTP status codes
//
// # Errors
//
// Error responses have a fixed shape so clients can branch on the code:
//
//	{"error": {"code": "INVALID_DIMENSION", "message": "width 4m below minimum 6m"}, "request_id": "…"}
//
// Validation failures (bad dimensions or heights, a rejected edit) map to
// 422 Unprocessable Entity; malformed requests map to 400.
package httputil
