package respond

import (
	"encoding/json"
	"net/http"
)

// Body is the envelope for successful tool responses.
// Text carries the rendered markdown shown to the end user.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Text    string `json:"text,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorDetail identifies a failed operation for programmatic callers.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorBody is the envelope for failed tool responses.
type ErrorBody struct {
	Status string      `json:"status"`
	Text   string      `json:"text,omitempty"`
	Error  ErrorDetail `json:"error"`
}

// JSON writes v as a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 envelope with rendered text and optional data
func OK(w http.ResponseWriter, text string, data any) {
	JSON(w, http.StatusOK, Body{Status: "ok", Text: text, Data: data})
}

// OKMessage writes a 200 envelope for soft outcomes (missing fields, no-op)
func OKMessage(w http.ResponseWriter, message, text string, data any) {
	JSON(w, http.StatusOK, Body{Status: "ok", Message: message, Text: text, Data: data})
}

// Created writes a 201 envelope with rendered text and data
func Created(w http.ResponseWriter, text string, data any) {
	JSON(w, http.StatusCreated, Body{Status: "ok", Text: text, Data: data})
}

// Error writes an error envelope with the given status code
func Error(w http.ResponseWriter, status int, text string, detail ErrorDetail) {
	JSON(w, status, ErrorBody{Status: "error", Text: text, Error: detail})
}

// ParseJSON decodes the request body into dest
func ParseJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}
