// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Machine readable error codes, clients branch on these rather than on messages
const (
	CodeNotFound     = "not-found"
	CodeForbidden    = "forbidden"
	CodeUnauthorized = "unauthorized"
	CodeInvalidInput = "invalid-input"
	CodeConflict     = "conflict"
	CodeInternal     = "internal"
)

// ErrorResponse is the JSON body of every non 2xx API response
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *ErrorResponse) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// Response wraps successful payloads
type Response struct {
	Data    any    `json:"data"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func WriteData(w http.ResponseWriter, status int, data any) error {
	return WriteJSON(w, status, Response{Data: data, Status: status})
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	return WriteJSON(w, status, ErrorResponse{Status: status, Message: message, Code: code})
}
