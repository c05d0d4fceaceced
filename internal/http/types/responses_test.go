// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		code     string
		message  string
		expected ErrorResponse
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			code:     CodeNotFound,
			message:  "profile not found",
			expected: ErrorResponse{Status: http.StatusNotFound, Code: CodeNotFound, Message: "profile not found"},
		},
		{
			name:     "no code",
			status:   http.StatusInternalServerError,
			message:  "boom",
			expected: ErrorResponse{Status: http.StatusInternalServerError, Message: "boom"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			if err := WriteError(rr, test.status, test.code, test.message); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rr.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %s", ct)
			}

			var got ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if !reflect.DeepEqual(got, test.expected) {
				t.Errorf("expected %+v, got %+v", test.expected, got)
			}
		})
	}
}

func TestWriteData(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := WriteData(rr, http.StatusCreated, map[string]string{"id": "house-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Data   map[string]string `json:"data"`
		Status int               `json:"status"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got.Status != http.StatusCreated || got.Data["id"] != "house-1" {
		t.Errorf("unexpected response %+v", got)
	}
}

func TestErrorResponse_Error(t *testing.T) {
	e := &ErrorResponse{Status: 404, Code: CodeNotFound, Message: "missing"}
	if e.Error() != "not-found: missing" {
		t.Errorf("unexpected error string %q", e.Error())
	}
}
