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

func TestWriteResponses(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter) error
		status   int
		expected map[string]any
	}{
		{
			name:     "data",
			write:    func(w http.ResponseWriter) error { return WriteJSON(w, http.StatusCreated, "created", map[string]string{"id": "1"}) },
			status:   http.StatusCreated,
			expected: map[string]any{"status": float64(201), "message": "created", "data": map[string]any{"id": "1"}},
		},
		{
			name:     "error with default message",
			write:    func(w http.ResponseWriter) error { return WriteError(w, http.StatusNotFound, "", nil) },
			status:   http.StatusNotFound,
			expected: map[string]any{"status": float64(404), "message": "Not Found"},
		},
		{
			name:   "page",
			write:  func(w http.ResponseWriter) error { return WritePage(w, "ok", []string{}, 2, 50) },
			status: http.StatusOK,
			expected: map[string]any{
				"status":  float64(200),
				"message": "ok",
				"data":    []any{},
				"_meta":   map[string]any{"page": float64(2), "size": float64(50)},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			if err := test.write(rr); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rr.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, rr.Code)
			}

			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %s", ct)
			}

			var body map[string]any
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}

			if !reflect.DeepEqual(body, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, body)
			}
		})
	}
}
