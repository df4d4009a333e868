// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope every API endpoint answers with.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"_meta,omitempty"`
}

type Meta struct {
	Page int64 `json:"page,omitempty"`
	Size int64 `json:"size,omitempty"`
}

// WriteJSON encodes the envelope, an encoding failure after headers are sent can only be reported by the caller.
func WriteJSON(w http.ResponseWriter, status int, message string, data any) error {
	return write(w, Response{Status: status, Message: message, Data: data})
}

func WritePage(w http.ResponseWriter, message string, data any, page, size int64) error {
	return write(w, Response{Status: http.StatusOK, Message: message, Data: data, Meta: &Meta{Page: page, Size: size}})
}

// WriteError answers with the status text when message is empty.
func WriteError(w http.ResponseWriter, status int, message string, data any) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return write(w, Response{Status: status, Message: message, Data: data})
}

func write(w http.ResponseWriter, r Response) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.Status)
	return json.NewEncoder(w).Encode(r)
}
