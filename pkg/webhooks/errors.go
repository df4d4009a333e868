// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigIncomplete = errors.New("incomplete configuration")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("webhook not found")
	ErrUnknownProvider  = errors.New("unknown provider")
	ErrDuplicatePath    = errors.New("webhook path already in use")
	ErrInvalidInput     = errors.New("invalid input")
)

// IncompleteConfigError lists the required provider fields a config lacks.
type IncompleteConfigError struct {
	Provider string
	Missing  []string
}

func (e *IncompleteConfigError) Error() string {
	return fmt.Sprintf("%s: %s missing %s", ErrConfigIncomplete, e.Provider, strings.Join(e.Missing, ", "))
}

func (e *IncompleteConfigError) Is(target error) bool {
	return target == ErrConfigIncomplete
}
