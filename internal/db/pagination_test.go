// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import "testing"

func TestPage(t *testing.T) {
	tests := []struct {
		name          string
		page, size    int64
		limit, offset uint64
	}{
		{name: "defaults", page: 0, size: 0, limit: 100, offset: 0},
		{name: "first page", page: 1, size: 20, limit: 20, offset: 0},
		{name: "third page", page: 3, size: 20, limit: 20, offset: 40},
		{name: "negative page", page: -4, size: 10, limit: 10, offset: 0},
		{name: "size capped", page: 2, size: 10000, limit: 500, offset: 500},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			limit, offset := Page(test.page, test.size)
			if limit != test.limit || offset != test.offset {
				t.Fatalf("expected limit %d offset %d, got %d %d", test.limit, test.offset, limit, offset)
			}
		})
	}
}
