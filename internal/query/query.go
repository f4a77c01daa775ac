// Package query coerces loosely typed HTTP query parameters into validated
// pagination and filter values. Every function is pure: raw text in,
// clamped value out.
package query

import (
	"fmt"
	"strconv"
	"time"
)

// MaxLimit is the upper bound on any page size.
const MaxLimit = 100

// Page parses a page parameter. Non-numeric or non-positive input is
// treated as page 1.
func Page(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Limit parses a page-size parameter. Non-numeric input falls back to the
// resource default; the result is clamped to [1, MaxLimit].
func Limit(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = def
	}
	if n < 1 {
		n = 1
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	return n
}

// Offset returns the number of rows to skip for a page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// Pagination is the envelope attached to every list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the envelope for a page of a result set.
// TotalPages is ceil(total / limit).
func NewPagination(page, limit, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

// BoolFilter returns a true predicate only when the literal string "true"
// was supplied; any other value means the filter is absent.
func BoolFilter(raw string) *bool {
	if raw != "true" {
		return nil
	}
	t := true
	return &t
}

// Available returns the availability predicate. Absence defaults to
// available-only; only the literal string "false" selects unavailable items.
func Available(raw string) bool {
	return raw != "false"
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time parses an optional date parameter. Empty input yields a nil bound;
// unparseable input is an error.
func Time(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", raw)
}
