package models

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is used when a filter does not set Limit.
const DefaultPageSize = 10

// Page is one page of a paginated collection.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Filter parameter helpers. Keeping the stripping rules in one place
// guarantees that two logically-equivalent filters produce identical
// query strings, and therefore identical cache keys.

func addPagination(v url.Values, page, limit int) {
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 && limit != DefaultPageSize {
		v.Set("limit", strconv.Itoa(limit))
	}
}

func addString(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}

func addStrings(v url.Values, key string, values []string) {
	cleaned := make([]string, 0, len(values))
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) > 0 {
		v.Set(key, strings.Join(cleaned, ","))
	}
}

func addBool(v url.Values, key string, value bool) {
	if value {
		v.Set(key, "true")
	}
}

func addBoolPtr(v url.Values, key string, value *bool) {
	if value != nil {
		v.Set(key, strconv.FormatBool(*value))
	}
}
