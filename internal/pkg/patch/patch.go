// Package patch applies partial updates where nil means "leave as is".
package patch

import "strings"

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Set overwrites *dst with *src when src is non-nil.
func Set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// SetTrimmed is Set for text fields; surrounding whitespace is dropped.
func SetTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// SetSlice replaces *dst when src is non-nil. An empty, non-nil slice clears it.
func SetSlice[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = src
	}
}
