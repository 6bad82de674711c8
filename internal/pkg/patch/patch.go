package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Changed reports whether applying ptr would alter current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}

// TrimmedString returns a trimmed copy of the patch value.
func TrimmedString(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	s := strings.TrimSpace(*ptr)
	return &s
}
