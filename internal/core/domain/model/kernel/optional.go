package kernel

import "github.com/oapi-codegen/nullable"

// Value returns the value held by n and true, or the zero value and false when
// n is unspecified or null.
func Value[T any](n nullable.Nullable[T]) (T, bool) {
	if !n.IsSpecified() || n.IsNull() {
		var zero T
		return zero, false
	}
	return n.MustGet(), true
}

// PointerOrNil maps a specified value to a pointer and both null and
// unspecified to nil.
func PointerOrNil[T any](n nullable.Nullable[T]) *T {
	v, ok := Value(n)
	if !ok {
		return nil
	}
	return &v
}

// TextOrNil is PointerOrNil for text columns: an empty string also maps to nil.
func TextOrNil(n nullable.Nullable[string]) *string {
	v, ok := Value(n)
	if !ok || v == "" {
		return nil
	}
	return &v
}

// EmptyToNil copies s, mapping nil and "" to nil.
func EmptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
