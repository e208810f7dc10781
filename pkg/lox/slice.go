// Package lox holds slice helpers missing from samber/lo.
package lox

// Map is lo.Map without the index argument, so named converters can be
// passed directly. The result is never nil.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
