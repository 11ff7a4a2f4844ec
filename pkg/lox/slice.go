package lox

// Map is lo.Map without the index argument.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// Take returns at most n leading elements.
func Take[T any](collection []T, n int) []T {
	if n < 0 || n >= len(collection) {
		return collection
	}

	return collection[:n]
}
