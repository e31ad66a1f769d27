package utils

// IfThenElse is a ternary for small value choices such as metric labels.
func IfThenElse[T any](condition bool, thenValue T, elseValue T) T {
	if condition {
		return thenValue
	}
	return elseValue
}
