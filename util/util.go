package util

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// InRange reports whether 0 <= v < limit.
func InRange(v, limit int) bool {
	return v >= 0 && v < limit
}
