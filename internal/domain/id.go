package domain

// IsValidID reports whether n can identify a stored row.
func IsValidID(n int) bool { return n > 0 }
