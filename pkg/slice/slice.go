package slice

func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func Contains[T comparable](s []T, value T) bool {
	for _, a := range s {
		if a == value {
			return true
		}
	}
	return false
}

// Intersects reports whether the two slices share at least one value.
func Intersects[T comparable](s1 []T, s2 []T) bool {
	for _, a := range s1 {
		if Contains(s2, a) {
			return true
		}
	}
	return false
}
