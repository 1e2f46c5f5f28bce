// Package rot provides the wraparound arithmetic for rotating positions within an alphabet.
package rot

// Norm returns n reduced into the range [0, length).
func Norm(n, length int) int {
	if length <= 0 {
		panic("rot: length must be positive")
	}
	n %= length
	if n < 0 {
		n += length
	}
	return n
}

// Index returns the position reached by moving n places from pos, wrapping around length.
func Index(pos, n, length int) int {
	return Norm(pos+Norm(n, length), length)
}

// Inverse returns the offset that undoes a rotation by n.
func Inverse(n, length int) int {
	return Norm(length-Norm(n, length), length)
}
