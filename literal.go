package wlsat

// A literal is a signed integer. Its variable is its absolute value, and
// its polarity is given by its sign. Variables are not required to be
// contiguous: the solver indexes only over the literals that actually
// appear in the input.

// variable returns the variable that literal l belongs to.
func variable(l int) int {
	if l < 0 {
		return -l
	}
	return l
}

// opposite returns the complement of literal l.
func opposite(l int) int {
	return -l
}
