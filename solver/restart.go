package solver

// luby returns the index-th term of the Luby sequence
// (1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,...) scaled by restartFirst, giving the
// conflict budget for the restart-th search phase. Kept as a standalone
// pure function so it can be tested in isolation.
func luby(restartFirst, index int) int {
	var size, seq int
	for size, seq = 1, 0; size < index+1; seq, size = seq+1, 2*size+1 {
	}
	for size-1 != index {
		size = (size - 1) >> 1
		seq--
		index = index % size
	}
	result := 1
	for i := 0; i < seq; i++ {
		result *= 2
	}
	return result * restartFirst
}
