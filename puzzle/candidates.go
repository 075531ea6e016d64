package puzzle

/*

Candidate evaluation

*/

// Candidates returns the values that can legally fill the given
// cell: the set of values 1 through 9 that do not already appear
// in the cell's row, its column, or its containing 3x3 box,
// ascending by value.  An empty result means the cell is a dead
// end under the current assignments.
//
// The cell is assumed to be empty; Candidates doesn't check.
// (Asking about a filled cell gives an answer that ignores the
// cell's own value, which is never what a solver wants.)
//
// Candidates is a pure function of the board state: it never
// modifies the board, and its result shares no storage with it.
// Results are recomputed on every call rather than maintained
// incrementally, which keeps the solver's undo step trivial.
func (b *Board) Candidates(row, col int) intset {
	cs := newIntsetRange(SideLength)

	// Mark off the row and the column.  Removing a value that
	// was already removed (or removing 0) is a no-op, so cells
	// shared between the scans need no special handling.
	for i := 0; i < SideLength; i++ {
		cs.remove(b[row][i])
		cs.remove(b[i][col])
	}

	// Mark off the containing box.
	baseRow, baseCol := row-row%BoxLength, col-col%BoxLength
	for r := baseRow; r < baseRow+BoxLength; r++ {
		for c := baseCol; c < baseCol+BoxLength; c++ {
			cs.remove(b[r][c])
		}
	}
	return cs
}
