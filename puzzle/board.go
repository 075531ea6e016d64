// Package puzzle provides a model for standard 9x9 Sudoku
// puzzles and a backtracking solver over them.
//
// In this package, a Board is made of cells which are either
// empty (represented with a 0 value) or have an assigned value
// between 1 and 9 (inclusive).  Cells are designated by a (row,
// column) coordinate pair, each coordinate in the range 0
// through 8, with rows running top to bottom and columns left to
// right (English reading order).
//
// A board is well-formed when no row, column, or subtile (the
// nine non-overlapping 3x3 boxes that partition the grid)
// contains the same non-zero value twice.  The solver preserves
// well-formedness by construction: it only ever places values
// that the candidate evaluator has found legal.
package puzzle

/*

Board representation

*/

// Dimensions of a standard puzzle.  The solver and evaluator are
// written against these constants, not against literal 9s, but
// the package makes no attempt to support other board sizes.
const (
	SideLength = 9                       // cells per row, column, and box
	BoxLength  = 3                       // cells per box side
	CellCount  = SideLength * SideLength // cells per board
)

// A Board is a 9x9 Sudoku grid in row-major order.  A cell value
// of 0 means the cell is empty; values 1 through 9 are filled.
//
// Boards are owned by their callers and passed around by
// reference.  Solve mutates its board in place, so callers that
// want to keep the starting position should copy the board first
// (plain assignment copies a Board, since it's an array type).
type Board [SideLength][SideLength]int

// Empty reports whether the cell at the given coordinate has no
// assigned value.
func (b *Board) Empty(row, col int) bool {
	return b[row][col] == 0
}

// countEmpty returns the number of empty cells on the board.
func (b *Board) countEmpty() (count int) {
	for row := 0; row < SideLength; row++ {
		for col := 0; col < SideLength; col++ {
			if b[row][col] == 0 {
				count++
			}
		}
	}
	return
}

// Solved reports whether the board is completely and validly
// filled: every row, every column, and every box contains each
// of the values 1 through 9 exactly once.
func (b *Board) Solved() bool {
	for i := 0; i < SideLength; i++ {
		var row, col intset
		for j := 0; j < SideLength; j++ {
			if b[i][j] != 0 {
				row.insert(b[i][j])
			}
			if b[j][i] != 0 {
				col.insert(b[j][i])
			}
		}
		if len(row) != SideLength || len(col) != SideLength {
			return false
		}
	}
	for base := 0; base < SideLength; base++ {
		baseRow, baseCol := BoxLength*(base/BoxLength), BoxLength*(base%BoxLength)
		var box intset
		for r := baseRow; r < baseRow+BoxLength; r++ {
			for c := baseCol; c < baseCol+BoxLength; c++ {
				if b[r][c] != 0 {
					box.insert(b[r][c])
				}
			}
		}
		if len(box) != SideLength {
			return false
		}
	}
	return true
}

/*

Checked cell operations

The solver itself writes cells directly, because it only ever
places values the evaluator has approved.  These entries are for
interactive clients, which assign on behalf of a user and need
the checking.

*/

// Assign places a value in an empty cell, first checking that
// the coordinates and value are in range, that the cell is
// empty, and that the value is among the cell's candidates.  If
// any check fails, the board isn't modified and an Error is
// returned.
func (b *Board) Assign(row, col, val int) error {
	if row < 0 || row >= SideLength {
		return rangeError(RowAttribute, row, 0, SideLength-1)
	}
	if col < 0 || col >= SideLength {
		return rangeError(ColumnAttribute, col, 0, SideLength-1)
	}
	if val < 1 || val > SideLength {
		return rangeError(ValueAttribute, val, 1, SideLength)
	}
	if b[row][col] != 0 {
		return Error{
			Scope:     ArgumentScope,
			Attribute: ValueAttribute,
			Condition: DuplicateAssignmentCondition,
			Values:    ErrorData{val, b[row][col]},
		}
	}
	cs := b.Candidates(row, col)
	if _, ok := cs.find(val); !ok {
		return Error{
			Scope:     ArgumentScope,
			Attribute: ValueAttribute,
			Condition: NotInSetCondition,
			Values:    ErrorData{val, cs},
		}
	}
	b[row][col] = val
	return nil
}

// Clear empties a cell, first checking that the coordinates are
// in range.  Clearing an already empty cell is allowed and does
// nothing.
func (b *Board) Clear(row, col int) error {
	if row < 0 || row >= SideLength {
		return rangeError(RowAttribute, row, 0, SideLength-1)
	}
	if col < 0 || col >= SideLength {
		return rangeError(ColumnAttribute, col, 0, SideLength-1)
	}
	b[row][col] = 0
	return nil
}

/*

Integer sets

*/

// An intset is a set of integers, represented as a sorted slice.
// We use intsets to represent candidate value sets, which the
// contract requires to be ordered (ascending) and deduplicated.
type intset []int

// newIntsetRange: Make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	// see https://github.com/golang/go/wiki/SliceTricks
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
