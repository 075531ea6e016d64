package puzzle

/*

Sudoku puzzle solver

The solver is a depth-first search with a most-constrained-cell
heuristic:

1. Scan every empty cell on the board, computing its candidate
values, and keep the cell with the fewest.  Branching on the
most constrained cell keeps the search tree narrow and surfaces
failures early.

2. If the scan finds no empty cell, the puzzle is solved.  If it
finds a cell with no candidates, this board position can't be
completed, so report failure to the caller (who will try its own
next candidate).

3. Otherwise try the chosen cell's candidates in ascending
order: place one, recurse, and on failure let the next candidate
overwrite it.  When the candidates run out, clear the cell and
report failure, which leaves the board exactly as it was at
entry.

There's no explicit undo log: the place/recurse/clear pairing in
step 3 restores the board on every failing path, so a failed
call never leaks a partial assignment to its caller.  Recursion
depth is bounded by the number of empty cells (at most 81).

*/

// A move is the branch point currently being explored: a cell
// and the ordered candidate values that remain to be tried
// there.  Moves are created fresh at each solver invocation and
// discarded on return; nothing about a move is persisted.
type move struct {
	row, col int
	values   intset
}

// The verdict of a board scan: the board is solved, some empty
// cell is a dead end, or there is a cell worth branching on.
type verdict int

const (
	verdictSolved verdict = iota
	verdictDeadEnd
	verdictBranching
)

// chooseMove scans the whole board in row-major order for the
// most constrained empty cell.  Ties go to the first cell
// encountered in scan order.  Two early exits: a cell with no
// candidates ends the scan immediately with a dead-end verdict,
// and a cell with exactly one candidate ends it with that cell
// as the move, since no better choice can exist.
func (b *Board) chooseMove() (move, verdict) {
	var best move
	found := false
	for row := 0; row < SideLength; row++ {
		for col := 0; col < SideLength; col++ {
			if b[row][col] != 0 {
				continue
			}
			cs := b.Candidates(row, col)
			if len(cs) == 0 {
				// no value fits this cell, so no move anywhere
				// on the board can lead to a solution
				return move{}, verdictDeadEnd
			}
			if !found || len(cs) < len(best.values) {
				best, found = move{row, col, cs}, true
				if len(cs) == 1 {
					return best, verdictBranching
				}
			}
		}
	}
	if !found {
		return move{}, verdictSolved
	}
	return best, verdictBranching
}

// Solve fills the board's empty cells in place, returning true
// when the board is completely and validly filled.  A true
// return from a board with no empty cells means the board was
// already solved; solving is idempotent.
//
// On a false return the puzzle has no solution from the given
// position, and the board is restored to exactly the state it
// had at the call.  Callers can therefore retry other branches
// (or report failure) without keeping their own copy.
//
// Failure is a logical outcome of the search, not an error, so
// Solve has no error return.
func (b *Board) Solve() bool {
	m, v := b.chooseMove()
	switch v {
	case verdictSolved:
		return true
	case verdictDeadEnd:
		return false
	}
	for _, val := range m.values {
		b[m.row][m.col] = val
		if b.Solve() {
			return true
		}
		// the failed recursive call has already reverted its own
		// placements; ours is overwritten by the next candidate
	}
	b[m.row][m.col] = 0
	return false
}
