package puzzle

import (
	"reflect"
	"testing"
)

/*

Test Values

*/

// boardFromValues builds a board from a flat row-major value
// list, 0 for empty.  Panics on bad input; only used with the
// literal grids below.
func boardFromValues(values []int) *Board {
	if len(values) != CellCount {
		panic("test grid is not 81 values")
	}
	var b Board
	for i, v := range values {
		b[i/SideLength][i%SideLength] = v
	}
	return &b
}

var (
	// the classic example puzzle and its unique solution
	classicValues = []int{
		5, 3, 0, 0, 7, 0, 0, 0, 0,
		6, 0, 0, 1, 9, 5, 0, 0, 0,
		0, 9, 8, 0, 0, 0, 0, 6, 0,
		8, 0, 0, 0, 6, 0, 0, 0, 3,
		4, 0, 0, 8, 0, 3, 0, 0, 1,
		7, 0, 0, 0, 2, 0, 0, 0, 6,
		0, 6, 0, 0, 0, 0, 2, 8, 0,
		0, 0, 0, 4, 1, 9, 0, 0, 5,
		0, 0, 0, 0, 8, 0, 0, 7, 9,
	}
	classicSolvedValues = []int{
		5, 3, 4, 6, 7, 8, 9, 1, 2,
		6, 7, 2, 1, 9, 5, 3, 4, 8,
		1, 9, 8, 3, 4, 2, 5, 6, 7,
		8, 5, 9, 7, 6, 1, 4, 2, 3,
		4, 2, 6, 8, 5, 3, 7, 9, 1,
		7, 1, 3, 9, 2, 4, 8, 5, 6,
		9, 6, 1, 5, 3, 7, 2, 8, 4,
		2, 8, 7, 4, 1, 9, 6, 3, 5,
		3, 4, 5, 2, 8, 6, 1, 7, 9,
	}
	oneStarValues = []int{
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	}
	oneStarSolvedValues = []int{
		4, 6, 1, 8, 7, 3, 5, 9, 2,
		8, 7, 9, 5, 2, 6, 3, 4, 1,
		2, 5, 3, 4, 1, 9, 6, 7, 8,
		7, 1, 5, 2, 3, 4, 8, 6, 9,
		3, 9, 4, 6, 8, 5, 2, 1, 7,
		6, 2, 8, 7, 9, 1, 4, 3, 5,
		9, 4, 6, 1, 5, 8, 7, 2, 3,
		1, 8, 7, 3, 6, 2, 9, 5, 4,
		5, 3, 2, 9, 4, 7, 1, 8, 6,
	}
	sixStarValues = []int{
		9, 0, 0, 4, 5, 0, 0, 0, 8,
		0, 2, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 7, 2, 4, 0, 0,
		0, 7, 9, 0, 0, 0, 6, 8, 0,
		2, 0, 0, 0, 0, 0, 0, 0, 5,
		0, 4, 3, 0, 0, 0, 2, 7, 0,
		0, 0, 8, 3, 2, 5, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 6, 0,
		4, 0, 0, 0, 1, 6, 0, 0, 3,
	}
	sixStarSolvedValues = []int{
		9, 6, 1, 4, 5, 3, 7, 2, 8,
		7, 2, 4, 6, 8, 9, 5, 3, 1,
		8, 3, 5, 1, 7, 2, 4, 9, 6,
		5, 7, 9, 2, 3, 1, 6, 8, 4,
		2, 8, 6, 9, 4, 7, 3, 1, 5,
		1, 4, 3, 5, 6, 8, 2, 7, 9,
		6, 1, 8, 3, 2, 5, 9, 4, 7,
		3, 5, 7, 8, 9, 4, 1, 6, 2,
		4, 9, 2, 7, 1, 6, 8, 5, 3,
	}
	chronTwoValues = []int{
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		9, 0, 0, 5, 0, 7, 0, 3, 0,
		0, 0, 0, 1, 0, 0, 6, 0, 7,
		0, 4, 0, 0, 6, 0, 0, 8, 2,
		6, 7, 0, 0, 0, 0, 0, 1, 3,
		3, 8, 0, 0, 1, 0, 0, 9, 0,
		7, 0, 5, 0, 0, 8, 0, 0, 0,
		0, 2, 0, 3, 0, 9, 0, 0, 8,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	chronTwoSolvedValues = []int{
		1, 5, 7, 8, 3, 6, 9, 2, 4,
		9, 6, 4, 5, 2, 7, 8, 3, 1,
		2, 3, 8, 1, 9, 4, 6, 5, 7,
		5, 4, 1, 9, 6, 3, 7, 8, 2,
		6, 7, 9, 4, 8, 2, 5, 1, 3,
		3, 8, 2, 7, 1, 5, 4, 9, 6,
		7, 1, 5, 2, 4, 8, 3, 6, 9,
		4, 2, 6, 3, 5, 9, 1, 7, 8,
		8, 9, 3, 6, 7, 1, 2, 4, 5,
	}
	// a valid complete grid, for already-solved cases
	completeValues = []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		4, 5, 6, 7, 8, 9, 1, 2, 3,
		7, 8, 9, 1, 2, 3, 4, 5, 6,
		2, 3, 4, 5, 6, 7, 8, 9, 1,
		5, 6, 7, 8, 9, 1, 2, 3, 4,
		8, 9, 1, 2, 3, 4, 5, 6, 7,
		3, 4, 5, 6, 7, 8, 9, 1, 2,
		6, 7, 8, 9, 1, 2, 3, 4, 5,
		9, 1, 2, 3, 4, 5, 6, 7, 8,
	}
	// cell (0,0) is empty and has no legal value: its row rules
	// out 2 through 9 and its column rules out 1.  The grid has
	// no conflicting placements, so only the search can fail.
	contradictionValues = []int{
		0, 2, 3, 4, 5, 6, 7, 8, 9,
		1, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

/*

move selection

*/

func TestChooseMoveSolved(t *testing.T) {
	b := boardFromValues(completeValues)
	m, v := b.chooseMove()
	if v != verdictSolved {
		t.Errorf("TestChooseMoveSolved: verdict %v (expected solved), move %+v", v, m)
	}
}

func TestChooseMoveDeadEnd(t *testing.T) {
	b := boardFromValues(contradictionValues)
	m, v := b.chooseMove()
	if v != verdictDeadEnd {
		t.Errorf("TestChooseMoveDeadEnd: verdict %v (expected dead end), move %+v", v, m)
	}
}

func TestChooseMoveBranching(t *testing.T) {
	// on the empty board every cell has all 9 candidates, so the
	// row-major tie-break picks the top-left cell
	var b Board
	m, v := b.chooseMove()
	if v != verdictBranching {
		t.Fatalf("TestChooseMoveBranching: verdict %v (expected branching)", v)
	}
	if m.row != 0 || m.col != 0 || !reflect.DeepEqual(m.values, newIntsetRange(SideLength)) {
		t.Errorf("TestChooseMoveBranching: move %+v (expected cell (0,0) values 1-9)", m)
	}
}

func TestChooseMoveSingleCandidate(t *testing.T) {
	// the first single-candidate cell of the classic puzzle in
	// scan order is the center cell, which can only hold 5; the
	// scan must stop there even though cells with two candidates
	// appear earlier
	b := boardFromValues(classicValues)
	m, v := b.chooseMove()
	if v != verdictBranching {
		t.Fatalf("TestChooseMoveSingleCandidate: verdict %v (expected branching)", v)
	}
	if m.row != 4 || m.col != 4 || !reflect.DeepEqual(m.values, intset{5}) {
		t.Errorf("TestChooseMoveSingleCandidate: move %+v (expected cell (4,4) values [5])", m)
	}
}

func TestChooseMoveSingleCandidateStopsScan(t *testing.T) {
	// give an early cell exactly one candidate; later cells with
	// one candidate must not displace it
	b := boardFromValues(completeValues)
	b[0][0], b[8][8] = 0, 0
	m, v := b.chooseMove()
	if v != verdictBranching {
		t.Fatalf("TestChooseMoveSingleCandidateStopsScan: verdict %v (expected branching)", v)
	}
	if m.row != 0 || m.col != 0 || !reflect.DeepEqual(m.values, intset{1}) {
		t.Errorf("TestChooseMoveSingleCandidateStopsScan: move %+v (expected cell (0,0) values [1])", m)
	}
}

/*

solving

*/

type solveTestcase struct {
	name   string
	start  []int
	solved bool
	finish []int // nil means expect the start values back
}

func TestSolve(t *testing.T) {
	tcs := []solveTestcase{
		solveTestcase{"classic", classicValues, true, classicSolvedValues},
		solveTestcase{"one-star", oneStarValues, true, oneStarSolvedValues},
		solveTestcase{"six-star", sixStarValues, true, sixStarSolvedValues},
		solveTestcase{"chron-two", chronTwoValues, true, chronTwoSolvedValues},
		solveTestcase{"already-solved", completeValues, true, completeValues},
		solveTestcase{"contradiction", contradictionValues, false, nil},
	}
	for _, tc := range tcs {
		b := boardFromValues(tc.start)
		entry := *b // snapshot for the restore check
		solved := b.Solve()
		if solved != tc.solved {
			t.Errorf("TestSolve %s: Solve returned %v (expected %v)", tc.name, solved, tc.solved)
			continue
		}
		if !tc.solved {
			if *b != entry {
				t.Errorf("TestSolve %s: failed solve modified the board:\n%v", tc.name, b)
			}
			continue
		}
		if !b.Solved() {
			t.Errorf("TestSolve %s: solved board doesn't verify:\n%v", tc.name, b)
		}
		if tc.finish != nil {
			if want := boardFromValues(tc.finish); *b != *want {
				t.Errorf("TestSolve %s: solved board is:\n%v(expected:\n%v)", tc.name, b, want)
			}
		}
	}
}

func TestSolveSpotChecks(t *testing.T) {
	// a handful of fixed cells of the classic solution, checked
	// individually in case the full-grid comparison ever changes
	b := boardFromValues(classicValues)
	if !b.Solve() {
		t.Fatalf("TestSolveSpotChecks: classic puzzle didn't solve")
	}
	checks := []struct{ row, col, val int }{
		{0, 2, 4}, {2, 0, 1}, {4, 4, 5}, {8, 0, 3}, {8, 3, 2},
	}
	for _, c := range checks {
		if b[c.row][c.col] != c.val {
			t.Errorf("TestSolveSpotChecks: cell (%d,%d) is %d (expected %d)",
				c.row, c.col, b[c.row][c.col], c.val)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	b := boardFromValues(oneStarValues)
	if !b.Solve() {
		t.Fatalf("TestSolveIdempotent: first solve failed")
	}
	first := *b
	if !b.Solve() {
		t.Errorf("TestSolveIdempotent: second solve failed")
	}
	if *b != first {
		t.Errorf("TestSolveIdempotent: second solve changed the board:\n%v", b)
	}
}

func TestSolveNoGivens(t *testing.T) {
	// the empty board is solvable; the solver just has to pick
	// any valid completion
	var b Board
	if !b.Solve() {
		t.Fatalf("TestSolveNoGivens: empty board didn't solve")
	}
	if !b.Solved() {
		t.Errorf("TestSolveNoGivens: completion doesn't verify:\n%v", &b)
	}
	if n := b.countEmpty(); n != 0 {
		t.Errorf("TestSolveNoGivens: %d cells still empty", n)
	}
}
