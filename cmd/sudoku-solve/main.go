// sudoku.go - a command-line Sudoku solver and puzzle library.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// Batch solver: load a puzzle file, print it, solve it, print
// the solution and the time the search took.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/solverkit/sudoku.go/puzzle"
)

// the puzzle file used when no argument is given
const defaultPuzzleFile = "puzzle0.dat"

// exit codes, one per failure mode
const (
	exitTooManyArgs    = 1
	exitLoadFailure    = 2
	exitDefaultFailure = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run does all the work of main, parameterized for testing.
func run(args []string, out io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(out, "Usage: sudoku-solve [puzzle-file]\n")
		return exitTooManyArgs
	}

	board, err := loadPuzzle(pick(args))
	if err != nil {
		fmt.Fprintf(out, "%v\n", err)
		if len(args) == 1 {
			return exitLoadFailure
		}
		return exitDefaultFailure
	}

	fmt.Fprintf(out, "   Unsolved Puzzle\n---------------------\n")
	fmt.Fprintf(out, "%s", board.String())

	start := time.Now()
	solved := board.Solve()
	elapsed := time.Since(start).Microseconds()

	if solved {
		fmt.Fprintf(out, "\n\n   Solved Puzzle\n---------------------\n")
		fmt.Fprintf(out, "%s", board.String())
	} else {
		fmt.Fprintf(out, "\n\nThe puzzle has no solution.\n")
	}
	fmt.Fprintf(out, "\nTime taken: %d microseconds.\n", elapsed)
	return 0
}

// pick the puzzle file to load
func pick(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return defaultPuzzleFile
}

// loadPuzzle reads a board from the named file.
func loadPuzzle(filename string) (*puzzle.Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("File %s not found.", filename)
	}
	defer f.Close()
	return puzzle.Read(f)
}
