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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solverkit/sudoku.go/dbprep"
)

func TestClearStorage(t *testing.T) {
	os.Setenv("DBPREP_PATH", filepath.Join("..", "..", "dbprep"))
	if err := dbprep.ClearCache(); err != nil {
		t.Skipf("Storage not available: %v", err)
	}
	if err := clearStorage(); err != nil {
		t.Errorf("%v", err)
	}
}
