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

package dbprep

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/solverkit/sudoku.go/puzzle"
)

/*

entries

*/

type dataFunction func(pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertStarters,
	}
	downFunctions = []dataFunction{
		deleteStarters,
	}
)

// DataUp: load the starter puzzles into the database.  You should
// do this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the starter puzzles from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}
	ctx := context.Background()

	// open the database, defer the close
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

starter puzzle library

*/

// the puzzles every fresh install starts with
type starterEntry struct {
	name      string
	signature string
}

var starterPuzzles = []starterEntry{
	{"classic", "" +
		"530070000" + "600195000" + "098000060" +
		"800060003" + "400803001" + "700020006" +
		"060000280" + "000419005" + "000080079"},
	{"standard-1", "" +
		"400003502" + "009506340" + "000000008" +
		"000034860" + "004605200" + "028790000" +
		"900000000" + "087302900" + "502900006"},
	{"standard-2", "" +
		"010506020" + "000003018" + "000070006" +
		"005000030" + "008090700" + "060000400" +
		"500040000" + "640200000" + "030901080"},
	{"standard-3", "" +
		"900450008" + "020000000" + "000172400" +
		"079000680" + "200000005" + "043000270" +
		"008325000" + "000000060" + "400016003"},
	{"standard-4", "" +
		"948050200" + "007803001" + "050070000" +
		"070000300" + "200605004" + "005000090" +
		"000060010" + "300509700" + "006010423"},
	{"standard-5", "" +
		"000000000" + "900507030" + "000100607" +
		"040060082" + "670000013" + "380010090" +
		"705008000" + "020309008" + "000000000"},
	{"standard-6", "" +
		"200800050" + "085000000" + "036750001" +
		"003040098" + "000305000" + "410060700" +
		"500007120" + "000000560" + "020000004"},
}

// validate the starter signatures at load time
func init() {
	for i, se := range starterPuzzles {
		if _, err := puzzle.ParseSignature(se.signature); err != nil {
			panic(fmt.Errorf("Can't happen! Starter puzzle %d is invalid: %v", i, err))
		}
	}
}

// Insert the starter puzzles as not-yet-solved records.
func insertStarters(tx pgx.Tx) error {
	ctx := context.Background()

	// idempotency: if any starter exists, we are done
	var count int64
	row := tx.QueryRow(ctx, "SELECT COUNT(*) FROM puzzles "+
		"WHERE name = $1", starterPuzzles[0].name)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("Database error looking for starter puzzles: %v", err)
	}
	if count > 0 {
		return nil
	}

	// get the timestamp of this load
	now := time.Now()

	for i, se := range starterPuzzles {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (signature, name, solution, solvable, solveTime, created) "+
				"VALUES ($1, $2, '', FALSE, 0, $3) "+
				"ON CONFLICT (signature) DO NOTHING",
			se.signature, se.name, now)
		if err != nil {
			return fmt.Errorf("Database error saving starter puzzle %d: %v", i, err)
		}
	}
	return nil
}

// Delete the starter puzzles.
func deleteStarters(tx pgx.Tx) error {
	ctx := context.Background()
	for i, se := range starterPuzzles {
		_, err := tx.Exec(ctx,
			"DELETE from puzzles where signature = $1", se.signature)
		if err != nil {
			return fmt.Errorf("Database error deleting starter puzzle %d: %v", i, err)
		}
	}
	return nil
}
