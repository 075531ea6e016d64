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

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/solverkit/sudoku.go/puzzle"
)

/*

solved-puzzle records

*/

// A Record is the stored form of one solve attempt: a starting
// position, its solution (if one was found), and how long the
// search took.  Records are keyed by the starting position's
// signature.  They are JSON serializable so they can go into the
// cache as well as the database.
type Record struct {
	Signature string    // signature of the starting position
	Name      string    // user-facing name, empty for ad hoc puzzles
	Solution  string    // signature of the solution, empty if unsolvable
	Solvable  bool      // whether the search found a solution
	SolveTime int64     // microseconds spent in the search
	Created   time.Time // when the record was first saved
}

// Board returns the record's starting position.
func (r *Record) Board() (*puzzle.Board, error) {
	return puzzle.ParseSignature(r.Signature)
}

// SolutionBoard returns the record's solution, or nil if the
// puzzle was recorded as unsolvable.
func (r *Record) SolutionBoard() (*puzzle.Board, error) {
	if !r.Solvable {
		return nil, nil
	}
	return puzzle.ParseSignature(r.Solution)
}

// LookupSolution first checks the cache, then the database, for a
// record of the given starting position.  If it loads from the
// database, it caches the result.  Returns whether a record was
// found.
func LookupSolution(signature string) (*Record, bool) {
	r := &Record{Signature: signature}
	if r.cacheLoad() {
		return r, true
	}
	// cache miss, load from database and save to cache
	if !r.databaseLoad() {
		return nil, false
	}
	r.cacheInsert()
	return r, true
}

// SaveResult saves a solve result to the database and the cache.
// Saving again under the same signature replaces the old record's
// result fields but keeps its name and creation time, so solving
// a library puzzle doesn't strip its name.
func SaveResult(r *Record) {
	prior := &Record{Signature: r.Signature}
	if prior.databaseLoad() {
		if r.Name == "" {
			r.Name = prior.Name
		}
		if r.Created.IsZero() {
			r.Created = prior.Created
		}
	}
	if r.Created.IsZero() {
		r.Created = time.Now()
	}
	r.databaseUpsert()
	r.cacheInsert()
}

// AllRecords returns every saved record, most recent first.
func AllRecords() []*Record {
	var records []*Record
	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			"SELECT signature, name, solution, solvable, solveTime, created "+
				"FROM puzzles ORDER BY created DESC")
		if err != nil {
			return fmt.Errorf("Failure listing records: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			r := &Record{}
			err := rows.Scan(&r.Signature, &r.Name, &r.Solution,
				&r.Solvable, &r.SolveTime, &r.Created)
			if err != nil {
				return fmt.Errorf("Failure scanning record: %v", err)
			}
			records = append(records, r)
		}
		return rows.Err()
	}
	pgExecute(body)
	return records
}

// key: compute the cache key for a Record.
func (r *Record) key() string {
	return "PUZ:" + r.Signature
}

// cacheLoad: load an already cached record.  Returns whether the
// record was found in the cache.
func (r *Record) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", r.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading record %q: %v", r.Signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var sr *Record
	err := json.Unmarshal(bytes, &sr)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal record %q: %v", r.Signature, err))
	}
	if sr.Signature != r.Signature {
		panic(fmt.Errorf("Cached record (signature %q) found for puzzle %q!",
			sr.Signature, r.Signature))
	}
	*r = *sr
	return true
}

// databaseLoad: load a record from the database.  Returns whether
// a record with the given signature was found.
func (r *Record) databaseLoad() (found bool) {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(context.Background(),
			"SELECT name, solution, solvable, solveTime, created FROM puzzles "+
				"WHERE signature = $1", r.Signature)
		err := row.Scan(&r.Name, &r.Solution, &r.Solvable, &r.SolveTime, &r.Created)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up record %q: %v", r.Signature, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return
}

// cacheInsert: insert a record into the cache.  Replaces any
// existing record with the same signature.
func (r *Record) cacheInsert() {
	bytes, e := json.Marshal(r)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal record %q: %v", r.Signature, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", r.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving record %q: %v", r.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseUpsert: insert a record into the database, replacing
// the result fields of any existing record with the same
// signature.
func (r *Record) databaseUpsert() {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(context.Background(),
			"INSERT INTO puzzles (signature, name, solution, solvable, solveTime, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6) "+
				"ON CONFLICT (signature) DO UPDATE SET "+
				"name = EXCLUDED.name, solution = EXCLUDED.solution, "+
				"solvable = EXCLUDED.solvable, solveTime = EXCLUDED.solveTime",
			r.Signature, r.Name, r.Solution, r.Solvable, r.SolveTime, r.Created)
		if err != nil {
			err = fmt.Errorf("Database error saving record %q: %v", r.Signature, err)
		}
		return
	}
	pgExecute(body)
}
