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
	"fmt"
	"log"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/solverkit/sudoku.go/puzzle"
)

// A Session tracks the user's current step in the solution of
// their current puzzle.  Behind the scenes, we persist all the
// prior steps the user has taken in this solution, so they can go
// back (undo) prior choices.  Each step is stored as the board's
// signature, so the step list is just a Redis list of 81-digit
// strings.
type Session struct {
	// these elements are persisted as part of the session
	SID       string // session ID
	Signature string // signature of the puzzle being solved
	Step      int    // current step
	Created   string // RFC3339 time when the session was created
	Saved     string // RFC3339 time when the session was last saved

	// the working board is persisted in the steps
	Board *puzzle.Board `redis:"-"` // board at the current step
}

/*

session manipulation

*/

// StartPuzzle: set the puzzle for the current session and clear
// any existing solver steps.  If the given signature is empty,
// restart the session's current puzzle.
func (session *Session) StartPuzzle(signature string) error {
	if signature == "" {
		signature = session.Signature
	}
	board, err := puzzle.ParseSignature(signature)
	if err != nil {
		return err
	}
	session.Signature = signature
	session.Board = board

	// update the cache
	if session.Created == "" {
		session.Created = time.Now().Format(time.RFC3339)
	}
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step = 1
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("DEL", session.stepsKey())
		_, err = tx.Do("RPUSH", session.stepsKey(), session.Board.Signature())
		if err != nil {
			err = fmt.Errorf("Cache error on save of session %q after reset: %v", session.SID, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Reset session %v to start solving puzzle %q.", session.SID, session.Signature)
	return nil
}

// AddStep: add a new current step with the current board.
func (session *Session) AddStep() {
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step++
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		_, err = tx.Do("RPUSH", session.stepsKey(), session.Board.Signature())
		if err != nil {
			err = fmt.Errorf("Cache error on save of %s:%q step %d: %v",
				session.SID, session.Signature, session.Step, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Added session %v step %d.", session.SID, session.Step)
}

// RemoveStep: remove the last step and restore the prior step's
// board.
func (session *Session) RemoveStep() {
	if session.Step <= 1 {
		// nothing to do
		return
	}

	// trim the step list and load the newly last step
	var sig string
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step--
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("LTRIM", session.stepsKey(), 0, -2)
		sig, err = redis.String(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			err = fmt.Errorf("Cache error on remove to %s step %d: %v",
				session.SID, session.Step, err)
		}
		return
	}
	rdExecute(body)
	session.setBoard(sig)
	log.Printf("Reverted session %v to step %d.", session.SID, session.Step)
}

// Lookup: look up a saved session for the session's ID.  Returns
// whether one was found.
func (session *Session) Lookup() (found bool) {
	body := func(tx redis.Conn) error {
		vals, err := redis.Values(tx.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				return fmt.Errorf("Cache error on parse of saved session %q: %v", session.SID, err)
			}
			found = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("Cache error on read of session %q: %v", session.SID, err)
		}
		log.Printf("No saved session %q", session.SID)
		return nil
	}
	rdExecute(body)
	return
}

// LoadStep: load the current step's board from the step list.
func (session *Session) LoadStep() {
	var sig string
	body := func(tx redis.Conn) (err error) {
		sig, err = redis.String(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			err = fmt.Errorf("Cache error on load of %s step %d: %v",
				session.SID, session.Step, err)
		}
		return
	}
	rdExecute(body)
	session.setBoard(sig)
}

// setBoard - replace the working board from a saved signature
func (session *Session) setBoard(sig string) {
	board, err := puzzle.ParseSignature(sig)
	if err != nil {
		panic(fmt.Errorf("Saved step of session %q isn't a signature: %v", session.SID, err))
	}
	session.Board = board
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return "SID:" + session.SID
}

// stepsKey - returns the key for the session's step array
func (session *Session) stepsKey() string {
	return session.key() + ":Steps"
}
