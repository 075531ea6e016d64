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

// Interactive command-line client for the sudoku.go puzzle library
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/solverkit/sudoku.go/puzzle"
	"github.com/solverkit/sudoku.go/storage"
)

// the puzzle a fresh session starts on
const defaultSignature = "" +
	"530070000" + "600195000" + "098000060" +
	"800060003" + "400803001" + "700020006" +
	"060000280" + "000419005" + "000080079"

func main() {
	// connect to storage
	if _, _, err := storage.Connect(); err != nil {
		log.Printf("Startup failure: %v", err)
		shutdown(startupFailureShutdown)
	}
	defer storage.Close()

	// catch signals
	shutdownOnSignal()

	// serve
	err := listener(os.Stdout, os.Stdin)
	if err != nil {
		log.Printf("CLI failure: %v", err)
		shutdown(listenerFailureShutdown)
	}
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	// (see http://stackoverflow.com/questions/22744443/ for source)
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "sudoku> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:n]), " \t\r\n")}
			args := strings.Split(r.inline, " ")
			r.command = strings.ToLower(args[0])
			switch r.command {
			case "":
				continue
			case "quit":
				fallthrough
			case "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, strings.ToLower(arg))
				}
			}
			dispatchCommand(out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*storage.Session, *os.File, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"back", "", "go back one solution step", backHandler},
		{"candidates", "cell", "show the legal values for a cell", candidatesHandler},
		{"clear", "cell", "clear a cell you assigned", clearHandler},
		{"library", "", "list the stored puzzle library", libraryHandler},
		{"load", "name|signature", "start solving another puzzle", loadHandler},
		{"reset", "", "go back to the puzzle's start", resetHandler},
		{"session", "[sessionID]", "get/set session info", sessionHandler},
		{"set", "cell value", "assign a value to a cell", setHandler},
		{"show", "", "show the current board", showHandler},
		{"solve", "", "solve the puzzle from here", solveHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	session := sessionSelect(w, r)
	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(session, w, r)
	}
}

/*

request handlers

*/

func showHandler(session *storage.Session, w *os.File, r *request) {
	fmt.Fprintf(w, "%s", session.Board.CoordString())
}

func backHandler(session *storage.Session, w *os.File, r *request) {
	session.RemoveStep()
	showHandler(session, w, r)
}

func resetHandler(session *storage.Session, w *os.File, r *request) {
	if err := session.StartPuzzle(""); err != nil {
		panic(err)
	}
	showHandler(session, w, r)
}

func loadHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one argument", r.command), w, r)
		return
	}
	sig, err := resolvePuzzle(r.args[0])
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	if err := session.StartPuzzle(sig); err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	showHandler(session, w, r)
}

func setHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 2 {
		usageHandler(fmt.Sprintf("%s requires two arguments", r.command), w, r)
		return
	}
	row, col, err := parseCell(r.args[0])
	if err != nil {
		usageHandler(fmt.Sprintf("%s cell (%s): %v", r.command, r.args[0], err), w, r)
		return
	}
	val, err := strconv.Atoi(r.args[1])
	if err != nil {
		usageHandler(fmt.Sprintf("%s value (%s) must be a number", r.command, r.args[1]), w, r)
		return
	}
	if err := session.Board.Assign(row, col, val); err != nil {
		fmt.Fprintf(w, "Set failed: %v\n", err)
		return
	}
	session.AddStep()
	showHandler(session, w, r)
}

func clearHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one argument", r.command), w, r)
		return
	}
	row, col, err := parseCell(r.args[0])
	if err != nil {
		usageHandler(fmt.Sprintf("%s cell (%s): %v", r.command, r.args[0], err), w, r)
		return
	}
	if err := session.Board.Clear(row, col); err != nil {
		fmt.Fprintf(w, "Clear failed: %v\n", err)
		return
	}
	session.AddStep()
	showHandler(session, w, r)
}

func candidatesHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one argument", r.command), w, r)
		return
	}
	row, col, err := parseCell(r.args[0])
	if err != nil {
		usageHandler(fmt.Sprintf("%s cell (%s): %v", r.command, r.args[0], err), w, r)
		return
	}
	cs := session.Board.Candidates(row, col)
	fmt.Fprintf(w, "Candidates for %s: %v\n", r.args[0], cs)
}

func solveHandler(session *storage.Session, w *os.File, r *request) {
	signature := session.Board.Signature()
	if record, found := storage.LookupSolution(signature); found && record.Solvable {
		solution, err := record.SolutionBoard()
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(w, "Known solution (first found in %d microseconds):\n%s",
			record.SolveTime, solution.CoordString())
		return
	}

	working := *session.Board
	start := time.Now()
	solved := working.Solve()
	elapsed := time.Since(start).Microseconds()
	storage.SaveResult(&storage.Record{
		Signature: signature,
		Solution:  solutionSignature(&working, solved),
		Solvable:  solved,
		SolveTime: elapsed,
	})
	if !solved {
		fmt.Fprintf(w, "No solution exists from this position (%d microseconds).\n", elapsed)
		return
	}
	fmt.Fprintf(w, "Solved in %d microseconds:\n%s", elapsed, working.CoordString())
}

func libraryHandler(session *storage.Session, w *os.File, r *request) {
	records := storage.AllRecords()
	if len(records) == 0 {
		fmt.Fprintf(w, "The puzzle library is empty.\n")
		return
	}
	for _, record := range records {
		name := record.Name
		if name == "" {
			name = "(unnamed)"
		}
		status := "unsolved"
		if record.Solvable {
			status = fmt.Sprintf("solved in %d microseconds", record.SolveTime)
		}
		fmt.Fprintf(w, "%-12s %s  %s\n", name, record.Signature, status)
	}
}

func sessionHandler(session *storage.Session, w *os.File, r *request) {
	fmt.Fprintf(w, "Session %q solving puzzle %q on solution step %d\n",
		session.SID, session.Signature, session.Step)
}

func usageHandler(msg string, w *os.File, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %10s %-14s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w *os.File, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Printf("Error executing %q: %v\n", r.inline, err)
}

/*

argument parsing

*/

// parseCell: turn a cell name like "a1" (row letter, then column
// number) into zero-based row and column indexes.
func parseCell(arg string) (row, col int, err error) {
	if len(arg) < 2 {
		return 0, 0, fmt.Errorf("must be a row letter followed by a column number")
	}
	row = int(arg[0] - 'a')
	if row < 0 || row >= puzzle.SideLength {
		return 0, 0, fmt.Errorf("row must be a letter a-%c", 'a'+puzzle.SideLength-1)
	}
	col, err = strconv.Atoi(arg[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("column must be a number")
	}
	if col < 1 || col > puzzle.SideLength {
		return 0, 0, fmt.Errorf("column must be between 1 and %d", puzzle.SideLength)
	}
	return row, col - 1, nil
}

// resolvePuzzle: turn a puzzle name or signature into a
// signature.  Names are looked up in the stored library.
func resolvePuzzle(arg string) (string, error) {
	if len(arg) == puzzle.CellCount {
		if _, err := puzzle.ParseSignature(arg); err != nil {
			return "", err
		}
		return arg, nil
	}
	for _, record := range storage.AllRecords() {
		if record.Name == arg {
			return record.Signature, nil
		}
	}
	return "", fmt.Errorf("no library puzzle named %q", arg)
}

// solutionSignature: the signature to store for a finished
// search, empty when the search failed.
func solutionSignature(b *puzzle.Board, solved bool) string {
	if !solved {
		return ""
	}
	return b.Signature()
}

/*

session handling

*/

// session id for the command line
var defaultCookie string

var startTime = time.Now() // instance start-up time

// getSessionId gets the current session id, or makes a new one.
func getSessionId(w *os.File, r *request) string {
	// look to see if the user is specifying a session id
	if r.command == "session" && len(r.args) > 0 {
		defaultCookie = r.args[0]
	}

	// look for an existing session id
	if len(defaultCookie) != 0 {
		return defaultCookie
	}

	// no session id: start a new session with a new ID
	// poor man's UUID for the session in local mode: time since startup.
	sid := strconv.FormatInt(int64(time.Now().Sub(startTime)), 36)
	log.Printf("No session id found, created new session ID %q", sid)
	defaultCookie = sid
	return sid
}

// sessionSelect: find or create the session for the current command.
func sessionSelect(w *os.File, r *request) *storage.Session {
	id := getSessionId(w, r)
	session := &storage.Session{SID: id}
	// load session from storage if possible, otherwise just initialize it
	if session.Lookup() {
		log.Printf("Found session %v, puzzle %q, on step %d.",
			session.SID, session.Signature, session.Step)
		session.LoadStep()
	} else if err := session.StartPuzzle(defaultSignature); err != nil {
		panic(err)
	}
	return session
}

/*

coordinate shutdown across goroutines and top-level listener

*/

type shutdownCause int

const (
	unknownShutdown = iota
	runtimeFailureShutdown
	startupFailureShutdown
	caughtSignalShutdown
	listenerFailureShutdown
)

// for testing, allow alternate forms of shutdown
var alternateShutdown func(reason shutdownCause)

// shutdown: process exit with logging.
func shutdown(reason shutdownCause) {
	// close the storage connections
	storage.Close()

	// for testing: run alternateShutdown instead, if defined
	if alternateShutdown != nil {
		alternateShutdown(reason)
		panic(reason) // shouldn't get here
	}

	// log reason for shutdown and exit
	switch reason {
	case unknownShutdown:
		log.Fatal("Exiting: normal shutdown.")
	case startupFailureShutdown:
		log.Fatal("Exiting: initialization failure.")
	case runtimeFailureShutdown:
		log.Fatal("Exiting: runtime failure.")
	case caughtSignalShutdown:
		log.Fatal("Exiting: caught signal.")
	case listenerFailureShutdown:
		log.Fatal("Exiting: command listener failed.")
	default:
		log.Fatal("Exiting: unknown cause.")
	}
}

// shutdownOnSignal: catch signals and exit.
func shutdownOnSignal() {
	// based on example in os.signal godoc
	c := make(chan os.Signal, 1)
	signal.Notify(c) // die on all signals

	go func() {
		s := <-c
		log.Printf("Received OS-level signal: %v", s)
		shutdown(caughtSignalShutdown)
	}()
}
