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

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with puzzle input.  It tells the
// client "this thing failed to meet this condition" and provides
// supplemental details about the thing and the condition.
//
// Errors arise only from malformed input (puzzle text that isn't
// 9 lines of 9 digits, or a signature that isn't 81 digits).
// The failure of a solve is not an Error: an unsolvable board is
// an ordinary outcome of the search, reported as a bool.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
}

// An ErrorScope explains what type of thing the error is
// referring to: the puzzle text being loaded, an argument to an
// operation, or (for should-not-happen cases) internal logic.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	FormatScope
	ArgumentScope
	InternalScope
	MaxScope
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	LineAttribute
	CharacterAttribute
	LineCountAttribute
	SignatureAttribute
	RowAttribute
	ColumnAttribute
	ValueAttribute
	MaxAttribute
)

// The ErrorCondition is the predicate that the attribute failed
// to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	WrongLengthCondition
	NonDigitCondition
	MissingInputCondition
	ExtraInputCondition
	TooLargeCondition
	TooSmallCondition
	NotInSetCondition
	DuplicateAssignmentCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the offending line number or
// character) as well as the predicate itself (such as the
// required length).
type ErrorData []interface{}

// attribute names for message rendering
var attributeNames = map[ErrorAttribute]string{
	LineAttribute:      "Line",
	CharacterAttribute: "Character",
	LineCountAttribute: "Line count",
	SignatureAttribute: "Signature",
	RowAttribute:       "Row",
	ColumnAttribute:    "Column",
	ValueAttribute:     "Value",
}

// Return an error string from an Error: an appropriate (English,
// non-localized) message built from the error's parts.
func (e Error) Error() string {
	var es string
	switch e.Scope {
	case FormatScope:
		es = "Invalid puzzle format: "
	case ArgumentScope:
		es = "Invalid argument: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	if name, ok := attributeNames[e.Attribute]; ok {
		es += name + " (" + fmt.Sprint(nextVal()) + "): "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case WrongLengthCondition:
		es += fmt.Sprintf("Must have length %v", nextVal())
	case NonDigitCondition:
		es += fmt.Sprintf("Must be a digit 0-9")
	case MissingInputCondition:
		es += fmt.Sprintf("Input ended too soon")
	case ExtraInputCondition:
		es += fmt.Sprintf("Unexpected input past this point")
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case NotInSetCondition:
		es += fmt.Sprintf("Must be in possible values %v", nextVal())
	case DuplicateAssignmentCondition:
		es += fmt.Sprintf("Cell is already assigned value %v", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// formatError returns an Error describing malformed puzzle text.
func formatError(attr ErrorAttribute, cond ErrorCondition, values ...interface{}) Error {
	return Error{
		Scope:     FormatScope,
		Attribute: attr,
		Condition: cond,
		Values:    values,
	}
}

// rangeError returns an Error that describes an out-of-range
// argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}
