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
	"bufio"
	"fmt"
	"io"
	"strings"
)

/*

Loading puzzles from text

*/

// Read loads a board from puzzle text: exactly 9 lines of
// exactly 9 digit characters, where 0 is an empty cell and 1
// through 9 are given values.  Lines may end with LF or CRLF;
// the final line may end at end of input instead.
//
// Any deviation gives a FormatScope Error: a line that isn't 9
// characters, a character that isn't a digit, input that ends
// before the 9th line, or content remaining after the 9th line.
// No partially-read board escapes a failed Read.
func Read(r io.Reader) (*Board, error) {
	in := bufio.NewReader(r)
	var b Board
	for row := 0; row < SideLength; row++ {
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, formatError(LineAttribute, GeneralCondition, row+1, err.Error())
		}
		if line == "" && err == io.EOF {
			return nil, formatError(LineCountAttribute, MissingInputCondition, row)
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) != SideLength {
			return nil, formatError(LineAttribute, WrongLengthCondition, row+1, SideLength)
		}
		for col := 0; col < SideLength; col++ {
			ch := line[col]
			if ch < '0' || ch > '9' {
				return nil, formatError(CharacterAttribute, NonDigitCondition,
					fmt.Sprintf("%q at line %d column %d", ch, row+1, col+1))
			}
			b[row][col] = int(ch - '0')
		}
	}
	// the input must end exactly after the 9th line
	if _, err := in.ReadByte(); err != io.EOF {
		return nil, formatError(LineCountAttribute, ExtraInputCondition, SideLength)
	}
	return &b, nil
}

/*

Signatures: the 81-digit flat form of a board, used as its
identity in storage.

*/

// Signature returns the board's values as an 81-character digit
// string in row-major order, 0 for empty cells.  Two boards have
// the same signature exactly when they have the same values, so
// the signature serves as the board's storage key.
func (b *Board) Signature() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for row := 0; row < SideLength; row++ {
		for col := 0; col < SideLength; col++ {
			sb.WriteByte(byte('0' + b[row][col]))
		}
	}
	return sb.String()
}

// ParseSignature rebuilds a board from its 81-digit signature.
// Gives a FormatScope Error if the signature has the wrong
// length or a non-digit character.
func ParseSignature(sig string) (*Board, error) {
	if len(sig) != CellCount {
		return nil, formatError(SignatureAttribute, WrongLengthCondition, len(sig), CellCount)
	}
	var b Board
	for i := 0; i < CellCount; i++ {
		ch := sig[i]
		if ch < '0' || ch > '9' {
			return nil, formatError(CharacterAttribute, NonDigitCondition,
				fmt.Sprintf("%q at position %d", ch, i+1))
		}
		b[i/SideLength][i%SideLength] = int(ch - '0')
	}
	return &b, nil
}

/*

Pretty-printed boards

*/

// String gives the grid view of a board: one row per line with a
// "|" separator every 3 columns and a "------+-------+------"
// separator every 3 rows.  Empty cells print as 0.
func (b *Board) String() (result string) {
	for row := 0; row < SideLength; row++ {
		if row%BoxLength == 0 && row != 0 {
			result += "------+-------+------\n"
		}
		for col := 0; col < SideLength; col++ {
			if col != 0 {
				if col%BoxLength == 0 {
					result += " | "
				} else {
					result += " "
				}
			}
			result += fmt.Sprintf("%d", b[row][col])
		}
		result += "\n"
	}
	return
}

// CoordString gives the grid view with a column-number header
// and letter row labels (a through i), the form the interactive
// client uses so cells can be named in commands.  Empty cells
// print as underscores.
func (b *Board) CoordString() (result string) {
	result = " "
	for col := 0; col < SideLength; col++ {
		if col%BoxLength == 0 && col != 0 {
			result += "  "
		}
		result += fmt.Sprintf(" %d", col+1)
	}
	result += "\n"
	for row, rowhdr := 0, 'a'; row < SideLength; row, rowhdr = row+1, rowhdr+1 {
		if row%BoxLength == 0 && row != 0 {
			result += "  ------+-------+------\n"
		}
		result += string(rowhdr)
		for col := 0; col < SideLength; col++ {
			if col != 0 && col%BoxLength == 0 {
				result += " |"
			}
			if b[row][col] == 0 {
				result += " _"
			} else {
				result += fmt.Sprintf(" %d", b[row][col])
			}
		}
		result += "\n"
	}
	return
}
