package puzzle

import (
	"strings"
	"testing"
)

/*

loading

*/

const classicText = `530070000
600195000
098000060
800060003
400803001
700020006
060000280
000419005
000080079
`

func TestReadClassic(t *testing.T) {
	b, err := Read(strings.NewReader(classicText))
	if err != nil {
		t.Fatalf("TestReadClassic: load failed: %v", err)
	}
	if want := boardFromValues(classicValues); *b != *want {
		t.Errorf("TestReadClassic: loaded board is:\n%v(expected:\n%v)", b, want)
	}
}

func TestReadNoTrailingNewline(t *testing.T) {
	b, err := Read(strings.NewReader(strings.TrimSuffix(classicText, "\n")))
	if err != nil {
		t.Fatalf("TestReadNoTrailingNewline: load failed: %v", err)
	}
	if want := boardFromValues(classicValues); *b != *want {
		t.Errorf("TestReadNoTrailingNewline: loaded board is:\n%v", b)
	}
}

func TestReadCRLF(t *testing.T) {
	text := strings.ReplaceAll(classicText, "\n", "\r\n")
	b, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("TestReadCRLF: load failed: %v", err)
	}
	if want := boardFromValues(classicValues); *b != *want {
		t.Errorf("TestReadCRLF: loaded board is:\n%v", b)
	}
}

type readFailureTestcase struct {
	name      string
	text      string
	attribute ErrorAttribute
	condition ErrorCondition
}

func TestReadFailures(t *testing.T) {
	lines := strings.SplitAfter(classicText, "\n")[:SideLength]
	tcs := []readFailureTestcase{
		readFailureTestcase{
			"short row",
			strings.Join(append(append([]string{}, lines[:4]...), "53007000\n"), "") +
				strings.Join(lines[5:], ""),
			LineAttribute, WrongLengthCondition,
		},
		readFailureTestcase{
			"long row",
			"5300700000\n" + strings.Join(lines[1:], ""),
			LineAttribute, WrongLengthCondition,
		},
		readFailureTestcase{
			"non-digit",
			strings.Replace(classicText, "098", "09x", 1),
			CharacterAttribute, NonDigitCondition,
		},
		readFailureTestcase{
			"missing lines",
			strings.Join(lines[:8], ""),
			LineCountAttribute, MissingInputCondition,
		},
		readFailureTestcase{
			"empty input",
			"",
			LineCountAttribute, MissingInputCondition,
		},
		readFailureTestcase{
			"extra line",
			classicText + "123456789\n",
			LineCountAttribute, ExtraInputCondition,
		},
		readFailureTestcase{
			"trailing blank line",
			classicText + "\n",
			LineCountAttribute, ExtraInputCondition,
		},
	}
	for _, tc := range tcs {
		b, err := Read(strings.NewReader(tc.text))
		if err == nil {
			t.Errorf("TestReadFailures %s: load succeeded:\n%v", tc.name, b)
			continue
		}
		e, ok := err.(Error)
		if !ok {
			t.Errorf("TestReadFailures %s: error isn't an Error: %v", tc.name, err)
			continue
		}
		if e.Scope != FormatScope || e.Attribute != tc.attribute || e.Condition != tc.condition {
			t.Errorf("TestReadFailures %s: got Error %+v (expected attribute %v condition %v)",
				tc.name, e, tc.attribute, tc.condition)
		}
		if b != nil {
			t.Errorf("TestReadFailures %s: failed load returned a board", tc.name)
		}
	}
}

/*

signatures

*/

func TestSignatureRoundTrip(t *testing.T) {
	b := boardFromValues(classicValues)
	sig := b.Signature()
	if len(sig) != CellCount {
		t.Fatalf("TestSignatureRoundTrip: signature has length %d", len(sig))
	}
	if want := strings.ReplaceAll(classicText, "\n", ""); sig != want {
		t.Errorf("TestSignatureRoundTrip: signature is %q (expected %q)", sig, want)
	}
	back, err := ParseSignature(sig)
	if err != nil {
		t.Fatalf("TestSignatureRoundTrip: parse failed: %v", err)
	}
	if *back != *b {
		t.Errorf("TestSignatureRoundTrip: parsed board is:\n%v", back)
	}
}

func TestParseSignatureFailures(t *testing.T) {
	if _, err := ParseSignature("12345"); err == nil {
		t.Errorf("TestParseSignatureFailures: short signature parsed")
	}
	bad := strings.Repeat("0", CellCount-1) + "x"
	if _, err := ParseSignature(bad); err == nil {
		t.Errorf("TestParseSignatureFailures: non-digit signature parsed")
	}
}

/*

printing

*/

func TestString(t *testing.T) {
	b := boardFromValues(classicValues)
	want := "5 3 0 | 0 7 0 | 0 0 0\n" +
		"6 0 0 | 1 9 5 | 0 0 0\n" +
		"0 9 8 | 0 0 0 | 0 6 0\n" +
		"------+-------+------\n" +
		"8 0 0 | 0 6 0 | 0 0 3\n" +
		"4 0 0 | 8 0 3 | 0 0 1\n" +
		"7 0 0 | 0 2 0 | 0 0 6\n" +
		"------+-------+------\n" +
		"0 6 0 | 0 0 0 | 2 8 0\n" +
		"0 0 0 | 4 1 9 | 0 0 5\n" +
		"0 0 0 | 0 8 0 | 0 7 9\n"
	if got := b.String(); got != want {
		t.Errorf("TestString: board prints as:\n%s(expected:\n%s)", got, want)
	}
}

func TestCoordString(t *testing.T) {
	b := boardFromValues(classicValues)
	got := b.CoordString()
	if !strings.Contains(got, "a 5 3 _ | _ 7 _ | _ _ _") {
		t.Errorf("TestCoordString: first row is wrong:\n%s", got)
	}
	if !strings.Contains(got, "i _ _ _ | _ 8 _ | _ 7 9") {
		t.Errorf("TestCoordString: last row is wrong:\n%s", got)
	}
}
