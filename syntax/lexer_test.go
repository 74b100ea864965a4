package syntax

import (
	"errors"
	"math"
	"testing"

	"github.com/kr/pretty"

	"fnc/report"
)

func scanKinds(t *testing.T, src string) []int {
	t.Helper()

	tokens, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan(%q) failed: %v", src, err)
	}

	var kinds []int
	for _, tok := range Filter(tokens) {
		kinds = append(kinds, tok.Kind)
	}

	return kinds
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []int
	}{
		{"empty", "", []int{TOK_EOF}},
		{"longest match", ">=", []int{TOK_GTEQ, TOK_EOF}},
		{"zero fill shift", "a >>> 2", []int{TOK_IDENT, TOK_ZFRSHIFT, TOK_NUMLIT, TOK_EOF}},
		{"nand before not", "a !& b", []int{TOK_IDENT, TOK_NAND, TOK_IDENT, TOK_EOF}},
		{"not", "!a", []int{TOK_NOT, TOK_IDENT, TOK_EOF}},
		{"count leading zeros", "<..a", []int{TOK_CLZ, TOK_IDENT, TOK_EOF}},
		{"symbols split captures", "a+b", []int{TOK_IDENT, TOK_PLUS, TOK_IDENT, TOK_EOF}},
		{"keywords", "mod class pub pri inn operator for break", []int{
			TOK_MODULE, TOK_CLASS, TOK_PUB, TOK_PRI, TOK_INN, TOK_OPERATOR, TOK_FOR, TOK_BREAK, TOK_EOF,
		}},
		{"keyword prefix is identifier", "letter iffy", []int{TOK_IDENT, TOK_IDENT, TOK_EOF}},
		{"booleans", "true false", []int{TOK_BOOLLIT, TOK_BOOLLIT, TOK_EOF}},
		{"crlf", "a\r\nb", []int{TOK_IDENT, TOK_NEWLINE, TOK_IDENT, TOK_EOF}},
		{
			"program",
			"let x = 1\nif x { x += 2 }",
			[]int{
				TOK_LET, TOK_IDENT, TOK_ASSIGN, TOK_NUMLIT, TOK_NEWLINE,
				TOK_IF, TOK_IDENT, TOK_LBRACE, TOK_IDENT, TOK_PLUS, TOK_ASSIGN, TOK_NUMLIT, TOK_RBRACE,
				TOK_EOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanKinds(t, tt.src)
			if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
				t.Errorf("Scan(%q) kinds differ:\n%s", tt.src, diff)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	tokens, err := Scan("let x = 1\nif ab")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	tokens = Filter(tokens)

	want := []*Token{
		{Kind: TOK_LET, Value: "let", Start: report.Position{Row: 0, Col: 0, Idx: 0}, End: report.Position{Row: 0, Col: 3, Idx: 3}},
		{Kind: TOK_IDENT, Value: "x", Start: report.Position{Row: 0, Col: 4, Idx: 4}, End: report.Position{Row: 0, Col: 5, Idx: 5}},
		{Kind: TOK_ASSIGN, Value: "=", Start: report.Position{Row: 0, Col: 6, Idx: 6}, End: report.Position{Row: 0, Col: 7, Idx: 7}},
		{Kind: TOK_NUMLIT, Value: "1", Num: 1, Start: report.Position{Row: 0, Col: 8, Idx: 8}, End: report.Position{Row: 0, Col: 9, Idx: 9}},
		{Kind: TOK_NEWLINE, Value: "\n", Start: report.Position{Row: 0, Col: 9, Idx: 9}, End: report.Position{Row: 1, Col: 0, Idx: 10}},
		{Kind: TOK_IF, Value: "if", Start: report.Position{Row: 1, Col: 0, Idx: 10}, End: report.Position{Row: 1, Col: 2, Idx: 12}},
		{Kind: TOK_IDENT, Value: "ab", Start: report.Position{Row: 1, Col: 3, Idx: 13}, End: report.Position{Row: 1, Col: 5, Idx: 15}},
		{Kind: TOK_EOF, Start: report.Position{Row: 1, Col: 5, Idx: 15}, End: report.Position{Row: 1, Col: 5, Idx: 15}},
	}

	if diff := pretty.Diff(tokens, want); len(diff) > 0 {
		t.Errorf("tokens differ:\n%s", diff)
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.5", 3.5},
		{"1.", 1},
		{"25e2", 2500},
		{"2.5E1", 25},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		tokens, err := Scan(tt.src)
		if err != nil {
			t.Fatalf("Scan(%q) failed: %v", tt.src, err)
		}

		if tokens[0].Kind != TOK_NUMLIT || tokens[0].Num != tt.want {
			t.Errorf("Scan(%q) = %s (%v), want number %v", tt.src, tokens[0], tokens[0].Num, tt.want)
		}
	}
}

func TestScanRejectsNonDecimalNumbers(t *testing.T) {
	for _, src := range []string{"0x1p4", "0b101", "1_000", "1e", "1.2.3", "12ab"} {
		_, err := Scan(src)

		var cerr *report.CompileError
		if !errors.As(err, &cerr) || cerr.Code != report.IncorrectParsingType {
			t.Errorf("Scan(%q): got %v, want %s", src, err, report.IncorrectParsingType)
		}
	}
}

func TestScanMalformedNumber(t *testing.T) {
	_, err := Scan("let x = 1x")

	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a compile error, got %v", err)
	}

	if cerr.Code != report.IncorrectParsingType {
		t.Errorf("got code %s, want %s", cerr.Code, report.IncorrectParsingType)
	}

	if cerr.Start.Idx != 8 || cerr.End.Idx != 10 {
		t.Errorf("got span %d..%d, want 8..10", cerr.Start.Idx, cerr.End.Idx)
	}
}

func TestScanUnicodeColumns(t *testing.T) {
	tokens, err := Scan("é = 1")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	tokens = Filter(tokens)
	if tokens[1].Start.Col != 2 || tokens[1].Start.Idx != 3 {
		t.Errorf("`=` starts at col %d idx %d, want col 2 idx 3", tokens[1].Start.Col, tokens[1].Start.Idx)
	}
}
