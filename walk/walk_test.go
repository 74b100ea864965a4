package walk

import (
	"errors"
	"strings"
	"testing"

	"fnc/ast"
	"fnc/report"
	"fnc/scope"
	"fnc/syntax"
	"fnc/types"
)

func checkSrc(t *testing.T, src string) (*ast.Node[*ast.Block], *scope.Table, error) {
	t.Helper()

	tokens, err := syntax.Scan(src)
	if err != nil {
		t.Fatalf("scanning %q failed: %v", src, err)
	}

	table := scope.NewTable()
	prog, err := syntax.Parse(syntax.Filter(tokens), table)
	if err != nil {
		t.Fatalf("parsing %q failed: %v", src, err)
	}

	return prog, table, Check(prog, table)
}

func compileError(t *testing.T, err error) *report.CompileError {
	t.Helper()

	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a compile error, got %v", err)
	}

	return cerr
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code report.ErrorCode // Unknown means the program should check
	}{
		{"declaration", "let x = 1\nlet y = x + 2", report.Unknown},
		{"annotated declaration", "let b: bool = true", report.Unknown},
		{"annotation mismatch", "let x: int32 = true", report.TypeMismatch},
		{"annotation compared by name", "let x: int = 1", report.TypeMismatch},
		{"operand mismatch", "let z = true + 1", report.TypeMismatch},
		{"unary operator", "let x = -1\nlet b = !true\nb = false", report.Unknown},
		{"if condition", "let b = true\nif b { b = false }", report.Unknown},
		{"while condition", "let x = 1\nwhile x { }", report.TypeMismatch},
		{"comparison yields left type", "let a = 1\nif a == 1 { }", report.TypeMismatch},
		{"comparison assigned to int", "let a = 1 == 1\nlet c: int32 = a", report.Unknown},
		{"assignment", "let x = 1\nx = 2", report.Unknown},
		{"assignment mismatch", "let x = 1\nx = true", report.TypeMismatch},
		{"compound assignment", "let x = 1\nx += 2", report.Unknown},
		{"compound assignment mismatch", "let x = 1\nx += true", report.TypeMismatch},
		{"undeclared assignment", "x = 1", report.VariableNotFound},
		{"undeclared use", "let y = x", report.VariableNotFound},
		{"self reference", "let x = x", report.VariableNotFound},
		{"out of scope", "{ let x = 1 }\nx = 2", report.VariableNotFound},
		{"shadowing", "let x = 1\n{\n  let x = true\n  x = false\n}\nx = 2", report.Unknown},
		{"shadow initialized from outer", "let x = true\n{\n  let x = x\n  if x { }\n}", report.Unknown},
		{"continue", "while true { continue }", report.Unknown},
		{"return value", "func f(): int32 { return 1 }", report.Unknown},
		{"return wrong value", "func f(): int32 { return true }", report.TypeMismatch},
		{"return unexpected value", "func f() { return 1 }", report.TypeMismatch},
		{"return missing value", "func f(): bool { return }", report.TypeMismatch},
		{"bare return", "func f() { return }", report.Unknown},
		{"top level return value", "return 1", report.TypeMismatch},
		{"top level bare return", "return", report.Unknown},
		{"wildcard return", "func f(): int { return 1 }", report.TypeMismatch},
		{"unknown return type", "func f(): str { }", report.TypeMismatch},
		{"parameters", "func f(a: int32, b: bool) {\n  if b { a = a + 1 }\n}", report.Unknown},
		{"parameter mismatch", "func f(a: int32) { a = true }", report.TypeMismatch},
		{"wildcard parameter", "func f(a: int) { a = 1 }", report.TypeMismatch},
		{"wildcard array parameter", "func f(a: int32, b: array) { a = 1 }", report.TypeMismatch},
		{"sized parameter", "func f(a: uint8, b: float64) { }", report.Unknown},
		{"unknown parameter type", "func f(a: str) { }", report.TypeMismatch},
		{"parameters are local", "func f(a: int32) { }\na = 1", report.VariableNotFound},
		{
			"nested function restores return type",
			"func outer(): bool {\n  func inner(): int32 { return 1 }\n  return true\n}",
			report.Unknown,
		},
		{
			"nested function does not leak return type",
			"func outer(): bool {\n  func inner() { }\n  return true\n}",
			report.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := checkSrc(t, tt.src)

			if tt.code == report.Unknown {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if cerr := compileError(t, err); cerr.Code != tt.code {
				t.Errorf("got %s (%s), want %s", cerr.Code, cerr.Message, tt.code)
			}
		})
	}
}

func TestCheckEndToEnd(t *testing.T) {
	src := "let x = 1\nif x { let y = true }\n"

	_, _, err := checkSrc(t, src)
	cerr := compileError(t, err)

	want := "E0006  TypeMismatch:\n" +
		"1. let x = 1\n" +
		"2. if x { let y = true }\n" +
		"      ^\n" +
		"expected a condition of type bool, but got int32 (2:4)\n"

	if got := report.FormatDiagnostic(src, cerr); got != want {
		t.Errorf("got diagnostic:\n%s\nwant:\n%s", got, want)
	}
}

func TestCheckErrorLocations(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		idx     int
		message string
	}{
		{"declaration points at value", "let x: int32 = true", 15, "`x` is declared as int32 but assigned bool"},
		{"operator", "let z = true + 1", 13, "cannot use the `+` operator on bool and int32"},
		{"assignment points at name", "let x = 1\nx = true", 10, "cannot assign bool to `x` of type int32"},
		{"identifier", "let y = 1 + x", 12, "the variable `x` does not exist"},
		{"return statement", "func f() {\n  return 1\n}", 13, "expected no return value, but got int32"},
		{"unknown type", "func f(a: str) { }", 10, "unknown type `str`"},
		{"incomplete parameter type", "func f(a: int) { }", 10, "incomplete type `int`"},
		{"incomplete return type", "func f(): float { }", 10, "incomplete type `float`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := checkSrc(t, tt.src)
			cerr := compileError(t, err)

			if cerr.Start.Idx != tt.idx {
				t.Errorf("error starts at %d, want %d", cerr.Start.Idx, tt.idx)
			}

			if cerr.Message != tt.message {
				t.Errorf("got message %q, want %q", cerr.Message, tt.message)
			}
		})
	}
}

func TestCheckDoWhileOrder(t *testing.T) {
	// The body is checked before the condition.
	_, _, err := checkSrc(t, "do { let z = true + 1 } while 1")
	if cerr := compileError(t, err); !strings.Contains(cerr.Message, "operator") {
		t.Errorf("expected the body error first, got %q", cerr.Message)
	}

	// The condition is checked in the enclosing scope.
	_, _, err = checkSrc(t, "do { let z = true } while z")
	if cerr := compileError(t, err); cerr.Code != report.VariableNotFound {
		t.Errorf("got %s, want %s", cerr.Code, report.VariableNotFound)
	}

	_, _, err = checkSrc(t, "let z = true\ndo { z = false } while z")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckResolvesTypes(t *testing.T) {
	prog, table, err := checkSrc(t, "let x = 1 + 2\nlet b = !true\nfunc f(a: bool) { }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decl := prog.Src.Stmts[0].Src.(*ast.Decl)
	if !types.Equals(decl.Val.Type, types.Int32) {
		t.Errorf("sum has type %s, want int32", types.Repr(decl.Val.Type))
	}

	lhs := decl.Val.Src.(*ast.BinaryOp).Lhs
	if !types.Equals(lhs.Type, types.Int32) {
		t.Errorf("operand has type %s, want int32", types.Repr(lhs.Type))
	}

	x, _ := table.Lookup(table.Root(), "x")
	if !types.Equals(x.Type, types.Int32) {
		t.Errorf("`x` has type %s, want int32", types.Repr(x.Type))
	}

	b, _ := table.Lookup(table.Root(), "b")
	if !types.Equals(b.Type, types.Bool) {
		t.Errorf("`b` has type %s, want bool", types.Repr(b.Type))
	}

	fn := prog.Src.Stmts[2].Src.(*ast.Func)
	a, ok := table.Lookup(fn.Body.Src.Scope, "a")
	if !ok || !types.Equals(a.Type, types.Bool) {
		t.Errorf("expected parameter `a` bound as bool in the body scope")
	}
}

func TestCheckShadowedBindings(t *testing.T) {
	prog, table, err := checkSrc(t, "let x = 1\n{\n  let x = true\n}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner := prog.Src.Stmts[1].Src.(*ast.Block)
	outerX, _ := table.Lookup(table.Root(), "x")
	innerX, _ := table.Lookup(inner.Scope, "x")

	if !types.Equals(outerX.Type, types.Int32) || !types.Equals(innerX.Type, types.Bool) {
		t.Errorf("got outer %s and inner %s, want int32 and bool", types.Repr(outerX.Type), types.Repr(innerX.Type))
	}
}
