package syntax

import (
	"fmt"
	"strconv"

	"fnc/report"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The source text of the token.  For identifiers, this is the name of the
	// identifier and for boolean literals it is `true` or `false`.
	Value string

	// The value of a numeric literal.
	Num float64

	// The span over which the token exists.  The end position is one past the
	// last character of the token.
	Start, End report.Position
}

// Repr returns a representative string for the token used in diagnostics.
func (t *Token) Repr() string {
	switch t.Kind {
	case TOK_IDENT, TOK_NUMLIT, TOK_BOOLLIT:
		return "`" + t.Value + "`"
	default:
		return KindRepr(t.Kind)
	}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s at %s", t.Repr(), t.Start)
}

// IsLineEnding returns whether the token ends a statement.
func (t *Token) IsLineEnding() bool {
	return t.Kind == TOK_NEWLINE || t.Kind == TOK_SEMI || t.Kind == TOK_EOF
}

// Enumeration of token kinds.
const (
	TOK_IDENT = iota
	TOK_NUMLIT
	TOK_BOOLLIT

	TOK_WHITESPACE
	TOK_NEWLINE
	TOK_SEMI

	TOK_ASSIGN
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COLON
	TOK_COMMA

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_POW
	TOK_MODULO

	TOK_AND
	TOK_OR
	TOK_NAND
	TOK_NOR
	TOK_XAND
	TOK_XOR
	TOK_NOT

	TOK_EQ
	TOK_NEQ
	TOK_GT
	TOK_LT
	TOK_GTEQ
	TOK_LTEQ

	TOK_LSHIFT
	TOK_RSHIFT
	TOK_ZFRSHIFT
	TOK_CLZ
	TOK_CTZ

	TOK_MODULE
	TOK_LET
	TOK_IF
	TOK_FOR
	TOK_WHILE
	TOK_DO
	TOK_BREAK
	TOK_CONTINUE
	TOK_RETURN
	TOK_FUNC
	TOK_CLASS
	TOK_PUB
	TOK_PRI
	TOK_INN
	TOK_OPERATOR

	TOK_EOF
)

// symbolPattern is a punctuation, operator or whitespace spelling.
type symbolPattern struct {
	pattern string
	kind    int
}

// symbolPatterns is the list of symbols recognized by the lexer.  The lexer
// always chooses the longest matching pattern: if two patterns of the same
// length match, the one declared first wins.
var symbolPatterns = []symbolPattern{
	{" ", TOK_WHITESPACE},
	{"\t", TOK_WHITESPACE},
	{"\r", TOK_WHITESPACE},
	{"\n", TOK_NEWLINE},
	{";", TOK_SEMI},

	{"=", TOK_ASSIGN},
	{"(", TOK_LPAREN},
	{")", TOK_RPAREN},
	{"{", TOK_LBRACE},
	{"}", TOK_RBRACE},
	{"[", TOK_LBRACKET},
	{"]", TOK_RBRACKET},
	{":", TOK_COLON},
	{",", TOK_COMMA},

	{"+", TOK_PLUS},
	{"-", TOK_MINUS},
	{"*", TOK_STAR},
	{"/", TOK_DIV},
	{"^", TOK_POW},
	{"%", TOK_MODULO},

	{"&", TOK_AND},
	{"|", TOK_OR},
	{"!&", TOK_NAND},
	{"!|", TOK_NOR},
	{"^&", TOK_XAND},
	{"^|", TOK_XOR},
	{"!", TOK_NOT},

	{"==", TOK_EQ},
	{"!=", TOK_NEQ},
	{">", TOK_GT},
	{"<", TOK_LT},
	{">=", TOK_GTEQ},
	{"<=", TOK_LTEQ},

	{"<<", TOK_LSHIFT},
	{">>", TOK_RSHIFT},
	{">>>", TOK_ZFRSHIFT},
	{"<..", TOK_CLZ},
	{">..", TOK_CTZ},
}

// keywordPatterns maps keyword spellings to their keyword token kind.
var keywordPatterns = map[string]int{
	"mod":      TOK_MODULE,
	"let":      TOK_LET,
	"if":       TOK_IF,
	"for":      TOK_FOR,
	"while":    TOK_WHILE,
	"do":       TOK_DO,
	"break":    TOK_BREAK,
	"continue": TOK_CONTINUE,
	"return":   TOK_RETURN,
	"func":     TOK_FUNC,
	"class":    TOK_CLASS,
	"pub":      TOK_PUB,
	"pri":      TOK_PRI,
	"inn":      TOK_INN,
	"operator": TOK_OPERATOR,
}

// IsKeyword returns whether a token kind is a keyword.
func IsKeyword(kind int) bool {
	return TOK_MODULE <= kind && kind <= TOK_OPERATOR
}

// KindRepr returns a representative string for a token kind.
func KindRepr(kind int) string {
	switch kind {
	case TOK_IDENT:
		return "identifier"
	case TOK_NUMLIT:
		return "number"
	case TOK_BOOLLIT:
		return "boolean"
	case TOK_WHITESPACE:
		return "whitespace"
	case TOK_NEWLINE:
		return "newline"
	case TOK_EOF:
		return "end of file"
	}

	for _, sp := range symbolPatterns {
		if sp.kind == kind {
			return "`" + sp.pattern + "`"
		}
	}

	for spelling, kwKind := range keywordPatterns {
		if kwKind == kind {
			return "`" + spelling + "`"
		}
	}

	return "token " + strconv.Itoa(kind)
}

// -----------------------------------------------------------------------------

// BinaryOperators is the operator precedence table for binary operators.  The
// table is ordered loosest to tightest binding.  All operators in the same
// tier are left associative.
var BinaryOperators = [][]int{
	{TOK_AND, TOK_OR, TOK_NAND, TOK_NOR, TOK_XAND, TOK_XOR},
	{TOK_EQ, TOK_NEQ, TOK_GT, TOK_LT, TOK_GTEQ, TOK_LTEQ},
	{TOK_LSHIFT, TOK_RSHIFT, TOK_ZFRSHIFT},
	{TOK_MODULO},
	{TOK_PLUS, TOK_MINUS},
	{TOK_STAR, TOK_DIV},
	{TOK_POW},
}

// UnaryOperators is the set of prefix unary operators.
var UnaryOperators = []int{TOK_NOT, TOK_CLZ, TOK_CTZ, TOK_MINUS}

// isBinaryOperator returns whether kind appears in any precedence tier.
func isBinaryOperator(kind int) bool {
	for _, tier := range BinaryOperators {
		if containsKind(tier, kind) {
			return true
		}
	}

	return false
}

// containsKind returns whether kinds contains kind.
func containsKind(kinds []int, kind int) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}

	return false
}
