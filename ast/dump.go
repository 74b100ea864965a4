package ast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"

	"fnc/types"
)

// Enumeration of tree dump formats.
const (
	DumpNone   = "none"
	DumpPretty = "pretty"
	DumpYAML   = "yaml"
)

// DumpFormats lists the valid tree dump formats.
var DumpFormats = []string{DumpNone, DumpPretty, DumpYAML}

// IsDumpFormat returns whether format is a valid tree dump format.
func IsDumpFormat(format string) bool {
	for _, f := range DumpFormats {
		if f == format {
			return true
		}
	}

	return false
}

// dumpNode is the printable form of a node.
type dumpNode struct {
	Kind     string      `yaml:"kind"`
	Span     string      `yaml:"span"`
	Type     string      `yaml:"type,omitempty"`
	Name     string      `yaml:"name,omitempty"`
	Value    string      `yaml:"value,omitempty"`
	Op       string      `yaml:"op,omitempty"`
	Scope    *int        `yaml:"scope,omitempty"`
	Children []*dumpNode `yaml:"children,omitempty"`
}

// Dump writes the tree rooted at prog to w in the given format.  Nothing is
// written for DumpNone.
func Dump(w io.Writer, prog *Node[*Block], format string) error {
	switch format {
	case DumpNone:
		return nil
	case DumpPretty:
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(dumpBlock(prog)))
		return err
	case DumpYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(dumpBlock(prog)); err != nil {
			return fmt.Errorf("encoding tree: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown dump format `%s`", format)
	}
}

// -----------------------------------------------------------------------------

func newDumpNode[T any](kind string, node *Node[T]) *dumpNode {
	dn := &dumpNode{
		Kind: kind,
		Span: node.Start.String() + "-" + node.End.String(),
	}

	if node.Type != nil {
		dn.Type = types.Repr(node.Type)
	}

	return dn
}

func dumpBlock(block *Node[*Block]) *dumpNode {
	dn := newDumpNode("block", block)

	scope := int(block.Src.Scope)
	dn.Scope = &scope

	for _, stmt := range block.Src.Stmts {
		dn.Children = append(dn.Children, dumpStmt(stmt))
	}

	return dn
}

func dumpIdent(kind string, ident *Node[*Ident]) *dumpNode {
	dn := newDumpNode(kind, ident)
	dn.Name = ident.Src.Name
	return dn
}

func dumpStmt(stmt *Node[Stmt]) *dumpNode {
	switch v := stmt.Src.(type) {
	case *Block:
		return dumpBlock(NewNode(v, stmt.Start, stmt.End))
	case *Decl:
		dn := newDumpNode("decl", stmt)
		dn.Name = v.Name.Src.Name
		if v.Annot != nil {
			dn.Children = append(dn.Children, dumpIdent("annot", v.Annot))
		}

		dn.Children = append(dn.Children, dumpExpr(v.Val))
		return dn
	case *Assign:
		dn := newDumpNode("assign", stmt)
		dn.Name = v.Name.Src.Name
		if v.Op != nil {
			dn.Op = v.Op.Name
		}

		dn.Children = append(dn.Children, dumpExpr(v.Val))
		return dn
	case *If:
		dn := newDumpNode("if", stmt)
		dn.Children = append(dn.Children, dumpExpr(v.Cond), dumpBlock(v.Body))
		return dn
	case *While:
		dn := newDumpNode("while", stmt)
		dn.Children = append(dn.Children, dumpExpr(v.Cond), dumpBlock(v.Body))
		return dn
	case *DoWhile:
		dn := newDumpNode("do-while", stmt)
		dn.Children = append(dn.Children, dumpBlock(v.Body), dumpExpr(v.Cond))
		return dn
	case *Func:
		dn := newDumpNode("func", stmt)
		dn.Name = v.Name.Src.Name

		for _, param := range v.Params {
			pn := newDumpNode("param", param)
			pn.Name = param.Src.Name.Src.Name
			pn.Type = param.Src.Annot.Src.Name
			dn.Children = append(dn.Children, pn)
		}

		if v.Ret != nil {
			dn.Type = v.Ret.Src.Name
		}

		dn.Children = append(dn.Children, dumpBlock(v.Body))
		return dn
	case *Continue:
		return newDumpNode("continue", stmt)
	case *Return:
		dn := newDumpNode("return", stmt)
		if v.Val != nil {
			dn.Children = append(dn.Children, dumpExpr(v.Val))
		}

		return dn
	}

	return newDumpNode("unknown", stmt)
}

func dumpExpr(expr *Node[Expr]) *dumpNode {
	switch v := expr.Src.(type) {
	case *Ident:
		dn := newDumpNode("ident", expr)
		dn.Name = v.Name
		return dn
	case *NumLit:
		dn := newDumpNode("number", expr)
		dn.Value = strconv.FormatFloat(v.Value, 'g', -1, 64)
		return dn
	case *BoolLit:
		dn := newDumpNode("bool", expr)
		dn.Value = strconv.FormatBool(v.Value)
		return dn
	case *BinaryOp:
		dn := newDumpNode("binary", expr)
		dn.Op = v.Op.Name
		dn.Children = append(dn.Children, dumpExpr(v.Lhs), dumpExpr(v.Rhs))
		return dn
	case *UnaryOp:
		dn := newDumpNode("unary", expr)
		dn.Op = v.Op.Name
		dn.Children = append(dn.Children, dumpExpr(v.Operand))
		return dn
	}

	return newDumpNode("unknown", expr)
}
