package cmd

import (
	"errors"
	"os"

	"fnc/ast"
	"fnc/common"
	"fnc/report"
	"fnc/scope"
	"fnc/syntax"
	"fnc/walk"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of a single run of the front end over one source file.
type Compiler struct {
	// The path to the source file being checked.
	srcPath string

	// The format the checked tree is dumped in.
	dumpFormat string

	// The source text of the file.
	src string

	// The scope table shared by the parser and the checker.
	table *scope.Table

	// The program produced by parsing.
	prog *ast.Node[*ast.Block]
}

// NewCompiler creates a new compiler for the source file at srcPath.
func NewCompiler(srcPath, dumpFormat string) *Compiler {
	return &Compiler{
		srcPath:    srcPath,
		dumpFormat: dumpFormat,
		table:      scope.NewTable(),
	}
}

// Compile runs the full front end over the source file and dumps the checked
// tree if a dump format is selected.  It handles all errors appropriately and
// returns whether checking succeeded.
func (c *Compiler) Compile() bool {
	report.ReportCompileHeader(common.FnVersion, c.srcPath)

	ok := c.Analyze()
	if ok {
		if err := ast.Dump(os.Stdout, c.prog, c.dumpFormat); err != nil {
			report.ReportStdError("Dump Error", err)
			ok = false
		}
	}

	report.ReportCompilationFinished()
	return ok
}

// Analyze runs the scanner, parser and checker in order.  It stops at the
// first error and reports it.  It returns whether analysis was successful.
func (c *Compiler) Analyze() bool {
	buff, err := os.ReadFile(c.srcPath)
	if err != nil {
		report.ReportStdError("File Error", err)
		return false
	}

	c.src = string(buff)

	report.ReportBeginPhase("Scanning")
	tokens, err := syntax.Scan(c.src)
	if !c.handleError(err) {
		return false
	}
	report.ReportEndPhase()

	report.ReportBeginPhase("Parsing")
	c.prog, err = syntax.Parse(syntax.Filter(tokens), c.table)
	if !c.handleError(err) {
		return false
	}
	report.ReportEndPhase()

	report.ReportBeginPhase("Checking")
	if !c.handleError(walk.Check(c.prog, c.table)) {
		return false
	}
	report.ReportEndPhase()

	return true
}

// handleError reports err if it is not nil.  It returns whether there was no
// error.
func (c *Compiler) handleError(err error) bool {
	if err == nil {
		return true
	}

	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		// every stage reports user errors as compile errors
		report.ReportICE("unexpected error: %s", err)
	}

	report.ReportCompileError(c.src, cerr)
	return false
}
