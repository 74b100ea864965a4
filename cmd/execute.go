package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"fnc/ast"
	"fnc/common"
	"fnc/mods"
	"fnc/report"
)

// Execute runs the main `fnc` application.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("fnc", "fnc checks programs written in the fn scripting language", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, report.LogLevelNames)
	logLvlArg.SetDefaultValue("verbose")
	cli.AddFlag("no-color", "nc", "disable colored output")

	checkCmd := cli.AddSubcommand("check", "check a source file or module", true)
	checkCmd.AddPrimaryArg("path", "the path to the source file or module directory to check", true)
	checkCmd.AddSelectorArg("dump", "d", "the format to print the checked syntax tree in", false, ast.DumpFormats)

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module in the working directory", true)
	modInitCmd.AddPrimaryArg("module-name", "the name of the module", true)
	modInitCmd.AddStringArg("entry", "e", "the entry file of the module", false)

	cli.AddSubcommand("version", "print the fnc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	report.SetColor(!result.HasFlag("no-color"))
	report.InitReporter(report.LogLevelFromName(result.Arguments["loglevel"].(string)))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult)
	case "mod":
		execModCommand(subResult)
	case "version":
		report.DisplayInfoMessage("fnc Version", common.FnVersion)
	}

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// execCheckCommand executes the check subcommand and handles all errors.  The
// path may name a source file or a module directory.
func execCheckCommand(result *olive.ArgParseResult) {
	relPath, _ := result.PrimaryArg()

	path, err := filepath.Abs(relPath)
	if err != nil {
		report.ReportStdError("Path Error", err)
		return
	}

	finfo, err := os.Stat(path)
	if err != nil {
		report.ReportStdError("Path Error", err)
		return
	}

	srcPath, dumpFormat := path, ast.DumpNone
	if finfo.IsDir() {
		mod, err := mods.LoadModule(path)
		if err != nil {
			report.ReportStdError("Module Load Error", err)
			return
		}

		srcPath, dumpFormat = mod.EntryPath, mod.DumpFormat
	} else {
		if filepath.Ext(path) != common.FnFileExt {
			report.ReportStdError(
				"Path Error",
				fmt.Errorf("source files must have the `%s` extension", common.FnFileExt),
			)
			return
		}

		// a source file inside a module uses the module's settings
		if root, ok := mods.FindModuleRoot(filepath.Dir(path)); ok {
			if mod, err := mods.LoadModule(root); err == nil {
				dumpFormat = mod.DumpFormat
			} else {
				report.ReportWarning("module", "ignoring module at %s: %s", root, err)
			}
		}
	}

	if dumpArg, ok := result.Arguments["dump"]; ok {
		dumpFormat = dumpArg.(string)
	}

	NewCompiler(srcPath, dumpFormat).Compile()
}

// execModCommand executes the `mod` subcommand and its subcommands.  It handles
// all errors related to this command.
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		report.ReportStdError("Path Error", err)
		return
	}

	switch subcmdName {
	case "init":
		modName, _ := subResult.PrimaryArg()

		entry := "main" + common.FnFileExt
		if entryArg, ok := subResult.Arguments["entry"]; ok {
			entry = entryArg.(string)
		}

		if err := mods.InitModule(modName, workDir, entry); err != nil {
			report.ReportStdError("Module Init Error", err)
			return
		}

		report.DisplayInfoMessage("Module", fmt.Sprintf("initialized module `%s` in %s", modName, workDir))
	}
}
