package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"fnc/ast"
	"fnc/common"
	"fnc/report"
)

// tomlModuleFile represents the module file as it is encoded in TOML.
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a module as it is encoded in TOML.
type tomlModule struct {
	Name    string `toml:"name"`
	Version string `toml:"fn-version"`
	Entry   string `toml:"entry"`
	Dump    string `toml:"dump,omitempty"`
}

// LoadModule loads and validates the module whose module file is in the
// directory at path.
func LoadModule(path string) (*FnModule, error) {
	buff, err := os.ReadFile(filepath.Join(path, common.FnModuleFileName))
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, fmt.Errorf("malformed module file: %w", err)
	}

	if tmf.Module == nil {
		return nil, fmt.Errorf("module file at %s is missing the [module] table", path)
	}

	mod := &FnModule{ModuleRoot: path}
	if err := validateModule(mod, tmf.Module); err != nil {
		return nil, err
	}

	mod.Name = tmf.Module.Name
	mod.EntryPath = filepath.Join(path, tmf.Module.Entry)
	mod.Version = tmf.Module.Version

	if tmf.Module.Dump == "" {
		mod.DumpFormat = ast.DumpNone
	} else {
		mod.DumpFormat = tmf.Module.Dump
	}

	return mod, nil
}

// validateModule checks that the module contents are valid.
func validateModule(fmod *FnModule, mod *tomlModule) error {
	if mod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", fmod.ModuleRoot)
	}

	if !common.IsValidIdentifier(mod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if mod.Entry == "" {
		return fmt.Errorf("module `%s` must specify an entry file", mod.Name)
	}

	if !strings.HasSuffix(mod.Entry, common.FnFileExt) {
		return fmt.Errorf("entry file of module `%s` must have the `%s` extension", mod.Name, common.FnFileExt)
	}

	if mod.Dump != "" && !ast.IsDumpFormat(mod.Dump) {
		return fmt.Errorf(
			"unknown dump format `%s` in module `%s`; expected one of: %s",
			mod.Dump,
			mod.Name,
			strings.Join(ast.DumpFormats, ", "),
		)
	}

	if mod.Version != common.FnVersion {
		report.ReportWarning(
			"module",
			"version of module `%s` (v%s) does not match current fnc version (v%s)",
			mod.Name,
			mod.Version,
			common.FnVersion,
		)
	}

	return nil
}
