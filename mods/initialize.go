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
)

// entryTemplate is the source written to a newly created entry file.
const entryTemplate = "let answer = 42\n"

// InitModule creates a new module with the given name in the directory at
// path.  The entry file is created if it does not already exist.
func InitModule(name, path, entry string) error {
	modFilePath := filepath.Join(path, common.FnModuleFileName)

	// check to see if a module already exists
	_, err := os.Stat(modFilePath)
	if err == nil {
		return errors.New("module file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("module file error: %w", err)
	}

	if !common.IsValidIdentifier(name) {
		return errors.New("module name must be a valid identifier")
	}

	if !strings.HasSuffix(entry, common.FnFileExt) {
		return fmt.Errorf("entry file must have the `%s` extension", common.FnFileExt)
	}

	mod := &tomlModule{
		Name:    name,
		Version: common.FnVersion,
		Entry:   entry,
		Dump:    ast.DumpNone,
	}

	f, err := os.Create(modFilePath)
	if err != nil {
		return fmt.Errorf("error creating module file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlModuleFile{Module: mod}); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}

	entryPath := filepath.Join(path, entry)
	if _, err := os.Stat(entryPath); os.IsNotExist(err) {
		if err := os.WriteFile(entryPath, []byte(entryTemplate), 0644); err != nil {
			return fmt.Errorf("error creating entry file: %w", err)
		}
	}

	return nil
}
