package mods

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"fnc/common"
)

// FindModuleRoot searches dir and each of its parent directories for a module
// file.  It returns the directory holding the nearest module file found.
func FindModuleRoot(dir string) (string, bool) {
	abspath, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		if checkPath(abspath) {
			return abspath, true
		}

		parent := filepath.Dir(abspath)
		if parent == abspath {
			return "", false
		}

		abspath = parent
	}
}

// checkPath checks to see if a directory contains a module file which at
// least names its module.  The module file is not validated.
func checkPath(abspath string) bool {
	mfPath := filepath.Join(abspath, common.FnModuleFileName)

	finfo, err := os.Stat(mfPath)
	if err != nil || finfo.IsDir() {
		return false
	}

	tree, err := toml.LoadFile(mfPath)
	if err != nil {
		return false
	}

	_, ok := tree.Get("module.name").(string)
	return ok
}
