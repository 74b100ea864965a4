package mods

// FnModule represents a module: a directory holding an `fn-mod.toml` file and
// the `fn` source it describes.
type FnModule struct {
	// Name is the name of the module.
	Name string

	// ModuleRoot is the path to the directory containing the module file.
	ModuleRoot string

	// EntryPath is the path to the source file checked when the module is.
	EntryPath string

	// DumpFormat is the format the checked tree is printed in.  This is one of
	// the formats enumerated by `ast.DumpFormats`.
	DumpFormat string

	// Version is the front end version the module was created with.
	Version string
}
