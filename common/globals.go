package common

// FnVersion is the current version of the `fn` front end as a string.
const FnVersion string = "0.1.0"

// FnModuleFileName is the name for `fn` module files.
const FnModuleFileName string = "fn-mod.toml"

// FnFileExt is the file extension for an `fn` source file.
const FnFileExt string = ".fn"

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, entry name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
