// Package config holds process-wide constants: recognized source file
// extensions, the default project manifest name, and the handful of
// built-in names the resolver seeds every symbol table with.
package config

// Version is the current behave compiler version. Set at build time via
// -ldflags, the same mechanism funvibe/funxy uses for its own Version var.
var Version = "0.1.0"

// MainFileExt is the extension of the single main file a project may
// contain (LODs + behavior block).
const MainFileExt = ".bhv"

// SecondaryFileExt is the extension of secondary files (item declarations
// only: functions, templates, structs, enums, variables).
const SecondaryFileExt = ".bhi"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{MainFileExt, SecondaryFileExt}

// ManifestFileName is the optional project manifest behave looks for at
// the project root.
const ManifestFileName = "behave.yaml"

// TrimSourceExt removes a recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsMainFile returns true if the path ends with MainFileExt.
func IsMainFile(path string) bool {
	return len(path) >= len(MainFileExt) && path[len(path)-len(MainFileExt):] == MainFileExt
}

// FormatFuncName is the single inbuilt function name the resolver seeds:
// `format(str, ...)`.
const FormatFuncName = "format"

// MouseEventEnumName is the name of the single inbuilt enum the resolver
// seeds: the eighteen-variant MouseEvent enum.
const MouseEventEnumName = "MouseEvent"
