package scaffold

import "os"

// TreeWriter is the narrow filesystem capability the builder depends on.
// Implementations must create directories recursively and overwrite
// existing files.
type TreeWriter interface {
	MkdirAll(path string) error
	WriteFile(path string, content []byte) error
}

// OSWriter writes to the local filesystem.
type OSWriter struct{}

// MkdirAll implements TreeWriter. Creating an existing directory is not
// an error.
func (OSWriter) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile implements TreeWriter, creating or truncating the file.
func (OSWriter) WriteFile(path string, content []byte) error {
	return os.WriteFile(path, content, 0o644)
}
