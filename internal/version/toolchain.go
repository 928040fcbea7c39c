package version

import (
	"bytes"
	"os/exec"
	"regexp"
)

// toolVersionRegex matches version output like "v20.17.0" or "Python 3.12.4".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// ToolchainInfo describes the toolchain a generated project needs to run.
type ToolchainInfo struct {
	// Name is the binary name looked up (node, python3, java).
	Name string `json:"name"`

	// Version is the detected version string.
	Version string `json:"version"`

	// Path is the binary path.
	Path string `json:"path"`

	// Found indicates whether the binary is on PATH.
	Found bool `json:"found"`
}

// runtimeBinaries maps a blueprint runtime to the binary that proves the
// toolchain is installed.
var runtimeBinaries = map[string]string{
	"node":   "node",
	"python": "python3",
	"jvm":    "java",
}

// DetectToolchain looks up the toolchain binary for a blueprint runtime.
// An unknown runtime reports not found with an empty name.
func DetectToolchain(runtime string) ToolchainInfo {
	binary, ok := runtimeBinaries[runtime]
	if !ok {
		return ToolchainInfo{}
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return ToolchainInfo{Name: binary}
	}

	return ToolchainInfo{
		Name:    binary,
		Version: toolVersion(path),
		Path:    path,
		Found:   true,
	}
}

// toolVersion executes '<binary> --version' and extracts the version string.
func toolVersion(path string) string {
	cmd := exec.Command(path, "--version")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return ""
	}

	return toolVersionRegex.FindString(out.String())
}
