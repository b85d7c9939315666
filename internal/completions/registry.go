package completions

import (
	"os"
	"path/filepath"
	"sync"
)

const defaultBinary = "brig"

var (
	binaryOnce sync.Once
	binaryPath string
	binaryName string
)

func resolveBinary() {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			binaryPath = resolved
		} else {
			binaryPath = exe
		}
	} else if len(os.Args) > 0 {
		binaryPath = os.Args[0]
	}
	binaryName = filepath.Base(binaryPath)

	if binaryPath == "" || binaryName == "." {
		binaryPath = defaultBinary
		binaryName = defaultBinary
	}
}

// BinaryName returns the name of the running binary (e.g. "brig").
func BinaryName() string {
	binaryOnce.Do(resolveBinary)
	return binaryName
}

// BinaryPath returns the full path to the running binary.
func BinaryPath() string {
	binaryOnce.Do(resolveBinary)
	return binaryPath
}
