// Package install copies the running kc binary to a well-known location and
// prepares the kubeconfig source directory.
package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"kc/pkg/logging"
)

const subsystem = "Install"

// BinaryName is the file name kc is installed under.
const BinaryName = "kc"

// For mocking in tests
var osExecutable = os.Executable

// Options configures Install.
type Options struct {
	// Dir receives the binary, e.g. ~/.kube.
	Dir string
	// SourceDir is created if missing, e.g. ~/.kube/config.d.
	SourceDir string
}

// Result reports where things ended up.
type Result struct {
	BinaryPath string
	SourceDir  string
}

// Install copies the running executable to opts.Dir/kc with mode 0755 and
// makes sure opts.Dir and opts.SourceDir exist.
func Install(opts Options) (*Result, error) {
	src, err := osExecutable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate running executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(src); err == nil {
		src = resolved
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.Dir, err)
	}

	dst := filepath.Join(opts.Dir, BinaryName)
	if sameFile(src, dst) {
		logging.Info(subsystem, "%s is already installed at %s", BinaryName, dst)
	} else if err := copyExecutable(src, dst); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.SourceDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.SourceDir, err)
	}

	return &Result{BinaryPath: dst, SourceDir: opts.SourceDir}, nil
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// copyExecutable writes src to a temporary file next to dst and renames it
// into place, so a running copy of dst is never truncated.
func copyExecutable(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+BinaryName+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", filepath.Dir(dst), err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0755); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("failed to install %s: %w", dst, err)
	}
	logging.Info(subsystem, "Copied %s to %s", src, dst)
	return nil
}
