package kubeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"kc/pkg/logging"
)

const subsystem = "Merge"

// DefaultExtensions are the file extensions picked up from the source
// directory when none are configured.
var DefaultExtensions = []string{".yaml"}

// Options configures CombineAndWrite. All paths are explicit; resolving
// home-relative defaults is the caller's job.
type Options struct {
	// SourceDir holds one kubeconfig per file.
	SourceDir string
	// OutputPath is overwritten with the combined kubeconfig.
	OutputPath string
	// Extensions selects the files of SourceDir to read. Defaults to
	// DefaultExtensions.
	Extensions []string
	// CurrentContext is set as current-context on the combined document when
	// a context of that name survives the merge.
	CurrentContext string
}

// Result describes a completed merge.
type Result struct {
	Document   *Document
	Files      []string
	Problems   []Problem
	OutputPath string
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SourceFiles lists the files in dir with one of the given extensions, in
// lexical order. A missing directory yields no files.
func SourceFiles(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Warn(subsystem, "Source directory %s does not exist", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read source directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if !slices.Contains(extensions, filepath.Ext(name)) {
			continue
		}
		if entry.IsDir() {
			logging.Warn(subsystem, "Skipping directory %s", filepath.Join(dir, name))
			continue
		}
		if Stem(name) == "" {
			logging.Warn(subsystem, "Skipping %s: file name has no stem to use as prefix", filepath.Join(dir, name))
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

// Combine loads every source file of dir, renames its entries after the
// file's stem and appends them to a fresh document. It stops at the first file
// that fails to load.
func Combine(dir string, extensions ...string) (*Document, error) {
	files, err := SourceFiles(dir, extensions)
	if err != nil {
		return nil, err
	}
	return combineFiles(files)
}

func combineFiles(files []string) (*Document, error) {
	combined := NewDocument()
	for _, path := range files {
		logging.Info(subsystem, "Processing %s", path)
		doc, err := Load(path)
		if err != nil {
			return nil, err
		}
		for _, p := range CheckSource(doc) {
			logging.Warn(subsystem, "%s: %s", path, p)
		}
		Rename(doc, Stem(path))
		logging.Debug(subsystem, "%s: %d clusters, %d users, %d contexts", path, len(doc.Clusters), len(doc.Users), len(doc.Contexts))
		combined.append(doc)
	}
	return combined, nil
}

// CombineAndWrite combines opts.SourceDir and writes the result to
// opts.OutputPath. When no cluster is found it returns an error wrapping
// ErrNoClusters and leaves OutputPath untouched.
func CombineAndWrite(opts Options) (*Result, error) {
	files, err := SourceFiles(opts.SourceDir, opts.Extensions)
	if err != nil {
		return nil, err
	}
	doc, err := combineFiles(files)
	if err != nil {
		return nil, err
	}

	res := &Result{Document: doc, Files: files, OutputPath: opts.OutputPath}
	if len(doc.Clusters) == 0 {
		return res, fmt.Errorf("%w in %s, not overwriting %s", ErrNoClusters, opts.SourceDir, opts.OutputPath)
	}

	res.Problems = Check(doc)
	for _, p := range res.Problems {
		logging.Warn(subsystem, "%s", p)
	}

	if opts.CurrentContext != "" {
		if doc.HasContext(opts.CurrentContext) {
			doc.CurrentContext = opts.CurrentContext
		} else {
			logging.Warn(subsystem, "Previous current-context %q is not in the combined config, leaving it unset", opts.CurrentContext)
		}
	}

	if err := Write(doc, opts.OutputPath); err != nil {
		return nil, err
	}
	logging.Info(subsystem, "Combined config saved to %s", opts.OutputPath)
	return res, nil
}
