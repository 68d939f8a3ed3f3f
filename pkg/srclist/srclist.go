// Package srclist generates CMake source list files from a directory scan.
//
// The generated file declares a single list variable:
//
//	set(ssl_src
//		crypto/aes.c
//		crypto/sha.c
//	)
//
// The full file list is collected before the output is opened, so a failed
// scan never leaves a truncated list behind.
package srclist

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultExtension = ".c"
	DefaultVariable  = "ssl_src"
)

// ErrMissingArguments is returned when the root directory or output path is absent.
var ErrMissingArguments = errors.New("missing arguments: need <root-directory> <output-file>")

// Options configures a single generation run.
type Options struct {
	Root      string   // Directory to scan.
	Output    string   // List file to create or truncate.
	Extension string   // File name suffix to collect; DefaultExtension when empty.
	Variable  string   // List variable name; DefaultVariable when empty.
	Sort      bool     // Sort paths lexicographically instead of keeping walk order.
	Exclude   Excluder // Optional exclusion rules, matched against root-relative paths.
}

// Result describes a completed run.
type Result struct {
	Output string   // Path of the written list file.
	Files  []string // Paths written, in output order.
}

func (o Options) withDefaults() Options {
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.Variable == "" {
		o.Variable = DefaultVariable
	}
	return o
}

// Generate scans opts.Root and writes the list file to opts.Output.
func Generate(opts Options, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = opts.withDefaults()

	startTime := time.Now()
	logger.Info("Scanning for source files",
		zap.String("root", opts.Root),
		zap.String("extension", opts.Extension))

	files, err := Collect(opts.Root, opts.Extension, opts.Exclude, logger)
	if err != nil {
		logger.Error("Failed to collect source files", zap.String("root", opts.Root), zap.Error(err))
		return Result{}, fmt.Errorf("failed to collect source files: %w", err)
	}

	if opts.Sort {
		slices.Sort(files)
		logger.Debug("Sorted source files")
	}

	if err := WriteListFile(opts.Output, opts.Variable, files, logger); err != nil {
		return Result{}, fmt.Errorf("failed to write source list: %w", err)
	}

	logger.Info("Wrote source list",
		zap.String("output", opts.Output),
		zap.String("variable", opts.Variable),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))
	return Result{Output: opts.Output, Files: files}, nil
}
