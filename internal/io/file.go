// Package ioutils provides file system utilities for seqget.
//
// This package contains functions for:
//   - Directory creation
//   - Collision-free output paths for duplicate sequence tokens
package ioutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory and all parent directories if they
// don't exist. Directories are created with mode 0755. If the
// directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// UniquePath returns path if taken reports false for it, otherwise the
// first "name (n).ext" variant taken reports as free. Overlapping
// pattern components can expand to the same token twice; each
// occurrence still gets its own file.
//
// Example:
//
//	UniquePath("/out/a3.jpg", seen) // "/out/a3 (1).jpg" if seen claims a3.jpg
func UniquePath(path string, taken func(string) bool) string {
	if !taken(path) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if !taken(candidate) {
			return candidate
		}
	}
}
