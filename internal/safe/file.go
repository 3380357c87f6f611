// Package safe opens user-supplied files after validating them.
package safe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMaxFileSize is the default maximum file size for safe file operations (1MB).
const DefaultMaxFileSize = 1 << 20

var (
	// ErrNotRegular is returned for directories, devices and other non-regular files.
	ErrNotRegular = errors.New("not a regular file")

	// ErrTooLarge is returned when a file exceeds the configured size limit.
	ErrTooLarge = errors.New("file too large")

	// ErrSymlink is returned for symlinks when they are rejected.
	ErrSymlink = errors.New("symlink not allowed")
)

// Options configures file validation.
type Options struct {
	// MaxSize is the maximum allowed file size in bytes. Zero means DefaultMaxFileSize.
	MaxSize int64
	// RejectSymlinks refuses paths that are symlinks instead of following them.
	RejectSymlinks bool
}

// validate cleans path and checks it against opts.
func validate(path string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}
	maxSize := opts.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}

	cleanPath := filepath.Clean(path)

	// Check file info without following symlinks.
	info, err := os.Lstat(cleanPath)
	if err != nil {
		return "", err
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if opts.RejectSymlinks {
			return "", fmt.Errorf("%q: %w", path, ErrSymlink)
		}
		info, err = os.Stat(cleanPath)
		if err != nil {
			return "", err
		}
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%q: %w", path, ErrNotRegular)
	}

	if info.Size() > maxSize {
		return "", fmt.Errorf("%q is %d bytes, limit is %d: %w", path, info.Size(), maxSize, ErrTooLarge)
	}

	return cleanPath, nil
}

// Open opens a file for reading after validating it.
func Open(path string, opts *Options) (*os.File, error) {
	cleanPath, err := validate(path, opts)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - we have validated the file prior to this.
	return os.Open(cleanPath)
}

// ReadFile reads a file after validating it.
func ReadFile(path string, opts *Options) ([]byte, error) {
	cleanPath, err := validate(path, opts)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - we have validated the file prior to this.
	return os.ReadFile(cleanPath)
}
