//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// ToolOption configures a fixture executable
type ToolOption func(*toolOptions)

type toolOptions struct {
	mode   os.FileMode
	size   int
	marker string
}

// WithMode sets the permission bits of the fixture
func WithMode(mode os.FileMode) ToolOption {
	return func(opts *toolOptions) {
		opts.mode = mode
	}
}

// WithSize pads the fixture to size bytes
func WithSize(size int) ToolOption {
	return func(opts *toolOptions) {
		opts.size = size
	}
}

// WithMarker makes the fixture a script that writes its argv[0] to marker
func WithMarker(marker string) ToolOption {
	return func(opts *toolOptions) {
		opts.marker = marker
	}
}

// CreateBinDir creates a directory under the workspace to hold fixtures
func (tf *TUITestFramework) CreateBinDir(name string) (string, error) {
	dir := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

// CreateTool writes a fixture file named name into dir
func (tf *TUITestFramework) CreateTool(dir, name string, options ...ToolOption) (string, error) {
	opts := &toolOptions{mode: 0o755}
	for _, opt := range options {
		opt(opts)
	}

	content := []byte("#!/bin/sh\nexit 0\n")
	if opts.marker != "" {
		content = []byte(fmt.Sprintf("#!/bin/sh\nPATH=/bin:/usr/bin\necho \"$0\" > %q.tmp && mv %q.tmp %q\nexit 0\n",
			opts.marker, opts.marker, opts.marker))
	}
	if pad := opts.size - len(content); pad > 0 {
		content = append(content, make([]byte, pad)...)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, opts.mode); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(path, opts.mode); err != nil {
		return "", err
	}
	return path, nil
}
