// Package searchpath builds the ordered list of directories to index.
package searchpath

import (
	"fmt"
	"strings"

	"aelist/internal/domain"
)

// MaxPaths is the largest number of search paths accepted
const MaxPaths = 512

// Separator splits entries of a path list variable
const Separator = ":"

// Split splits a path list on ':'. Empty segments are kept as empty
// entries; an empty list yields no entries.
func Split(list string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, Separator)
}

// Resolve returns explicit followed by the entries of envList. envList is
// used when there are no explicit paths or when includeEnv is set.
func Resolve(explicit []string, envList string, includeEnv bool) ([]string, error) {
	paths := make([]string, 0, len(explicit))
	paths = append(paths, explicit...)

	if len(explicit) == 0 || includeEnv {
		paths = append(paths, Split(envList)...)
	}

	if len(paths) > MaxPaths {
		return nil, fmt.Errorf("%w: %d given, at most %d allowed", domain.ErrTooManyPaths, len(paths), MaxPaths)
	}
	return paths, nil
}
