package discovery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"aelist/internal/domain"
)

// growStep is the number of records the index grows by when full
const growStep = 1024

// DiscoveryService finds executables in a list of search paths
type DiscoveryService interface {
	Scan(ctx context.Context, paths []string) (*domain.Index, error)
}

// discoveryService is the concrete implementation
type discoveryService struct {
	log        zerolog.Logger
	executable func(path string) bool
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(log zerolog.Logger) DiscoveryService {
	return &discoveryService{
		log:        log.With().Str("component", "discovery").Logger(),
		executable: isExecutable,
	}
}

// isExecutable reports whether the calling process may execute path
func isExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

// Scan lists every executable directly inside each of paths, in order.
// Unreadable directories and entries that disappear or aren't executable
// are skipped. An empty result is reported as domain.ErrNothingFound.
func (ds *discoveryService) Scan(ctx context.Context, paths []string) (*domain.Index, error) {
	idx := &domain.Index{Paths: len(paths)}

	for _, dir := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		ds.scanDirectory(idx, dir)
	}

	if idx.Len() == 0 {
		return nil, fmt.Errorf("%w (%d paths scanned)", domain.ErrNothingFound, len(paths))
	}

	ds.log.Info().
		Int("executables", idx.Len()).
		Int("paths", idx.Paths).
		Uint64("total_size", idx.TotalSize).
		Msg("index built")
	return idx, nil
}

// scanDirectory appends the executables found in dir to idx
func (ds *discoveryService) scanDirectory(idx *domain.Index, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil && len(entries) == 0 {
		ds.log.Debug().Err(err).Str("dir", dir).Msg("skipping search path")
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		path := filepath.Join(dir, name)
		if !ds.executable(path) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				ds.log.Debug().Err(err).Str("path", path).Msg("stat failed")
			}
			continue
		}
		if info.IsDir() {
			continue
		}

		if len(idx.Executables) == cap(idx.Executables) {
			idx.Executables = slices.Grow(idx.Executables, growStep)
		}
		idx.Executables = append(idx.Executables, domain.Executable{
			Name: name,
			Path: path,
			Size: info.Size(),
		})
		idx.TotalSize += uint64(info.Size())
	}
}
