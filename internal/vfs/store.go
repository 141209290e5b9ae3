// Package vfs provides a filesystem-backed resource store. Repository
// paths are absolute, slash-separated, and mapped under a root directory.
package vfs

import (
	"os"
	"path/filepath"
	"strings"

	"newelem/internal/errors"
	"newelem/internal/log"
	"newelem/pkg/types"

	"github.com/gobwas/glob"
)

// TempFilePrefix marks in-progress copies of a file being created.
const TempFilePrefix = "~"

// Store reads resources from a directory tree
type Store struct {
	root       string
	tempPrefix string
}

// Option configures a Store
type Option func(*Store)

// WithTempPrefix overrides the temporary-file prefix
func WithTempPrefix(prefix string) Option {
	return func(s *Store) {
		s.tempPrefix = prefix
	}
}

// New creates a store rooted at dir
func New(dir string, opts ...Option) *Store {
	s := &Store{
		root:       dir,
		tempPrefix: TempFilePrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// abs maps a repository path onto the filesystem
func (s *Store) abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(path, "/")))
}

// Exists reports whether a resource exists at the given path
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(s.abs(path))
	return err == nil
}

// Read returns the resource stored at the given path
func (s *Store) Read(path string) (types.Resource, error) {
	info, err := os.Stat(s.abs(path))
	if err != nil {
		if os.IsNotExist(err) {
			return types.Resource{}, errors.NewConfigError("resource not found", path, errors.ResourceNotFound, nil)
		}
		return types.Resource{}, err
	}
	return types.Resource{
		Path:     path,
		IsFolder: info.IsDir(),
		Size:     info.Size(),
	}, nil
}

// ListSiblings returns a point-in-time snapshot of the names directly in
// the given folder. The snapshot is not re-checked afterwards; callers
// racing against concurrent creates must serialize themselves.
func (s *Store) ListSiblings(folder string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(s.abs(folder))
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		names[e.Name()] = struct{}{}
	}
	log.Debugf("listed %d entries in %s", len(names), folder)
	return names, nil
}

// ListMatching returns the names directly in the folder that match the
// given glob pattern.
func (s *Store) ListMatching(folder, pattern string) (map[string]struct{}, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid glob pattern %q", pattern)
	}
	names, err := s.ListSiblings(folder)
	if err != nil {
		return nil, err
	}
	for name := range names {
		if !matcher.Match(name) {
			delete(names, name)
		}
	}
	return names, nil
}

// TempFileName returns the in-progress name variant for a target name.
// The prefix is applied to the base name, not the folder.
func (s *Store) TempFileName(name string) string {
	folder := types.FolderPath(name)
	return folder + s.tempPrefix + name[len(folder):]
}
