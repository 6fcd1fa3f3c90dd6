package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
)

// PathStatus describes one skeleton entry after (or, in dry-run mode,
// instead of) touching it.
type PathStatus struct {
	Path   string
	Kind   Kind // What the layout expects at Path
	Exists bool
	IsDir  bool
}

// TouchAll ensures every skeleton entry exists. Directories are created
// recursively; files are created empty, or have their modification time
// bumped when they already exist. In dry-run mode nothing is created and
// the current state of each entry is reported instead.
//
// Filesystem errors are returned as-is and abort the remaining entries.
func (s *Scaffolder) TouchAll() ([]PathStatus, error) {
	log := s.log.With("op", "touch")
	projectDir := s.ProjectDir()

	if !s.opts.Dry {
		// The project directory itself is not created recursively: a
		// missing root is an error.
		if err := s.fs.Mkdir(projectDir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("creating %s: %w", projectDir, err)
		}
	}

	statuses := make([]PathStatus, 0, 7)
	for _, entry := range Layout(s.opts.Name) {
		path := filepath.Join(projectDir, entry.Rel)

		if !s.opts.Dry {
			if err := s.touch(path, entry.Kind); err != nil {
				return statuses, err
			}
		}

		st, err := s.inspect(path, entry.Kind)
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, st)

		if s.opts.Dry {
			log.Debug("inspect", "path", path, "exists", st.Exists, "dir", st.IsDir, "want", entry.Kind)
		} else {
			log.Debug("touch", "path", path, "exists", st.Exists)
		}
	}
	return statuses, nil
}

func (s *Scaffolder) touch(path string, kind Kind) error {
	if kind == KindDir {
		if err := s.fs.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		return nil
	}

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists {
		now := time.Now()
		if err := s.fs.Chtimes(path, now, now); err != nil {
			return fmt.Errorf("touching %s: %w", path, err)
		}
		return nil
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}

func (s *Scaffolder) inspect(path string, kind Kind) (PathStatus, error) {
	st := PathStatus{Path: path, Kind: kind}
	info, err := s.fs.Stat(path)
	switch {
	case err == nil:
		st.Exists = true
		st.IsDir = info.IsDir()
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
	default:
		return st, fmt.Errorf("checking %s: %w", path, err)
	}
	return st, nil
}
