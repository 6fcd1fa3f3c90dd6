package scaffold

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// ErrFileMissing is returned when a templated file is written outside
// dry-run mode but the skeleton has not created it.
var ErrFileMissing = errors.New("file does not exist")

// Status is the result of a single template write.
type Status int

const (
	StatusWritten Status = iota
	StatusSkipped        // dry run
	StatusFailed         // permission or other OS write error
)

func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome reports what a template writer did with its target file.
type Outcome struct {
	Op     string // "load-setup.py" or "load-main.py"
	Path   string
	Status Status
	Err    error // set when Status is StatusFailed
}

// Permission reports whether the write failed on a permission check.
func (o Outcome) Permission() bool {
	return o.Err != nil && errors.Is(o.Err, fs.ErrPermission)
}

// WriteSetup overwrites setup.py with the packaging template, which names
// the project as the package, the console script and the entry-point module.
func (s *Scaffolder) WriteSetup() (Outcome, error) {
	return s.writeTemplate("load-setup.py", s.SetupPath(), setupTemplate)
}

// WriteMain overwrites src/<name>.py with the entry-point template. The
// template is the same for every project; the name is not substituted.
func (s *Scaffolder) WriteMain() (Outcome, error) {
	return s.writeTemplate("load-main.py", s.MainPath(), mainTemplate)
}

// writeTemplate renders tmplName and writes it to path. A missing path
// outside dry-run mode is fatal and returned as an error. Write failures
// are logged and reported through the Outcome with a nil error.
func (s *Scaffolder) writeTemplate(op, path, tmplName string) (Outcome, error) {
	log := s.log.With("op", op)
	outcome := Outcome{Op: op, Path: path}

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists && !s.opts.Dry {
		log.Error("file doesn't exist, exiting", "path", path)
		err := fmt.Errorf("%s: %w, cannot load", path, ErrFileMissing)
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome, err
	}

	content, err := render(tmplName, templateData{
		Name:    s.opts.Name,
		Version: s.opts.PackageVersion,
	})
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome, err
	}

	if s.opts.Dry {
		outcome.Status = StatusSkipped
		log.Debug("dry run, not writing", "path", path, "bytes", len(content))
		return outcome, nil
	}

	if err := afero.WriteFile(s.fs, path, content, 0o644); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		if errors.Is(err, fs.ErrPermission) {
			log.Error("could not write the contents of the file due to a permission error", "path", path)
		} else {
			log.Error("could not write the contents of the file", "path", path, "err", err)
		}
		return outcome, nil
	}

	outcome.Status = StatusWritten
	log.Debug("wrote file", "path", path)
	return outcome, nil
}
