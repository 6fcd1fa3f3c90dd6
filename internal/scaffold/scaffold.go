package scaffold

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
)

// DefaultPackageVersion is written into setup.py when no version is given.
const DefaultPackageVersion = "0.1.0"

// Options configures a single scaffolding run.
type Options struct {
	Name           string // Project directory and package name, e.g. "mycli"
	Root           string // Directory the project is created under
	PackageVersion string // Semver written into setup.py
	Dry            bool   // Inspect only, never touch the filesystem
}

// Normalize validates the options and fills in defaults. Root is resolved
// to an absolute path.
func (o *Options) Normalize() error {
	if err := ValidateName(o.Name); err != nil {
		return err
	}

	if o.Root == "" {
		o.Root = "."
	}
	abs, err := filepath.Abs(o.Root)
	if err != nil {
		return fmt.Errorf("resolving root %s: %w", o.Root, err)
	}
	o.Root = abs

	if o.PackageVersion == "" {
		o.PackageVersion = DefaultPackageVersion
	}
	// Accept a leading "v" but write the bare version.
	v, err := semver.NewVersion(strings.TrimPrefix(o.PackageVersion, "v"))
	if err != nil {
		return fmt.Errorf("invalid package version %q: %w", o.PackageVersion, err)
	}
	o.PackageVersion = v.String()
	return nil
}

// Scaffolder creates one project skeleton on a filesystem.
type Scaffolder struct {
	fs   afero.Fs
	log  *slog.Logger
	opts Options
}

// New returns a Scaffolder for the normalized options. A nil logger discards
// all records.
func New(fsys afero.Fs, logger *slog.Logger, opts Options) (*Scaffolder, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scaffolder{fs: fsys, log: logger, opts: opts}, nil
}

// Options returns the normalized options.
func (s *Scaffolder) Options() Options { return s.opts }

// ProjectDir returns <root>/<name>.
func (s *Scaffolder) ProjectDir() string {
	return filepath.Join(s.opts.Root, s.opts.Name)
}

// SetupPath returns the packaging descriptor path.
func (s *Scaffolder) SetupPath() string {
	return filepath.Join(s.ProjectDir(), setupFile)
}

// MainPath returns the entry-point script path.
func (s *Scaffolder) MainPath() string {
	return filepath.Join(s.ProjectDir(), mainRel(s.opts.Name))
}

// Report collects everything a run did or would have done.
type Report struct {
	Root     string
	Name     string
	Dry      bool
	Paths    []PathStatus
	Outcomes []Outcome
}

// Failed returns the outcomes of writers that could not write their file.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Run touches the skeleton, then writes setup.py and the entry point, in
// that order. Writer failures are recorded in the report and do not stop
// the run; a missing target file or a filesystem error while touching the
// skeleton aborts it.
func (s *Scaffolder) Run() (*Report, error) {
	report := &Report{
		Root: s.opts.Root,
		Name: s.opts.Name,
		Dry:  s.opts.Dry,
	}

	if !IsPythonIdentifier(s.opts.Name) {
		s.log.Warn("project name is not a valid Python identifier; the console script will not import",
			"name", s.opts.Name)
	}

	paths, err := s.TouchAll()
	report.Paths = paths
	if err != nil {
		return report, err
	}

	for _, write := range []func() (Outcome, error){s.WriteSetup, s.WriteMain} {
		outcome, err := write()
		report.Outcomes = append(report.Outcomes, outcome)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}
