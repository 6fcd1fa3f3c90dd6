package scaffold

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Kind distinguishes directories from regular files in the project layout.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is one path of the project skeleton, relative to <root>/<name>/.
type Entry struct {
	Rel  string
	Kind Kind
}

const (
	setupFile = "setup.py"
	srcDir    = "src"
)

// Layout returns the seven skeleton entries for a project, in creation order.
func Layout(name string) []Entry {
	return []Entry{
		{Rel: srcDir, Kind: KindDir},
		{Rel: filepath.Join(srcDir, "__init__.py"), Kind: KindFile},
		{Rel: mainRel(name), Kind: KindFile},
		{Rel: "readme.md", Kind: KindFile},
		{Rel: "requirements.txt", Kind: KindFile},
		{Rel: setupFile, Kind: KindFile},
		{Rel: "tests", Kind: KindDir},
	}
}

func mainRel(name string) string {
	return filepath.Join(srcDir, name+".py")
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName rejects project names that would escape the root directory
// once joined into a path.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("project name must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("invalid project name %q", name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0):
		return fmt.Errorf("invalid project name %q: must not contain path separators", name)
	}
	return nil
}

// IsPythonIdentifier reports whether name can be imported as src.<name>.
func IsPythonIdentifier(name string) bool {
	return identPattern.MatchString(name)
}
