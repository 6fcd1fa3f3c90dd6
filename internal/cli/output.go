package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pip-setup/pip-setup/internal/scaffold"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgHiMagenta)
	failColor = color.New(color.FgRed)
)

func printReport(w io.Writer, projectDir string, report *scaffold.Report) {
	if report.Dry {
		fmt.Fprintf(w, "Dry run, nothing written under %s/\n", projectDir)
	} else {
		fmt.Fprintf(w, "Set up project %s at %s/\n", report.Name, projectDir)
	}

	for _, st := range report.Paths {
		rel, err := filepath.Rel(projectDir, st.Path)
		if err != nil {
			rel = st.Path
		}
		if st.Kind == scaffold.KindDir {
			rel += "/"
		}

		switch {
		case !st.Exists:
			failColor.Fprintf(w, "  %-8s", "missing")
		case st.IsDir != (st.Kind == scaffold.KindDir):
			warnColor.Fprintf(w, "  %-8s", "conflict")
		default:
			okColor.Fprintf(w, "  %-8s", "exists")
		}
		fmt.Fprintf(w, " %s\n", rel)
	}

	for _, o := range report.Outcomes {
		if o.Status == scaffold.StatusWritten {
			fmt.Fprintf(w, "Wrote %s\n", o.Path)
		}
	}

	failed := report.Failed()
	if len(failed) == 0 {
		return
	}
	fmt.Fprintln(w, "\nWarnings:")
	for _, o := range failed {
		reason := "write failed"
		if o.Permission() {
			reason = "permission denied"
		}
		failColor.Fprintf(w, "  - %s: %s: %v\n", o.Path, reason, o.Err)
	}
}
