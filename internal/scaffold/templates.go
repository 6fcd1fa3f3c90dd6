package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	setupTemplate = "templates/setup.py.tmpl"
	mainTemplate  = "templates/main.py.tmpl"
)

// templateData holds the variables available to the embedded templates.
// The entry-point template references none of them.
type templateData struct {
	Name    string
	Version string
}

func render(name string, data templateData) ([]byte, error) {
	raw, err := fs.ReadFile(templateFS, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
