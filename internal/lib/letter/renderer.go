// Package letter renders the documents the hub generates for its users.
//
// Templates are plain-text Go templates embedded in the binary and extended
// with the sprig function set, so optional fields can fall back to their
// placeholder text with `default`.
package letter

import (
	"bytes"
	"embed"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer executes the embedded letter templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every embedded template once.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("letters").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"usdate": USDate}).
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse letter templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// MustNewRenderer is NewRenderer for package initialisation and tests.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the named template with data.
func (r *Renderer) Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, name.fileName(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute letter template %s", name)
	}

	return body.String(), nil
}

// USDate renders an ISO-8601 timestamp as a US short date (M/D/YYYY, UTC).
// Input that is not a timestamp is returned unchanged.
func USDate(iso string) string {
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return iso
	}
	return t.UTC().Format("1/2/2006")
}
