// Package docs generates the hub's API reference.
//
// The reference is rendered to Markdown from the endpoint catalogue with a
// text/template extended by sprig. It is served at GET /docs and written by
// the `masterhub docs` command. A sample tender letter, produced by the same
// renderer the API uses, is embedded at the end.
package docs

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lawfully-illegal/masterhub/internal/config"
	"github.com/lawfully-illegal/masterhub/internal/lib/letter"
	"github.com/lawfully-illegal/masterhub/internal/model"
)

//go:embed templates/api.md.tmpl
var templatesFS embed.FS

const templateName = "api.md.tmpl"

// Generator renders the API reference for one hub configuration.
type Generator struct {
	hub      config.HubConfig
	letters  *letter.Renderer
	template *template.Template
}

// document is the data the Markdown template is executed with.
type document struct {
	Hub          config.HubConfig
	Groups       []Group
	SampleLetter string
}

// NewGenerator parses the documentation template.
func NewGenerator(hub config.HubConfig, letters *letter.Renderer) (*Generator, error) {
	title := cases.Title(language.English)

	tmpl, err := template.New(templateName).
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"section": title.String}).
		ParseFS(templatesFS, "templates/"+templateName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse documentation template")
	}

	return &Generator{hub: hub, letters: letters, template: tmpl}, nil
}

// Markdown renders the full API reference.
func (g *Generator) Markdown() ([]byte, error) {
	sample, ok := letter.PreviewData[letter.TemplateTenderLetter].(model.TenderLetter)
	if !ok {
		return nil, errors.New("no preview data for the tender letter")
	}
	sample.LedgerHost = g.hub.PublicHost

	sampleLetter, err := g.letters.Render(letter.TemplateTenderLetter, sample)
	if err != nil {
		return nil, errors.WithMessage(err, "render sample tender letter")
	}

	var out bytes.Buffer
	err = g.template.Execute(&out, document{
		Hub:          g.hub,
		Groups:       Groups(Catalogue()),
		SampleLetter: sampleLetter,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute documentation template")
	}

	return out.Bytes(), nil
}
