package readmegen

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/README.md.tmpl
var defaultTemplate string

// numbers formats integers the way the README has always shown them ("12,345").
var numbers = message.NewPrinter(language.English)

var templateFuncs = template.FuncMap{
	"grouped": grouped,
}

func grouped(n int) string {
	return numbers.Sprintf("%d", n)
}

// Renderer turns Metadata into README text.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses text as a README template.
func NewRenderer(name, text string) (*Renderer, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// NewRendererFromFile parses the template stored at path.
func NewRendererFromFile(path string) (*Renderer, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}
	return NewRenderer(path, string(data))
}

// DefaultRenderer returns a Renderer for the embedded README template.
func DefaultRenderer() *Renderer {
	r, err := NewRenderer("README.md.tmpl", defaultTemplate)
	if err != nil {
		panic(err) // embedded template is covered by tests
	}
	return r
}

// Render executes the template. The output depends on m alone.
func (r *Renderer) Render(m Metadata) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, m); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return b.String(), nil
}
