package generator

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Arma75/dtogen/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"jstr": javaString,
	"doc":  docText,
}

// templates is parsed once; executing a parsed template is safe from many
// goroutines.
var templates = template.Must(template.New("dtogen").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

// templated renders one of the search/save/response bodies, chosen by
// Project.Type.
type templated struct {
	g *Generator
}

func (t *templated) Emit(in *model.Project) (string, error) {
	p, err := t.g.prepare(in)
	if err != nil {
		return "", err
	}
	ctx := NewContext(p, Expand(p.Table, p), t.g.today())

	out, err := execute(string(p.Type), ctx)
	if err != nil {
		return "", err
	}
	t.g.rendered(string(StrategyTemplate), p, out)
	return out, nil
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
