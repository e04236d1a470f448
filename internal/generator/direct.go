package generator

import (
	"strings"

	"github.com/Arma75/dtogen/internal/model"
)

// direct assembles the class text from the per-construct emitters.
type direct struct {
	g *Generator
}

func (d *direct) Emit(in *model.Project) (string, error) {
	p, err := d.g.prepare(in)
	if err != nil {
		return "", err
	}
	fields := Expand(p.Table, p)
	className := ClassName(p)

	var b strings.Builder
	b.WriteString("package " + PackageName(p) + ";\n\n")

	if imports := CollectImports(fields, p); len(imports) > 0 {
		for _, imp := range imports {
			b.WriteString("import " + imp + ";\n")
		}
		b.WriteString("\n")
	}

	if p.WriteComment {
		b.WriteString(ClassComment(p, d.g.today()) + "\n")
	}
	if p.UseLombok {
		for _, m := range lombokMarkers {
			b.WriteString(m + "\n")
		}
	}
	if p.UseSwagger {
		b.WriteString(schemaAnnotation("", MessagesFor(p.Locale).classSchema(p.Table.Label())) + "\n")
	}
	b.WriteString("public class " + className + " {\n")

	var blocks []string
	add := func(parts []string) {
		if len(parts) > 0 {
			blocks = append(blocks, strings.Join(parts, "\n\n"))
		}
	}

	decls := make([]string, 0, len(fields))
	for _, f := range fields {
		decls = append(decls, FieldDeclaration(f, p))
	}
	add(decls)

	if !p.UseLombok {
		getters := make([]string, 0, len(fields))
		setters := make([]string, 0, len(fields))
		for _, f := range fields {
			getters = append(getters, Getter(f, p))
			setters = append(setters, Setter(f, p))
		}
		add(getters)
		add(setters)
		add([]string{ToString(className, fields, p)})
	}
	if v := ValidateMethod(fields, p); v != "" {
		add([]string{v})
	}

	if len(blocks) > 0 {
		b.WriteString(strings.Join(blocks, "\n\n") + "\n")
	}
	b.WriteString("}\n")

	out := b.String()
	d.g.rendered(string(StrategyDirect), p, out)
	return out, nil
}
