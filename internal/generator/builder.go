package generator

import (
	"slices"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/Arma75/dtogen/internal/model"
	"github.com/Arma75/dtogen/internal/naming"
	"github.com/Arma75/dtogen/internal/typemap"
)

const (
	importSchema = "io.swagger.v3.oas.annotations.media.Schema"

	rangeStart = "Start"
	rangeEnd   = "End"
)

var lombokImports = []string{
	"lombok.AllArgsConstructor",
	"lombok.Builder",
	"lombok.Getter",
	"lombok.NoArgsConstructor",
	"lombok.Setter",
	"lombok.ToString",
}

// lombokMarkers are emitted one per line above the class declaration.
var lombokMarkers = []string{
	"@Getter",
	"@Setter",
	"@ToString",
	"@NoArgsConstructor",
	"@AllArgsConstructor",
	"@Builder",
}

// ProjectColumn decorates a single column without any expansion.
func ProjectColumn(col model.Column) model.ProjectedField {
	javaType := typemap.ResolveType(col)
	return model.ProjectedField{
		Column:       col,
		FieldName:    naming.ToCamelCase(col.Name),
		AccessorName: naming.ToPascalCase(col.Name),
		Comment:      col.Label(),
		JavaType:     javaType,
		Imports:      typemap.ResolveImports(col),
		DateFormat:   typemap.DateFormat(javaType),
	}
}

// Expand projects every column of t in order. With UseDateRange, each
// temporal column is followed by its Start and End clones.
// The table is never modified.
func Expand(t *model.Table, p *model.Project) []model.ProjectedField {
	if t == nil {
		return nil
	}
	msg := MessagesFor(model.LocaleKorean)
	rangeOn := false
	if p != nil {
		msg = MessagesFor(model.ParseLocale(string(p.Locale)))
		rangeOn = p.UseDateRange
	}

	out := make([]model.ProjectedField, 0, len(t.Columns))
	for _, col := range t.Columns {
		base := ProjectColumn(col)
		out = append(out, base)
		if !rangeOn || !base.IsTemporal() {
			continue
		}
		out = append(out,
			rangeField(base, rangeStart, msg.StartSuffix),
			rangeField(base, rangeEnd, msg.EndSuffix),
		)
	}
	return out
}

func rangeField(base model.ProjectedField, suffix, marker string) model.ProjectedField {
	f := base
	f.Column.Name = base.Column.Name + suffix
	f.Column.AutoIncrease = false
	f.FieldName = base.FieldName + suffix
	f.AccessorName = base.AccessorName + suffix
	f.Comment = base.Comment + marker
	f.Imports = slices.Clone(base.Imports)
	f.Synthetic = true
	return f
}

// ClassName is the PascalCase table name plus the DTO postfix.
func ClassName(p *model.Project) string {
	if p == nil || p.Table == nil {
		return ""
	}
	name := p.Table.Name
	if p.Singularize {
		name = inflection.Singular(naming.ToSnakeCase(name))
	}
	return naming.ToPascalCase(name) + p.DTOPostfix
}

// PackageName is com.<team>.<project>.<table>.dto; empty segments are
// skipped.
func PackageName(p *model.Project) string {
	table := ""
	if p.Table != nil {
		table = naming.ToSnakeCase(p.Table.Name)
	}
	return joinPackage("com", p.TeamName, p.ProjectName, table, "dto")
}

// CommonPackage holds PageRequest and PageResponse.
func CommonPackage(p *model.Project) string {
	return joinPackage("com", p.TeamName, p.ProjectName, "common", "dto")
}

func joinPackage(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// CollectImports gathers every import the class needs, de-duplicated and
// sorted.
func CollectImports(fields []model.ProjectedField, p *model.Project, extra ...string) []string {
	seen := make(map[string]struct{})
	add := func(imps ...string) {
		for _, imp := range imps {
			if imp != "" {
				seen[imp] = struct{}{}
			}
		}
	}
	for _, f := range fields {
		add(f.Imports...)
	}
	if p.UseLombok {
		add(lombokImports...)
	}
	if p.UseSwagger {
		add(importSchema)
	}
	add(extra...)

	out := make([]string, 0, len(seen))
	for imp := range seen {
		out = append(out, imp)
	}
	slices.Sort(out)
	return out
}

func hasValidation(fields []model.ProjectedField) bool {
	return slices.ContainsFunc(fields, model.ProjectedField.NeedsValidation)
}
