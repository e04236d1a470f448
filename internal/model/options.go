package model

import "strings"

const (
	DefaultTeamName    = "team"
	DefaultProjectName = "demoProject"
	DefaultJavaVersion = 17
	DefaultAuthor      = "system"
	DefaultDTOPostfix  = "DTO"
	DefaultColumnType  = "VARCHAR"
	DefaultLength      = 255
)

// Locale selects the language of generated comments.
type Locale string

const (
	LocaleKorean  Locale = "ko"
	LocaleEnglish Locale = "en"
)

// ParseLocale maps anything it does not recognise to LocaleKorean.
func ParseLocale(s string) Locale {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "en-us", "en_us", "english":
		return LocaleEnglish
	default:
		return LocaleKorean
	}
}

// DefaultColumn is a plain, optional VARCHAR(255) column.
func DefaultColumn() Column {
	return Column{
		Type:   DefaultColumnType,
		Length: DefaultLength,
	}
}

func DefaultProject() Project {
	return Project{
		TeamName:    DefaultTeamName,
		ProjectName: DefaultProjectName,
		JavaVersion: DefaultJavaVersion,
		Author:      DefaultAuthor,
		DTOPostfix:  DefaultDTOPostfix,
		Type:        KindResponse,
		Locale:      LocaleKorean,
	}
}

// Normalize fills required naming fields left empty and canonicalizes the
// enumerated ones. DTOPostfix and Author are left alone: an empty postfix is
// a valid choice and Author falls back at emission time.
func (p *Project) Normalize() {
	if p.TeamName == "" {
		p.TeamName = DefaultTeamName
	}
	if p.ProjectName == "" {
		p.ProjectName = DefaultProjectName
	}
	if p.JavaVersion == 0 {
		p.JavaVersion = DefaultJavaVersion
	}
	if k, err := ParseRequestKind(string(p.Type)); err == nil {
		p.Type = k
	} else {
		p.Type = KindResponse
	}
	p.Locale = ParseLocale(string(p.Locale))
}

// functional option pattern ---------------------------------------------------

type ColumnOption func(*Column)

// NewColumn starts from DefaultColumn and applies opts in order.
func NewColumn(name string, opts ...ColumnOption) Column {
	c := DefaultColumn()
	c.Name = name
	for _, fn := range opts {
		fn(&c)
	}
	return c
}

func WithType(t string) ColumnOption { return func(c *Column) { c.Type = t } }
func WithLength(n int) ColumnOption { return func(c *Column) { c.Length = n } }
func WithComment(s string) ColumnOption { return func(c *Column) { c.Comment = s } }
func WithDefault(v string) ColumnOption { return func(c *Column) { c.DefaultValue = v } }
func PrimaryKey() ColumnOption { return func(c *Column) { c.PK = true } }
func NotNull() ColumnOption { return func(c *Column) { c.NotNull = true } }
func AutoIncrease() ColumnOption { return func(c *Column) { c.AutoIncrease = true } }
func Unbounded() ColumnOption { return func(c *Column) { c.Length = 0 } }

// NewTable builds a table; columns are copied so later edits to the
// caller's slice do not leak in.
func NewTable(name, comment string, cols ...Column) *Table {
	return &Table{
		Name:    name,
		Comment: comment,
		Columns: append([]Column(nil), cols...),
	}
}

type ProjectOption func(*Project)

// NewProject starts from DefaultProject and applies opts in order.
func NewProject(opts ...ProjectOption) *Project {
	p := DefaultProject()
	for _, fn := range opts {
		fn(&p)
	}
	return &p
}

func WithTeam(s string) ProjectOption { return func(p *Project) { p.TeamName = s } }
func WithProjectName(s string) ProjectOption { return func(p *Project) { p.ProjectName = s } }
func WithJavaVersion(v int) ProjectOption { return func(p *Project) { p.JavaVersion = v } }
func WithAuthor(s string) ProjectOption { return func(p *Project) { p.Author = s } }
func WithPostfix(s string) ProjectOption { return func(p *Project) { p.DTOPostfix = s } }
func WithRequestKind(k RequestKind) ProjectOption { return func(p *Project) { p.Type = k } }
func WithLocale(l Locale) ProjectOption { return func(p *Project) { p.Locale = l } }
func WithTableDef(t *Table) ProjectOption { return func(p *Project) { p.Table = t } }
func WithComments() ProjectOption { return func(p *Project) { p.WriteComment = true } }
func WithLombok() ProjectOption { return func(p *Project) { p.UseLombok = true } }
func WithSwagger() ProjectOption { return func(p *Project) { p.UseSwagger = true } }
func WithDateRange() ProjectOption { return func(p *Project) { p.UseDateRange = true } }
func WithSingularize() ProjectOption { return func(p *Project) { p.Singularize = true } }
