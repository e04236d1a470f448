package generator

import (
	"slices"

	"github.com/Arma75/dtogen/internal/model"
	"github.com/Arma75/dtogen/internal/paging"
)

const (
	PageRequestClass  = "PageRequest"
	PageResponseClass = "PageResponse"
)

// CompanionContext is what the paging templates render. It never carries a
// table: companions depend on project-level flags only.
type CompanionContext struct {
	PackageName string
	Imports     []string
	Author      string
	Today       string

	WriteComment bool
	UseLombok    bool
	UseSwagger   bool

	Doc        string
	Schema     string
	TypeParams []string

	DefaultPage       int
	DefaultSize       int
	ExampleTotalCount int64
	ExampleTotalPage  int

	Msg Messages
}

// PageRequest renders the common paging request class.
func (g *Generator) PageRequest(p *model.Project) (string, error) {
	cp := g.companionProject(p)
	msg := MessagesFor(cp.Locale)
	ctx := g.companionContext(cp)
	ctx.Doc, ctx.Schema = msg.PageRequestDoc, msg.PageRequestSchema
	return g.renderCompanion("page-request", PageRequestClass, ctx)
}

// PageResponse renders the generic common paging response class.
func (g *Generator) PageResponse(p *model.Project) (string, error) {
	cp := g.companionProject(p)
	msg := MessagesFor(cp.Locale)
	ctx := g.companionContext(cp, "java.util.List")
	ctx.Doc, ctx.Schema = msg.PageResponseDoc, msg.PageResponseSchema
	ctx.TypeParams = []string{"@param <T> " + msg.TypeParamDoc}
	return g.renderCompanion("page-response", PageResponseClass, ctx)
}

// companionProject returns a normalized copy of p, or the defaults when p is
// nil.
func (g *Generator) companionProject(p *model.Project) *model.Project {
	cp := model.DefaultProject()
	if p != nil {
		cp = *p
	}
	cp.Table = nil
	cp.Normalize()
	return &cp
}

func (g *Generator) companionContext(p *model.Project, imports ...string) CompanionContext {
	if p.UseLombok {
		imports = append(imports, "lombok.Getter", "lombok.ToString")
	}
	if p.UseSwagger {
		imports = append(imports, importSchema)
	}
	slices.Sort(imports)

	return CompanionContext{
		PackageName:       CommonPackage(p),
		Imports:           slices.Compact(imports),
		Author:            p.AuthorOrDefault(),
		Today:             g.today(),
		WriteComment:      p.WriteComment,
		UseLombok:         p.UseLombok,
		UseSwagger:        p.UseSwagger,
		DefaultPage:       paging.DefaultPage,
		DefaultSize:       paging.DefaultSize,
		ExampleTotalCount: paging.ExampleTotalCount,
		ExampleTotalPage:  paging.TotalPages(paging.ExampleTotalCount, paging.DefaultSize),
		Msg:               MessagesFor(p.Locale),
	}
}

func (g *Generator) renderCompanion(name, class string, ctx CompanionContext) (string, error) {
	out, err := execute(name, ctx)
	if err != nil {
		return "", err
	}
	g.log.Debug("rendered companion", "class", class, "bytes", len(out))
	return out, nil
}
