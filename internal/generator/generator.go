// Package generator renders Java DTO classes and their paging companions
// from a model.Project. Two strategies produce the class text: Direct builds
// it construct by construct, Template renders embedded text/templates
// against a flattened Context. Both consume the same expanded field list.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Arma75/dtogen/internal/model"
)

var (
	ErrMissingTable    = errors.New("project has no table")
	ErrUnknownStrategy = errors.New("unknown emission strategy")
)

// Strategy names an Emitter implementation.
type Strategy string

const (
	StrategyDirect   Strategy = "direct"
	StrategyTemplate Strategy = "template"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyDirect:
		return StrategyDirect, nil
	case StrategyTemplate:
		return StrategyTemplate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Emitter turns a project into one Java compilation unit.
type Emitter interface {
	Emit(p *model.Project) (string, error)
}

// Generator carries what emission needs from the outside world: a clock for
// @since stamps and a logger. It holds no per-call state and is safe for
// concurrent use.
type Generator struct {
	now func() time.Time
	log *slog.Logger
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
		log: slog.Default(),
	}
	for _, fn := range opts {
		fn(g)
	}
	return g
}

// Emitter returns the implementation for s.
func (g *Generator) Emitter(s Strategy) (Emitter, error) {
	switch s {
	case StrategyDirect, "":
		return g.Direct(), nil
	case StrategyTemplate:
		return g.Template(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (g *Generator) Direct() Emitter {
	return &direct{g: g}
}

func (g *Generator) Template() Emitter {
	return &templated{g: g}
}

func (g *Generator) today() string {
	return g.now().UTC().Format(time.DateOnly)
}

// prepare validates p and returns a normalized copy so emission never writes
// to the caller's value.
func (g *Generator) prepare(p *model.Project) (*model.Project, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil project", ErrMissingTable)
	}
	if p.Table == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingTable, p.TeamName, p.ProjectName)
	}
	cp := *p
	cp.Normalize()
	return &cp, nil
}

func (g *Generator) rendered(kind string, p *model.Project, out string) {
	g.log.Debug("rendered",
		slog.String("strategy", kind),
		slog.String("table", p.Table.Name),
		slog.String("class", ClassName(p)),
		slog.Int("bytes", len(out)),
	)
}
