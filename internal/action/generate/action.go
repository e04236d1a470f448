package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Arma75/dtogen/internal/generator"
	"github.com/Arma75/dtogen/internal/model"
	"github.com/Arma75/dtogen/pkg/manifest"
	"github.com/Arma75/dtogen/pkg/schema"
)

var ErrNoOutDir = errors.New("output directory is required")

// Options drives one generation run over a schema file.
type Options struct {
	SchemaPath string
	OutDir     string
	Strategy   generator.Strategy
	// Tables limits generation to the named tables; empty means all.
	Tables []string
	// Overrides are applied to the schema's project settings, after the
	// document has been decoded.
	Overrides []model.ProjectOption
	// SkipCompanions leaves PageRequest/PageResponse out.
	SkipCompanions bool

	Now    func() time.Time
	Logger *slog.Logger
}

func (o *Options) normalize() {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Output is one rendered file, not yet written.
type Output struct {
	Artifact manifest.Artifact
	Content  string
}

// ManifestPath is where Generate records its artifacts for outDir.
func ManifestPath(outDir string) string {
	return filepath.Join(outDir, manifest.FileName)
}

// Render loads the schema and renders every artifact in memory. Artifact
// files are relative to the output directory.
func Render(opts Options) (*model.Project, []Output, error) {
	opts.normalize()

	s, err := schema.Load(opts.SchemaPath)
	if err != nil {
		return nil, nil, err
	}
	tables := s.Tables
	if len(opts.Tables) > 0 {
		tables = make([]*model.Table, 0, len(opts.Tables))
		for _, name := range opts.Tables {
			t, err := s.Table(name)
			if err != nil {
				return nil, nil, err
			}
			tables = append(tables, t)
		}
	}

	base := s.Project
	for _, fn := range opts.Overrides {
		fn(&base)
	}
	base.Normalize()

	g := generator.New(generator.WithClock(opts.Now), generator.WithLogger(opts.Logger))
	emitter, err := g.Emitter(opts.Strategy)
	if err != nil {
		return nil, nil, err
	}

	outs := make([]Output, 0, len(tables)+2)
	for _, t := range tables {
		p := base.WithTable(t)
		src, err := emitter.Emit(p)
		if err != nil {
			return nil, nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		name := generator.ClassName(p)
		outs = append(outs, Output{
			Artifact: manifest.Artifact{Name: name, Kind: manifest.KindDTO, Table: t.Name, File: name + ".java"},
			Content:  src,
		})
	}

	if !opts.SkipCompanions {
		req, err := g.PageRequest(&base)
		if err != nil {
			return nil, nil, err
		}
		resp, err := g.PageResponse(&base)
		if err != nil {
			return nil, nil, err
		}
		outs = append(outs,
			Output{
				Artifact: manifest.Artifact{Name: generator.PageRequestClass, Kind: manifest.KindPageRequest, File: generator.PageRequestClass + ".java"},
				Content:  req,
			},
			Output{
				Artifact: manifest.Artifact{Name: generator.PageResponseClass, Kind: manifest.KindPageResponse, File: generator.PageResponseClass + ".java"},
				Content:  resp,
			},
		)
	}
	return &base, outs, nil
}

// Generate renders every artifact, writes it under OutDir and records it in
// the manifest there.
func Generate(opts Options) ([]manifest.Artifact, error) {
	opts.normalize()
	if opts.OutDir == "" {
		return nil, ErrNoOutDir
	}

	project, outs, err := Render(opts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	mpath := ManifestPath(opts.OutDir)
	m, err := manifest.Load(mpath)
	if err != nil {
		return nil, err
	}
	m.Team = project.TeamName
	m.Project = project.ProjectName
	m.Schema = opts.SchemaPath
	m.Generated = opts.Now().UTC().Format(time.DateOnly)

	artifacts := make([]manifest.Artifact, 0, len(outs))
	for _, o := range outs {
		path := filepath.Join(opts.OutDir, o.Artifact.File)
		if err := os.WriteFile(path, []byte(o.Content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", o.Artifact.Name, err)
		}
		opts.Logger.Info("wrote", slog.String("file", path), slog.String("kind", string(o.Artifact.Kind)))
		m.AddArtifact(o.Artifact)
		artifacts = append(artifacts, o.Artifact)
	}

	if err := m.Save(mpath); err != nil {
		return nil, err
	}
	return artifacts, nil
}
