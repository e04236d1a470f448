package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Arma75/dtogen/internal/action/generate"
	"github.com/Arma75/dtogen/pkg/manifest"
)

// Diff re-renders the schema in memory and compares the result with the
// files under opts.OutDir. The returned map is keyed by artifact file and
// holds a cmp diff (-on disk +rendered) for every file that drifted; files
// the manifest records but the schema no longer produces are reported too.
//
// Unless opts.Now is set, rendering uses the date recorded in the manifest so
// @since stamps do not count as drift.
func Diff(opts generate.Options) (map[string]string, error) {
	if opts.OutDir == "" {
		return nil, generate.ErrNoOutDir
	}
	m, err := manifest.Load(generate.ManifestPath(opts.OutDir))
	if err != nil {
		return nil, err
	}
	if opts.Now == nil && m.Generated != "" {
		stamp, err := time.Parse(time.DateOnly, m.Generated)
		if err != nil {
			return nil, fmt.Errorf("manifest date: %w", err)
		}
		opts.Now = func() time.Time { return stamp }
	}

	_, outs, err := generate.Render(opts)
	if err != nil {
		return nil, err
	}

	drift := make(map[string]string)
	rendered := make(map[string]struct{}, len(outs))
	for _, o := range outs {
		rendered[o.Artifact.File] = struct{}{}
		onDisk, err := readOptional(filepath.Join(opts.OutDir, o.Artifact.File))
		if err != nil {
			return nil, err
		}
		if d := cmp.Diff(onDisk, o.Content); d != "" {
			drift[o.Artifact.File] = d
		}
	}

	for _, f := range m.Files() {
		if _, ok := rendered[f]; ok {
			continue
		}
		// filters only narrow what is rendered; they do not make the other
		// recorded artifacts stale
		a, _ := m.Find(f)
		if a.Kind == manifest.KindDTO && len(opts.Tables) > 0 || a.Kind != manifest.KindDTO && opts.SkipCompanions {
			continue
		}
		onDisk, err := readOptional(filepath.Join(opts.OutDir, f))
		if err != nil {
			return nil, err
		}
		if onDisk != "" {
			drift[f] = cmp.Diff(onDisk, "")
		}
	}
	return drift, nil
}

func readOptional(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
