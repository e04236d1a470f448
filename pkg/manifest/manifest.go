package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest's name inside an output directory.
const FileName = "dtogen.yaml"

// Kind classifies a generated artifact.
type Kind string

const (
	KindDTO          Kind = "dto"
	KindPageRequest  Kind = "page-request"
	KindPageResponse Kind = "page-response"
)

// Artifact is one generated Java file.
type Artifact struct {
	Name  string `yaml:"name" json:"name"`
	Kind  Kind   `yaml:"kind" json:"kind"`
	Table string `yaml:"table,omitempty" json:"table,omitempty"`
	File  string `yaml:"file" json:"file"`
}

// Manifest records what was generated for a project.
type Manifest struct {
	Team      string     `yaml:"team" json:"team"`
	Project   string     `yaml:"project" json:"project"`
	Schema    string     `yaml:"schema,omitempty" json:"schema,omitempty"`
	Generated string     `yaml:"generated,omitempty" json:"generated,omitempty"` // yyyy-mm-dd stamped into @since
	Artifacts []Artifact `yaml:"artifacts" json:"artifacts"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// AddArtifact records a, replacing any existing entry for the same file.
func (m *Manifest) AddArtifact(a Artifact) {
	for i := range m.Artifacts {
		if m.Artifacts[i].File == a.File {
			m.Artifacts[i] = a
			return
		}
	}

	m.Artifacts = append(m.Artifacts, a)
}

// Files returns every recorded artifact path in insertion order.
func (m *Manifest) Files() []string {
	out := make([]string, 0, len(m.Artifacts))
	for _, a := range m.Artifacts {
		out = append(out, a.File)
	}
	return out
}

// Find returns the artifact recorded for file, if present.
func (m *Manifest) Find(file string) (Artifact, bool) {
	for _, a := range m.Artifacts {
		if a.File == file {
			return a, true
		}
	}
	return Artifact{}, false
}
