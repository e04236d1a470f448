// Package schema loads table definitions and project defaults from a YAML
// (or JSON) document.
//
//	project:
//	  team_name: acme
//	  use_lombok: true
//	tables:
//	  - name: user_info
//	    comment: 사용자
//	    columns:
//	      - name: id
//	        type: BIGINT
//	        auto_increase: true
//
// Keys left out keep the documented defaults of model.DefaultProject and
// model.DefaultColumn.
package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Arma75/dtogen/internal/model"
)

var (
	ErrNoTables      = errors.New("schema defines no tables")
	ErrTableNotFound = errors.New("table not found")
)

// Schema is a decoded document.
type Schema struct {
	Project model.Project
	Tables  []*model.Table
}

type document struct {
	Project yaml.Node  `yaml:"project"`
	Tables  []tableDoc `yaml:"tables"`
}

type tableDoc struct {
	Name    string      `yaml:"name"`
	Comment string      `yaml:"comment"`
	Columns []yaml.Node `yaml:"columns"`
}

// Load reads and parses the schema at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a schema document.
func Parse(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, ErrNoTables
	}

	s := &Schema{Project: model.DefaultProject()}
	if doc.Project.Kind != 0 {
		if err := doc.Project.Decode(&s.Project); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
	}
	s.Project.Table = nil

	for i, td := range doc.Tables {
		t := &model.Table{
			Name:    td.Name,
			Comment: td.Comment,
			Columns: make([]model.Column, 0, len(td.Columns)),
		}
		for j := range td.Columns {
			col := model.DefaultColumn()
			if err := td.Columns[j].Decode(&col); err != nil {
				return nil, fmt.Errorf("decode table %d (%s) column %d: %w", i, td.Name, j, err)
			}
			t.Columns = append(t.Columns, col)
		}
		s.Tables = append(s.Tables, t)
	}
	return s, nil
}

// Table returns the table called name.
func (s *Schema) Table(name string) (*model.Table, error) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
}

// Projects pairs the project defaults with every table, in document order.
func (s *Schema) Projects() []*model.Project {
	out := make([]*model.Project, 0, len(s.Tables))
	for _, t := range s.Tables {
		out = append(out, s.Project.WithTable(t))
	}
	return out
}
