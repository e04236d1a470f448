package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arma75/dtogen/internal/model"
)

const doc = `
project:
  team_name: acme
  project_name: shop
  use_lombok: true
  type: save
  locale: en
tables:
  - name: user_info
    comment: 사용자
    columns:
      - name: id
        type: BIGINT
        pk: true
        not_null: true
        auto_increase: true
      - name: user_name
        length: 50
        not_null: true
      - name: memo
        comment: note
        type: text
        length: 0
        default_value: "-"
  - name: orders
    columns:
      - name: ordered_at
        type: DATE
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "acme", s.Project.TeamName)
	assert.Equal(t, "shop", s.Project.ProjectName)
	assert.True(t, s.Project.UseLombok)
	assert.Equal(t, model.KindSaveRequest, s.Project.Type)
	assert.Equal(t, model.LocaleEnglish, s.Project.Locale)
	// untouched keys keep their defaults
	assert.Equal(t, model.DefaultJavaVersion, s.Project.JavaVersion)
	assert.Equal(t, model.DefaultDTOPostfix, s.Project.DTOPostfix)
	assert.Equal(t, model.DefaultAuthor, s.Project.Author)
	assert.Nil(t, s.Project.Table)

	require.Len(t, s.Tables, 2)
	users := s.Tables[0]
	assert.Equal(t, "사용자", users.Comment)
	require.Len(t, users.Columns, 3)

	assert.Equal(t, model.Column{Name: "id", Type: "BIGINT", Length: model.DefaultLength, PK: true, NotNull: true, AutoIncrease: true}, users.Columns[0])
	assert.Equal(t, model.Column{Name: "user_name", Type: model.DefaultColumnType, Length: 50, NotNull: true}, users.Columns[1])
	assert.Equal(t, model.Column{Name: "memo", Comment: "note", Type: "text", DefaultValue: "-"}, users.Columns[2])

	assert.Equal(t, model.Column{Name: "ordered_at", Type: "DATE", Length: model.DefaultLength}, s.Tables[1].Columns[0])
}

func TestParseJSON(t *testing.T) {
	s, err := Parse([]byte(`{"tables": [{"name": "t", "columns": [{"name": "a", "type": "INT"}]}]}`))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultProject(), s.Project)
	assert.Equal(t, "INT", s.Tables[0].Columns[0].Type)
}

func TestParseProjectOverDefaults(t *testing.T) {
	tables := "tables:\n  - name: t\n    columns:\n      - name: a\n"
	tests := []struct {
		name    string
		project string
		want    func() model.Project
	}{
		{name: "absent", project: "", want: model.DefaultProject},
		{name: "null", project: "project:\n", want: model.DefaultProject},
		{name: "partial", project: "project:\n  team_name: acme\n  use_swagger: true\n", want: func() model.Project {
			p := model.DefaultProject()
			p.TeamName = "acme"
			p.UseSwagger = true
			return p
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.project + tables))
			require.NoError(t, err)
			assert.Equal(t, tt.want(), s.Project)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("project:\n  team_name: x\n"))
	require.ErrorIs(t, err, ErrNoTables)

	_, err = Parse([]byte("tables: [\n"))
	require.Error(t, err)

	_, err = Parse([]byte("tables:\n  - name: t\n    columns:\n      - name: a\n        length: many\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 0")
}

func TestTableAndProjects(t *testing.T) {
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	tbl, err := s.Table("orders")
	require.NoError(t, err)
	assert.Equal(t, "orders", tbl.Name)

	_, err = s.Table("missing")
	require.ErrorIs(t, err, ErrTableNotFound)

	ps := s.Projects()
	require.Len(t, ps, 2)
	assert.Same(t, s.Tables[0], ps[0].Table)
	assert.Same(t, s.Tables[1], ps[1].Table)
	assert.Equal(t, "acme", ps[1].TeamName)
	assert.Nil(t, s.Project.Table)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Tables, 2)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
