package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRequestKind = errors.New("unknown request kind")

// RequestKind selects which DTO body the template strategy renders.
type RequestKind string

const (
	KindSearchRequest RequestKind = "search"   // extends PageRequest
	KindSaveRequest   RequestKind = "save"     // adds validate(boolean)
	KindResponse      RequestKind = "response" // plain accessors
)

// ParseRequestKind accepts the kind names case-insensitively, plus the
// longer "search-request"/"save-request" spellings.
func ParseRequestKind(s string) (RequestKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "search", "search-request", "searchrequest":
		return KindSearchRequest, nil
	case "save", "save-request", "saverequest":
		return KindSaveRequest, nil
	case "", "response":
		return KindResponse, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRequestKind, s)
	}
}

// Column is one table attribute as entered by the user.
//
// Name may contain spaces and mixed case; identifiers are derived from it.
// Type is a key into the type mapping table (case-insensitive).
// Length bounds String fields; 0 means unbounded.
// DefaultValue is carried but never emitted.
type Column struct {
	Name         string `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Comment      string `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty" mapstructure:"comment,omitempty"`
	Type         string `json:"type" yaml:"type" toml:"type" mapstructure:"type"`
	Length       int    `json:"length,omitempty" yaml:"length,omitempty" toml:"length,omitempty" mapstructure:"length,omitempty"`
	PK           bool   `json:"pk,omitempty" yaml:"pk,omitempty" toml:"pk,omitempty" mapstructure:"pk,omitempty"`
	NotNull      bool   `json:"not_null,omitempty" yaml:"not_null,omitempty" toml:"not_null,omitempty" mapstructure:"not_null,omitempty"`
	AutoIncrease bool   `json:"auto_increase,omitempty" yaml:"auto_increase,omitempty" toml:"auto_increase,omitempty" mapstructure:"auto_increase,omitempty"`
	DefaultValue string `json:"default_value,omitempty" yaml:"default_value,omitempty" toml:"default_value,omitempty" mapstructure:"default_value,omitempty"`
}

// Label is the human description of the column, falling back to its name.
func (c Column) Label() string {
	if c.Comment != "" {
		return c.Comment
	}
	return c.Name
}

// Table is an ordered list of columns. Output field order follows Columns.
type Table struct {
	Name    string   `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Comment string   `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty" mapstructure:"comment,omitempty"`
	Columns []Column `json:"columns" yaml:"columns" toml:"columns" mapstructure:"columns"`
}

// Label is the table comment, falling back to its name.
func (t Table) Label() string {
	if t.Comment != "" {
		return t.Comment
	}
	return t.Name
}

// Project is a generation request: a table plus generation-wide options.
//
// TeamName     – first package segment after "com".
// ProjectName  – second package segment.
// JavaVersion  – informational; recorded, not used by emission.
// Author       – @author in doc comments.
// WriteComment – emit Javadoc comments.
// UseLombok    – replace accessors/toString with Lombok annotations.
// UseSwagger   – add @Schema(description = ...) annotations.
// UseDateRange – add Start/End fields next to temporal columns.
// DTOPostfix   – appended to the derived class name.
// Type         – template strategy rendering mode.
// Singularize  – singularize the table name before deriving the class name.
// Locale       – language of generated comments and date-range markers.
// Table        – required for DTO generation, ignored by companions.
type Project struct {
	TeamName     string      `json:"team_name,omitempty" yaml:"team_name,omitempty" toml:"team_name,omitempty" mapstructure:"team_name,omitempty"`
	ProjectName  string      `json:"project_name,omitempty" yaml:"project_name,omitempty" toml:"project_name,omitempty" mapstructure:"project_name,omitempty"`
	JavaVersion  int         `json:"java_version,omitempty" yaml:"java_version,omitempty" toml:"java_version,omitempty" mapstructure:"java_version,omitempty"`
	Author       string      `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty" mapstructure:"author,omitempty"`
	WriteComment bool        `json:"write_comment,omitempty" yaml:"write_comment,omitempty" toml:"write_comment,omitempty" mapstructure:"write_comment,omitempty"`
	UseLombok    bool        `json:"use_lombok,omitempty" yaml:"use_lombok,omitempty" toml:"use_lombok,omitempty" mapstructure:"use_lombok,omitempty"`
	UseSwagger   bool        `json:"use_swagger,omitempty" yaml:"use_swagger,omitempty" toml:"use_swagger,omitempty" mapstructure:"use_swagger,omitempty"`
	UseDateRange bool        `json:"use_date_range,omitempty" yaml:"use_date_range,omitempty" toml:"use_date_range,omitempty" mapstructure:"use_date_range,omitempty"`
	DTOPostfix   string      `json:"dto_postfix,omitempty" yaml:"dto_postfix,omitempty" toml:"dto_postfix,omitempty" mapstructure:"dto_postfix,omitempty"`
	Type         RequestKind `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty" mapstructure:"type,omitempty"`
	Singularize  bool        `json:"singularize,omitempty" yaml:"singularize,omitempty" toml:"singularize,omitempty" mapstructure:"singularize,omitempty"`
	Locale       Locale      `json:"locale,omitempty" yaml:"locale,omitempty" toml:"locale,omitempty" mapstructure:"locale,omitempty"`
	Table        *Table      `json:"table,omitempty" yaml:"table,omitempty" toml:"table,omitempty" mapstructure:"table,omitempty"`
}

// AuthorOrDefault returns Author, or DefaultAuthor when unset.
func (p *Project) AuthorOrDefault() string {
	if p.Author != "" {
		return p.Author
	}
	return DefaultAuthor
}

// WithTable returns a shallow copy of p generating for t.
func (p Project) WithTable(t *Table) *Project {
	p.Table = t
	return &p
}
