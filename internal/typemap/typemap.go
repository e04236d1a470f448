// Package typemap maps source database column types onto Java types and the
// imports those types need.
package typemap

import (
	"strings"

	"github.com/Arma75/dtogen/internal/model"
)

const (
	importBigDecimal     = "java.math.BigDecimal"
	importLocalTime      = "java.time.LocalTime"
	importLocalDate      = "java.time.LocalDate"
	importLocalDateTime  = "java.time.LocalDateTime"
	importOffsetDateTime = "java.time.OffsetDateTime"
	importUUID           = "java.util.UUID"

	// ImportDateTimeFormat backs the formatting annotation every temporal
	// field carries.
	ImportDateTimeFormat = "org.springframework.format.annotation.DateTimeFormat"
)

// Mapping is a Java type plus the imports it requires.
type Mapping struct {
	JavaType string
	Imports  []string
}

func m(javaType string, imports ...string) Mapping {
	return Mapping{JavaType: javaType, Imports: imports}
}

// types is keyed by upper-case source type name. It is fully built at package
// initialization and never written afterwards.
var types = map[string]Mapping{
	"SMALLINT": m("Integer"),
	"INTEGER":  m("Integer"),
	"INT":      m("Integer"),
	"INT2":     m("Integer"),
	"INT4":     m("Integer"),
	"SERIAL":   m("Integer"),

	"BIGINT":    m(model.JavaLong),
	"INT8":      m(model.JavaLong),
	"BIGSERIAL": m(model.JavaLong),

	"DECIMAL": m("BigDecimal", importBigDecimal),
	"NUMERIC": m("BigDecimal", importBigDecimal),

	"REAL":             m("Float"),
	"FLOAT4":           m("Float"),
	"DOUBLE PRECISION": m("Double"),
	"FLOAT8":           m("Double"),

	"CHARACTER VARYING": m(model.JavaString),
	"VARCHAR":           m(model.JavaString),
	"CHARACTER":         m(model.JavaString),
	"CHAR":              m(model.JavaString),
	"TEXT":              m(model.JavaString),
	"JSON":              m(model.JavaString),
	"JSONB":             m(model.JavaString),

	"TIME":                     m(model.JavaLocalTime, importLocalTime, ImportDateTimeFormat),
	"DATE":                     m(model.JavaLocalDate, importLocalDate, ImportDateTimeFormat),
	"TIMESTAMP":                m(model.JavaLocalDateTime, importLocalDateTime, ImportDateTimeFormat),
	"TIMESTAMP WITH TIME ZONE": m(model.JavaOffsetDateTime, importOffsetDateTime, ImportDateTimeFormat),
	"TIMESTAMPTZ":              m(model.JavaOffsetDateTime, importOffsetDateTime, ImportDateTimeFormat),

	"BOOLEAN": m("Boolean"),
	"BOOL":    m("Boolean"),
	"UUID":    m("UUID", importUUID),

	// logical column types offered by the table editor
	"CREATE DATETIME": m(model.JavaLocalDateTime, importLocalDateTime, ImportDateTimeFormat),
	"UPDATE DATETIME": m(model.JavaLocalDateTime, importLocalDateTime, ImportDateTimeFormat),
	"LOGICAL USE":     m(model.JavaString),
	"LOGICAL DELETE":  m(model.JavaString),
}

// Lookup finds the mapping for a source type name, case-insensitively.
func Lookup(sourceType string) (Mapping, bool) {
	mp, ok := types[strings.ToUpper(strings.TrimSpace(sourceType))]
	if !ok {
		return Mapping{}, false
	}
	return Mapping{JavaType: mp.JavaType, Imports: append([]string(nil), mp.Imports...)}, true
}

// SourceTypes lists every mapped source type name.
func SourceTypes() []string {
	out := make([]string, 0, len(types))
	for k := range types {
		out = append(out, k)
	}
	return out
}

// ResolveType returns the Java type for col. Auto-increase columns are
// always Long; unmapped types fall back to Object.
func ResolveType(col model.Column) string {
	if col.AutoIncrease {
		return model.JavaLong
	}
	if mp, ok := Lookup(col.Type); ok {
		return mp.JavaType
	}
	return model.JavaObject
}

// ResolveImports returns the imports needed by ResolveType(col). It is empty
// for unmapped types and for auto-increase columns, whose type is Long.
func ResolveImports(col model.Column) []string {
	if col.AutoIncrease {
		return nil
	}
	if mp, ok := Lookup(col.Type); ok {
		return mp.Imports
	}
	return nil
}

// DateFormat returns the formatting annotation for a temporal Java type,
// or "" for anything else.
func DateFormat(javaType string) string {
	switch javaType {
	case model.JavaLocalTime:
		return `@DateTimeFormat(pattern = "HH:mm:ss")`
	case model.JavaLocalDate:
		return `@DateTimeFormat(pattern = "yyyy-MM-dd")`
	case model.JavaLocalDateTime:
		return `@DateTimeFormat(pattern = "yyyy-MM-dd HH:mm:ss")`
	case model.JavaOffsetDateTime:
		return `@DateTimeFormat(iso = DateTimeFormat.ISO.DATE_TIME)`
	}
	return ""
}
