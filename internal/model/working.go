package model

// Java types the generator treats specially.
const (
	JavaString         = "String"
	JavaLong           = "Long"
	JavaObject         = "Object"
	JavaLocalTime      = "LocalTime"
	JavaLocalDate      = "LocalDate"
	JavaLocalDateTime  = "LocalDateTime"
	JavaOffsetDateTime = "OffsetDateTime"
)

// IsTemporalType reports whether javaType is one of the four date/time kinds.
func IsTemporalType(javaType string) bool {
	switch javaType {
	case JavaLocalTime, JavaLocalDate, JavaLocalDateTime, JavaOffsetDateTime:
		return true
	}
	return false
}

// ProjectedField is a column after expansion, decorated with everything an
// emitter needs. Synthetic fields are the Start/End clones of a temporal
// column.
type ProjectedField struct {
	// Identity -------------------------------------------------------------
	Column       Column // clone of the source column (renamed for synthetics)
	FieldName    string // camelCase Java field name
	AccessorName string // PascalCase suffix for get/set
	Comment      string // column comment or name

	// Type -----------------------------------------------------------------
	JavaType   string
	Imports    []string // fully-qualified names, no "import " prefix
	DateFormat string   // @DateTimeFormat(...) annotation, "" for non-temporal

	// Metadata -------------------------------------------------------------
	Synthetic bool
}

func (f ProjectedField) IsString() bool {
	return f.JavaType == JavaString
}

func (f ProjectedField) IsTemporal() bool {
	return IsTemporalType(f.JavaType)
}

// Required reports whether validate() must reject a missing value.
// Auto-increase columns are assigned by the database and never required.
func (f ProjectedField) Required() bool {
	return f.Column.NotNull && !f.Column.AutoIncrease
}

// LengthBounded reports whether validate() must check the value's length.
func (f ProjectedField) LengthBounded() bool {
	return f.Column.Length > 0 && f.IsString() && !f.Column.AutoIncrease
}

// NeedsValidation reports whether the field contributes any check.
func (f ProjectedField) NeedsValidation() bool {
	return f.Required() || f.LengthBounded()
}
