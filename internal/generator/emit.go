package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Arma75/dtogen/internal/model"
)

const (
	indent  = "    "
	indent2 = indent + indent
	// continuation lines of the toString return line up under its first
	// operand
	toStringCont = indent2 + "       "
)

var javaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// javaString quotes s as a Java string literal.
func javaString(s string) string {
	return `"` + javaEscaper.Replace(s) + `"`
}

// docText keeps user text from closing a Javadoc block early.
func docText(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "*/", "*&#47;"), "\n", " ")
}

func javadoc(in string, lines ...string) string {
	var b strings.Builder
	b.WriteString(in + "/**\n")
	for _, l := range lines {
		if l == "" {
			b.WriteString(in + " *\n")
			continue
		}
		b.WriteString(in + " * " + docText(l) + "\n")
	}
	b.WriteString(in + " */")
	return b.String()
}

func schemaAnnotation(in, description string) string {
	return in + "@Schema(description = " + javaString(description) + ")"
}

// ClassComment is the Javadoc block above the class declaration.
func ClassComment(p *model.Project, today string) string {
	msg := MessagesFor(p.Locale)
	return javadoc("",
		msg.classDoc(p.Table.Label()),
		"",
		"@author "+p.AuthorOrDefault(),
		"@since "+today,
	)
}

// FieldDeclaration renders one field with its doc comment and annotations.
func FieldDeclaration(f model.ProjectedField, p *model.Project) string {
	var lines []string
	if p.WriteComment {
		lines = append(lines, javadoc(indent, f.Comment))
	}
	if p.UseSwagger {
		lines = append(lines, schemaAnnotation(indent, f.Comment))
	}
	if f.DateFormat != "" {
		lines = append(lines, indent+f.DateFormat)
	}
	lines = append(lines, fmt.Sprintf("%sprivate %s %s;", indent, f.JavaType, f.FieldName))
	return strings.Join(lines, "\n")
}

func Getter(f model.ProjectedField, p *model.Project) string {
	var b strings.Builder
	if p.WriteComment {
		msg := MessagesFor(p.Locale)
		b.WriteString(javadoc(indent, msg.getterDoc(f.Comment), "", "@return "+f.Comment) + "\n")
	}
	fmt.Fprintf(&b, "%spublic %s get%s() {\n", indent, f.JavaType, f.AccessorName)
	fmt.Fprintf(&b, "%sreturn this.%s;\n", indent2, f.FieldName)
	b.WriteString(indent + "}")
	return b.String()
}

func Setter(f model.ProjectedField, p *model.Project) string {
	var b strings.Builder
	if p.WriteComment {
		msg := MessagesFor(p.Locale)
		b.WriteString(javadoc(indent, msg.setterDoc(f.Comment), "", "@param "+f.FieldName+" "+f.Comment) + "\n")
	}
	fmt.Fprintf(&b, "%spublic void set%s(%s %s) {\n", indent, f.AccessorName, f.JavaType, f.FieldName)
	fmt.Fprintf(&b, "%sthis.%s = %s;\n", indent2, f.FieldName, f.FieldName)
	b.WriteString(indent + "}")
	return b.String()
}

// ToString renders toString() listing every field as name=value, in order.
func ToString(className string, fields []model.ProjectedField, p *model.Project) string {
	var b strings.Builder
	if p.WriteComment {
		msg := MessagesFor(p.Locale)
		doc := append(append([]string{}, msg.ToStringDoc...), "", "@return "+msg.ToStringReturn)
		b.WriteString(javadoc(indent, doc...) + "\n")
	}
	b.WriteString(indent + "@Override\n")
	b.WriteString(indent + "public String toString() {\n")
	fmt.Fprintf(&b, "%sreturn %s +\n", indent2, javaString(className+"{"))
	for i, f := range fields {
		sep := ` + ", " +`
		if i == len(fields)-1 {
			sep = " +"
		}
		fmt.Fprintf(&b, "%s\"%s=\" + %s%s\n", toStringCont, f.FieldName, f.FieldName, sep)
	}
	b.WriteString(toStringCont + `"}";` + "\n")
	b.WriteString(indent + "}")
	return b.String()
}

// ValidationChecks renders the guard statements for one field, or "" when
// the field needs none. Required checks are skipped for patches; length
// checks always run.
func ValidationChecks(f model.ProjectedField) string {
	var lines []string
	if f.Required() {
		cond := f.FieldName + " == null"
		if f.IsString() {
			cond = "(" + cond + " || " + f.FieldName + ".isBlank())"
		}
		lines = append(lines,
			fmt.Sprintf("%sif (!isPatch && %s) {", indent2, cond),
			fmt.Sprintf("%s%sthrow new IllegalArgumentException(%s);", indent2, indent, javaString(f.FieldName+" is required.")),
			indent2+"}",
		)
	}
	if f.LengthBounded() {
		n := strconv.Itoa(f.Column.Length)
		lines = append(lines,
			fmt.Sprintf("%sif (%s != null && %s.length() > %s) {", indent2, f.FieldName, f.FieldName, n),
			fmt.Sprintf("%s%sthrow new IllegalArgumentException(%s);", indent2, indent, javaString(f.FieldName+" length cannot exceed "+n+".")),
			indent2+"}",
		)
	}
	return strings.Join(lines, "\n")
}

// ValidateMethod renders validate(boolean isPatch), or "" when no field
// carries a constraint.
func ValidateMethod(fields []model.ProjectedField, p *model.Project) string {
	var checks []string
	for _, f := range fields {
		if c := ValidationChecks(f); c != "" {
			checks = append(checks, c)
		}
	}
	if len(checks) == 0 {
		return ""
	}

	var b strings.Builder
	if p.WriteComment {
		b.WriteString(javadoc(indent, MessagesFor(p.Locale).ValidateDoc...) + "\n")
	}
	b.WriteString(indent + "public void validate(boolean isPatch) {\n")
	b.WriteString(strings.Join(checks, "\n\n") + "\n")
	b.WriteString(indent + "}")
	return b.String()
}
