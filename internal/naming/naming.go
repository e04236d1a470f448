// Package naming converts raw column and table identifiers between
// snake_case, camelCase, PascalCase, SCREAMING_SNAKE_CASE and kebab-case.
//
// Every form is derived from ToSnakeCase, so all conversions agree on where
// word boundaries are and which characters survive.
package naming

import (
	"regexp"
	"strings"
)

var (
	lowerUpper  = regexp.MustCompile(`([a-z])([A-Z])`)
	separators  = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}-]+`)
	illegal     = regexp.MustCompile(`[^a-z0-9_]`)
	underscores = regexp.MustCompile(`_+`)
	edges       = regexp.MustCompile(`^_+|_+$`)
	wordStart   = regexp.MustCompile(`_[a-z]`)
)

// ToSnakeCase normalizes s to lower snake_case. Characters outside
// [a-z0-9_] after lowercasing are dropped; empty input yields "".
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	s = lowerUpper.ReplaceAllString(s, "${1}_${2}")
	s = separators.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	s = illegal.ReplaceAllString(s, "")
	s = underscores.ReplaceAllString(s, "_")
	return edges.ReplaceAllString(s, "")
}

// ToScreamingSnakeCase returns ToSnakeCase(s) in upper case.
func ToScreamingSnakeCase(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

// ToCamelCase joins snake_case words, upper-casing each word that starts
// with a letter. Underscores before digits are kept.
func ToCamelCase(s string) string {
	return wordStart.ReplaceAllStringFunc(ToSnakeCase(s), func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// ToPascalCase is ToCamelCase with the first character upper-cased.
func ToPascalCase(s string) string {
	c := ToCamelCase(s)
	if c == "" {
		return ""
	}
	// ToSnakeCase leaves only ASCII, so byte indexing is safe.
	return strings.ToUpper(c[:1]) + c[1:]
}

// ToKebabCase is ToSnakeCase with hyphens in place of underscores.
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}
