// Package prompt compiles section prompt templates into literal model
// instructions.
package prompt

import (
	"regexp"
	"strings"
)

// placeholderRegex matches named placeholders such as {clientName}.
var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// Compile substitutes named placeholders in template with the given field
// values. Unresolved placeholders are replaced with the empty string, never
// left literal. The function is pure and never fails.
func Compile(template string, fields map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		return fields[name]
	})
}

// JoinList renders a list-valued field for substitution, joining entries with
// a comma separator and dropping empties.
func JoinList(items []string) string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ", ")
}

// Placeholders returns the distinct placeholder names used in template, in
// order of first appearance.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRegex.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
