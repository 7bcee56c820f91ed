// Package jsonx extracts and repairs JSON payloads from raw LLM output.
//
// Model responses frequently wrap JSON in prose or markdown fences, use
// single quotes, drop commas, or get truncated mid-string. Extract applies a
// bounded repair pipeline before giving up so one malformed response does not
// sink a whole generation run.
package jsonx

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports that raw model output could not be coerced into valid
// JSON even after repair. It carries the original text for diagnostics.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("extract JSON: %s", e.Reason)
}

// Pre-compiled repair regexes. These cover the common LLM syntax errors;
// escaped quotes inside single-quoted strings are not fully supported.
var (
	// "value"\n"key": -> "value",\n"key":
	missingCommaBeforeKeyRegex = regexp.MustCompile(`(")\s*\n\s*("[\w][^"]*"\s*:)`)

	// 123\n"key": -> 123,\n"key":
	missingCommaAfterValueRegex = regexp.MustCompile(`(\d|true|false|null)\s*\n\s*("[\w][^"]*"\s*:)`)

	// } "key" -> }, "key"
	missingCommaAfterBraceRegex = regexp.MustCompile(`([}\]])\s*\n?\s*("[\w])`)

	// ,} -> } and ,] -> ]
	trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)

	// {'key': -> {"key":
	singleQuoteKeyRegex = regexp.MustCompile(`([{,]\s*)'(\w+)'(\s*:)`)

	// : 'value' -> : "value", handling escaped single quotes inside
	singleQuoteValueRegex = regexp.MustCompile(`(:\s*)'((?:[^'\\]|\\.)*)'(\s*[,}\]])`)

	// {key: -> {"key": (bare property names)
	bareKeyRegex = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)

	// : value} -> : "value"} for simple bare identifiers
	bareValueRegex = regexp.MustCompile(`(:\s*)([a-zA-Z][a-zA-Z0-9_-]*)(\s*[,}\]])`)
)

// Extract parses a JSON value of type T out of raw model output.
//
// Strategy, in order: direct decode of the cleaned text; decode of the slice
// starting at the first '{' or '['; decode after the textual repair pipeline.
// On failure it returns a *ParseError carrying the original raw text.
func Extract[T any](raw string) (T, error) {
	var result T

	cleaned := stripFences(raw)
	if cleaned == "" {
		return result, &ParseError{Raw: raw, Reason: "empty response"}
	}

	// Find the start of the JSON structure; everything before is prose.
	idx := strings.IndexAny(cleaned, "{[")
	if idx == -1 {
		// The payload may be a JSON-encoded string containing JSON.
		var asString string
		if err := json.Unmarshal([]byte(cleaned), &asString); err == nil {
			return Extract[T](asString)
		}
		return result, &ParseError{Raw: raw, Reason: "no JSON object or array found"}
	}

	// A stream decoder parses one value and ignores trailing prose.
	candidate := cleaned[idx:]
	if err := decodeValue(candidate, &result); err == nil {
		return result, nil
	}

	repaired := Repair(candidate)
	if repaired != candidate {
		if err := decodeValue(repaired, &result); err == nil {
			return result, nil
		}
	}

	// Some models double-escape the whole payload.
	if strings.Contains(candidate, `\`) {
		unescaped := strings.ReplaceAll(candidate, `\"`, `"`)
		unescaped = strings.ReplaceAll(unescaped, `\n`, "\n")
		if err := decodeValue(unescaped, &result); err == nil {
			return result, nil
		}
		if err := decodeValue(Repair(unescaped), &result); err == nil {
			return result, nil
		}
	}

	err := decodeValue(repaired, &result)
	return result, &ParseError{Raw: raw, Reason: fmt.Sprintf("parse failed after repair: %v", err)}
}

func decodeValue(s string, out any) error {
	dec := json.NewDecoder(strings.NewReader(s))
	return dec.Decode(out)
}

// Repair applies the fixed pipeline of textual fixes for common LLM JSON
// errors: control characters inside strings, missing and trailing commas,
// single-quoted keys and values, bare property names and values, and
// truncated structures.
func Repair(input string) string {
	result := escapeControlChars(input)

	result = missingCommaBeforeKeyRegex.ReplaceAllString(result, `$1, $2`)
	result = missingCommaAfterValueRegex.ReplaceAllString(result, `$1, $2`)
	result = missingCommaAfterBraceRegex.ReplaceAllString(result, `$1, $2`)
	result = trailingCommaRegex.ReplaceAllString(result, `$1`)
	result = singleQuoteKeyRegex.ReplaceAllString(result, `$1"$2"$3`)

	result = singleQuoteValueRegex.ReplaceAllStringFunc(result, func(match string) string {
		parts := singleQuoteValueRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		value := strings.ReplaceAll(parts[2], `\'`, `'`)
		value = strings.ReplaceAll(value, `"`, `\"`)
		return parts[1] + `"` + value + `"` + parts[3]
	})

	result = bareKeyRegex.ReplaceAllStringFunc(result, func(match string) string {
		parts := bareKeyRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		if parts[2] == "true" || parts[2] == "false" || parts[2] == "null" {
			return match
		}
		return parts[1] + `"` + parts[2] + `"` + parts[3]
	})

	result = bareValueRegex.ReplaceAllStringFunc(result, func(match string) string {
		parts := bareValueRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		if parts[2] == "true" || parts[2] == "false" || parts[2] == "null" {
			return match
		}
		return parts[1] + `"` + parts[2] + `"` + parts[3]
	})

	return closeTruncated(result)
}

// escapeControlChars escapes literal control characters inside JSON strings.
// LLMs often emit raw tabs and newlines, which are invalid in JSON.
func escapeControlChars(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	inString := false
	escaped := false
	for i := 0; i < len(input); i++ {
		c := input[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			b.WriteByte(c)
			continue
		}
		if !inString {
			b.WriteByte(c)
			continue
		}
		switch c {
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// closeTruncated balances quotes, braces and brackets on output that was cut
// off mid-structure by a token limit.
func closeTruncated(input string) string {
	quoteCount := 0
	escaped := false
	for _, c := range input {
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			quoteCount++
		}
	}
	if quoteCount%2 != 0 {
		input += `"`
	}

	openBrackets := strings.Count(input, "[") - strings.Count(input, "]")
	for i := 0; i < openBrackets; i++ {
		input += "]"
	}
	openBraces := strings.Count(input, "{") - strings.Count(input, "}")
	for i := 0; i < openBraces; i++ {
		input += "}"
	}
	return input
}

// stripFences removes surrounding markdown code fences and whitespace.
func stripFences(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
