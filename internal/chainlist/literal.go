package chainlist

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// The upstream constants files are JavaScript modules, not JSON. The
// functions here carve the object literal out of the surrounding script
// and rewrite it into strict JSON. The supported grammar is deliberately
// small: an object literal whose keys are bare identifiers or numbers and
// whose values are strings or numbers, with one nesting level at most.

var (
	// Line comments not preceded by ':' so URL schemes survive.
	reLineComment = regexp.MustCompile(`(?m)(^|[\s,{[])//[^\n]*`)
	reBareKey     = regexp.MustCompile(`([{,]\s*)([A-Za-z0-9_$]+)\s*:`)
	reSingleQuote = regexp.MustCompile(`'([^']*)'`)
	reTrailComma  = regexp.MustCompile(`,(\s*[}\]])`)
)

// ObjectLiteral slices text down to the first '{' through the last '}'.
// If either bracket is missing it returns an empty object literal.
func ObjectLiteral(text string) string {
	start := -1
	end := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '{' {
			start = i
			break
		}
	}
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '}' {
			end = i
			break
		}
	}
	if start == -1 || end == -1 || end < start {
		return "{}"
	}
	return text[start : end+1]
}

// NormalizeLiteral rewrites a JavaScript object literal toward strict
// JSON: line comments stripped, bare keys quoted, single-quoted strings
// converted to double-quoted, trailing commas removed.
func NormalizeLiteral(literal string) string {
	s := reLineComment.ReplaceAllString(literal, "$1")
	s = reBareKey.ReplaceAllString(s, `$1"$2":`)
	s = reSingleQuote.ReplaceAllString(s, `"$1"`)
	s = reTrailComma.ReplaceAllString(s, "$1")
	return s
}

// DecodeObjectLiteral extracts and decodes a flat string-to-string object
// literal embedded anywhere in text.
func DecodeObjectLiteral(text string) (map[string]string, error) {
	normalized := NormalizeLiteral(ObjectLiteral(text))

	m := make(map[string]string)
	if err := json.Unmarshal([]byte(normalized), &m); err != nil {
		return nil, fmt.Errorf("decoding object literal: %w", err)
	}
	return m, nil
}
