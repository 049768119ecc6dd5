// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// hashSuffix matches the opaque ID tails some form builders append to
	// field names, e.g. "3onV9GF51v2qn4B5z306pQ".
	hashSuffix = regexp.MustCompile(`\s+[a-zA-Z0-9]{20,}\s*$`)

	// romanNumbering rewrites "I 1 What RE task…" into "I.1. What RE task…".
	romanNumbering = regexp.MustCompile(`^(I+V*|V+I*)\s+(\d+)\s+`)

	// trailingArtifact drops a dangling 1-3 letter fragment left over from
	// suffix stripping.
	trailingArtifact = regexp.MustCompile(`\s+[a-zA-Z]{1,3}$`)

	// egParenthetical matches "(e.g., …)" segments inside option labels.
	egParenthetical = regexp.MustCompile(`(?i)\s*\([^)]*e\.g[^)]*\)`)

	multiSpace = regexp.MustCompile(`\s+`)
)

// titleFieldPrefix is the blank-underscore field the NLP4RE ID cards use
// for the paper title line.
const titleFieldPrefix = "_                             _"

// CleanQuestionText derives readable question text from a raw field base
// name: underscores become spaces, ID tails and trailing fragments are
// stripped, roman-numeral numbering is normalized and the first letter is
// capitalized.
func CleanQuestionText(base string) string {
	if strings.HasPrefix(base, titleFieldPrefix) {
		return "Title and Authors"
	}

	text := strings.ReplaceAll(base, "_", " ")
	text = hashSuffix.ReplaceAllString(text, "")
	text = romanNumbering.ReplaceAllString(text, "$1.$2. ")
	text = strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
	text = trailingArtifact.ReplaceAllString(text, "")

	if len(text) > 1 {
		runes := []rune(text)
		runes[0] = unicode.ToUpper(runes[0])
		text = string(runes)
	}
	if text == "" {
		return "Question text not found"
	}
	return text
}

// NormalizeOptionLabel cleans an option label found next to a widget:
// "(e.g., …)" examples are dropped and whitespace is collapsed.
func NormalizeOptionLabel(label string) string {
	cleaned := egParenthetical.ReplaceAllString(label, "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(cleaned, " "))
}
