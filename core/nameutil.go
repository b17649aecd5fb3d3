package core

import (
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/igorsobreira/titlecase"
)

var fileNameAllowed = regexp.MustCompile(`[^A-Za-z0-9 ._]`)

// SanitizeFileName reduces a pack display name to a safe file stem: only
// alphanumerics, space, dot and underscore survive, and trailing whitespace
// is trimmed. Derivation happens once per pack; renames never re-derive.
func SanitizeFileName(name string) string {
	cleaned := fileNameAllowed.ReplaceAllString(name, "")
	return strings.TrimRight(cleaned, " ")
}

// SuggestPackName derives a human-friendly display name from a file stem,
// splitting camelCase runs and normalizing to title case.
func SuggestPackName(stem string) string {
	words := camelcase.Split(stem)
	joined := strings.Join(words, " ")
	joined = strings.NewReplacer("_", " ", ".", " ").Replace(joined)
	joined = strings.Join(strings.Fields(joined), " ")
	return titlecase.Title(joined)
}
