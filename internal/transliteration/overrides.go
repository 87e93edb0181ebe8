package transliteration

import (
	"strings"

	"github.com/samber/lo"
)

// Colloquial spellings canonicalized to fully-specified ITRANS before
// the scan. The scanner only does mechanical pattern matching; these
// capture common usage ("bharat" is spoken with a long aa). Keys are
// lowercase and matched against whole space-delimited tokens,
// case-insensitively.
var overrides = map[string]string{
	"shri":     "shrii",
	"bharat":   "bhaarat",
	"sanskrit": "saMskR^it",
	"hindi":    "hiMdii",
}

// applyOverrides rewrites whole-word colloquial spellings. Runs of
// spaces collapse to a single space as a side effect of the rejoin.
func applyOverrides(text string) string {
	words := lo.FilterMap(strings.Split(text, " "), func(w string, _ int) (string, bool) {
		if w == "" {
			return "", false
		}
		if full, ok := overrides[strings.ToLower(w)]; ok {
			return full, true
		}
		return w, true
	})
	return strings.Join(words, " ")
}
