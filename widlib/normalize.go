package widlib

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes free-text input so that trivial presentation
// differences do not change the derived identifier. It trims surrounding
// whitespace, applies Unicode full case folding, converts the text to NFKC,
// and collapses every interior run of whitespace to a single ASCII space.
//
// Normalize is total, and idempotent except for compatibility forms whose
// NFKC image is itself cased: U+2102 "ℂ" has no case folding, so one pass
// yields "C" and a second pass folds that to "c". That behavior is pinned;
// folding again after NFKC would change existing identifiers.
func Normalize(s string) string {
	folded := cases.Fold().String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(norm.NFKC.String(folded)), " ")
}
