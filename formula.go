package equipdocs

import (
	"fmt"
	"strings"
)

// comparators in precedence order. Two-character operators come before their
// one-character prefixes so ">=" never splits as ">" plus a stray "=".
var comparators = []string{">=", "<=", "==", "!=", ">", "<"}

// ParseFormula splits a comparison expression into left operand, comparator
// and right operand. The first comparator from the precedence list that
// occurs in the text wins, and the split happens at its first occurrence,
// with whitespace trimmed from both operands. Full is always the trimmed
// original text, with no other normalization.
//
// When no comparator occurs, Operator and Right stay empty and Left equals
// Full: a bare expression that downstream rendering must treat as
// display-only.
//
// The input may be a plain string, an enriched Value wrapping one, or any
// other scalar, which is coerced to its string form. Parsing is pure: the
// same input always yields the same result.
func ParseFormula(input any) *Check {
	text := formulaText(input)

	for _, op := range comparators {
		idx := strings.Index(text, op)
		if idx < 0 {
			continue
		}
		return &Check{
			Left:     strings.TrimSpace(text[:idx]),
			Operator: op,
			Right:    strings.TrimSpace(text[idx+len(op):]),
			Full:     strings.TrimSpace(text),
		}
	}

	trimmed := strings.TrimSpace(text)
	return &Check{Left: trimmed, Full: trimmed}
}

// formulaText unwraps enriched values and coerces non-string scalars.
func formulaText(input any) string {
	switch v := input.(type) {
	case Value:
		if v.Data == nil {
			return ""
		}
		return formulaText(v.Data)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
