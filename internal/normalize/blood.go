// Package normalize holds the pure text-to-canonical-value functions used by
// the slot-filling flow. Every function here is total and side-effect free:
// a miss means "the field is still missing", never an error.
package normalize

import (
	"regexp"
	"strings"
)

// BloodTypes is the closed set of canonical blood-group tokens.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var bloodSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(BloodTypes))
	for _, bt := range BloodTypes {
		m[bt] = struct{}{}
	}
	return m
}()

// bloodSynonyms maps common verbal variants, uppercased and space-collapsed,
// to canonical tokens.
var bloodSynonyms = map[string]string{
	"A POS": "A+", "A POSITIVE": "A+", "A PLUS": "A+",
	"A NEG": "A-", "A NEGATIVE": "A-",
	"B POS": "B+", "B POSITIVE": "B+", "B PLUS": "B+",
	"B NEG": "B-", "B NEGATIVE": "B-",
	"AB POS": "AB+", "AB POSITIVE": "AB+",
	"AB NEG": "AB-", "AB NEGATIVE": "AB-",
	"O POS": "O+", "O POSITIVE": "O+", "O PLUS": "O+",
	"O NEG": "O-", "O NEGATIVE": "O-",
	"APOS": "A+", "ANEG": "A-", "BPOS": "B+", "BNEG": "B-",
	"ABPOS": "AB+", "ABNEG": "AB-", "OPOS": "O+", "ONEG": "O-",
}

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	nonBloodRE   = regexp.MustCompile(`[^A-Z+\-]`)
)

// IsBloodType reports whether s is already an exact canonical token.
func IsBloodType(s string) bool {
	_, ok := bloodSet[s]
	return ok
}

// BloodType converts free text into a canonical blood-group token. It accepts
// the canonical tokens case/space-insensitively, a table of verbal variants
// ("A POSITIVE", "O NEG", "BPOS"), and finally strips every character outside
// [A-Z + -] and rechecks. Returns "" when no rule matches.
func BloodType(text string) string {
	up := strings.ToUpper(strings.TrimSpace(text))
	if up == "" {
		return ""
	}

	compact := strings.ReplaceAll(up, " ", "")
	if IsBloodType(compact) {
		return compact
	}
	if bt, ok := bloodSynonyms[compact]; ok {
		return bt
	}

	spaced := whitespaceRE.ReplaceAllString(up, " ")
	if bt, ok := bloodSynonyms[spaced]; ok {
		return bt
	}

	// "A-" said as "A -", "-" spelled out, etc.: rewrite signs as words
	// and consult the variant table once more.
	signs := strings.NewReplacer("-", " NEG", "+", " POS").Replace(up)
	signs = strings.TrimSpace(whitespaceRE.ReplaceAllString(signs, " "))
	if bt, ok := bloodSynonyms[signs]; ok {
		return bt
	}

	if stripped := nonBloodRE.ReplaceAllString(up, ""); IsBloodType(stripped) {
		return stripped
	}
	return ""
}
