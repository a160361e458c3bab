package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningAcute is the stress mark the translation provider sometimes
// injects into the lemma it returns.
const combiningAcute = '\u0301'

// NormalizeQuery tidies a submitted word before lookup: surrounding
// whitespace is trimmed and inner runs of whitespace become one space.
// Case, stress marks and hyphens are kept; lowercasing is CleanRoot's job.
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CleanRoot removes every combining acute accent from s and lowercases it
// with Russian casing rules. Other diacritics (ё, й) survive: the string is
// decomposed, stripped, then recomposed.
func CleanRoot(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r == combiningAcute })),
		norm.NFC,
	)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.ReplaceAll(strings.TrimSpace(s), string(combiningAcute), "")
	}
	return cases.Lower(language.Russian).String(out)
}

// StripSyllableSeparators removes the hyphens and middle dots dictionaries
// use to split a headword into syllables, then trims the result.
func StripSyllableSeparators(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "\u00b7", "")
	return strings.TrimSpace(s)
}
