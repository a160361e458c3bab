package provider

// TranslationBundle is the structured result of a translation lookup.
// Groups keep the order in which the provider returned them.
type TranslationBundle struct {
	Word        string
	Groups      []POSGroup
	Translation string
}

// POSGroup holds the glosses the provider lists under one part of speech.
type POSGroup struct {
	PartOfSpeech string
	Entries      []GlossEntry
}

// GlossEntry is a single English gloss.
type GlossEntry struct {
	Translation         string
	ReverseTranslations []string
	Frequency           int
}

// IsEmpty reports whether the bundle carries no part-of-speech groups.
func (b TranslationBundle) IsEmpty() bool {
	return len(b.Groups) == 0
}

// RawLookup is the provider's unstructured response. Root positions are
// provider-defined and unreliable, so both accessors report presence
// instead of failing.
type RawLookup interface {
	// DirectRoot is the lemma the provider reports when it found direct
	// translations for the query.
	DirectRoot() (string, bool)
	// SuggestedRoot is the "see also" lemma offered for inflected forms
	// that have no translations of their own.
	SuggestedRoot() (string, bool)
}
