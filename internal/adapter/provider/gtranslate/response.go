package gtranslate

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lexipenia/anki-russian-cards/internal/provider"
)

// Positions inside the decoded MkEWBc payload.
const (
	directRootPath       = "3.0"
	suggestedRootPath    = "3.3.0.0"
	posGroupsPath        = "3.5.0"
	plainTranslationPath = "1.0.0.5.0.0"
)

// RawResponse is the decoded payload of one translate RPC.
type RawResponse struct {
	doc gjson.Result
}

var _ provider.RawLookup = RawResponse{}

// DirectRoot returns the lemma reported alongside direct translations.
func (r RawResponse) DirectRoot() (string, bool) {
	return stringAt(r.doc, directRootPath)
}

// SuggestedRoot returns the "see also" lemma offered for inflected forms.
func (r RawResponse) SuggestedRoot() (string, bool) {
	return stringAt(r.doc, suggestedRootPath)
}

// stringAt reports a non-blank string at path; any other shape is absence.
func stringAt(doc gjson.Result, path string) (string, bool) {
	v := doc.Get(path)
	if v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
		return "", false
	}
	return v.Str, true
}

// eachElem iterates r only when it is an array. gjson.ForEach would
// otherwise call the iterator once for scalars and null.
func eachElem(r gjson.Result, fn func(v gjson.Result)) {
	if !r.IsArray() {
		return
	}
	r.ForEach(func(_, v gjson.Result) bool {
		fn(v)
		return true
	})
}

// toBundle maps the payload to the structured translations shape.
// Groups and glosses keep provider order; empty glosses are skipped and
// groups left without glosses are dropped.
func toBundle(word string, doc gjson.Result) provider.TranslationBundle {
	bundle := provider.TranslationBundle{Word: word}

	if t, ok := stringAt(doc, plainTranslationPath); ok {
		bundle.Translation = t
	}

	eachElem(doc.Get(posGroupsPath), func(g gjson.Result) {
		group := provider.POSGroup{PartOfSpeech: g.Get("0").String()}

		eachElem(g.Get("1"), func(e gjson.Result) {
			gloss, ok := stringAt(e, "0")
			if !ok {
				return
			}
			entry := provider.GlossEntry{
				Translation: gloss,
				Frequency:   int(e.Get("3").Int()),
			}
			eachElem(e.Get("2"), func(rev gjson.Result) {
				if rev.Type == gjson.String {
					entry.ReverseTranslations = append(entry.ReverseTranslations, rev.Str)
				}
			})
			group.Entries = append(group.Entries, entry)
		})

		if len(group.Entries) > 0 {
			bundle.Groups = append(bundle.Groups, group)
		}
	})

	return bundle
}
