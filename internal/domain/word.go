package domain

// ResolvedWord is the outcome of root resolution for one query.
// Translations is always set, possibly to the empty string.
// Manual reports that the user typed the root by hand, so the
// session must not ask to confirm it a second time.
type ResolvedWord struct {
	Root         string
	Translations string
	Manual       bool
}

// Aspect is the grammatical aspect of a Russian verb.
type Aspect int

const (
	AspectNone Aspect = iota
	AspectPerfective
	AspectImperfective
)

// Marker returns the single-letter suffix written after a verb on the card.
func (a Aspect) Marker() string {
	switch a {
	case AspectPerfective:
		return "p"
	case AspectImperfective:
		return "i"
	default:
		return ""
	}
}

func (a Aspect) String() string {
	switch a {
	case AspectPerfective:
		return "perfective"
	case AspectImperfective:
		return "imperfective"
	default:
		return "none"
	}
}

// AccentedForm is the stress-marked spelling of a root plus, for verbs,
// its aspect.
type AccentedForm struct {
	Stressed string
	Aspect   Aspect
}

// PlainForm wraps an unaccented word, used whenever no dictionary data exists.
func PlainForm(word string) AccentedForm {
	return AccentedForm{Stressed: word}
}

// String renders the card front: "говори́ть i", "сказа́ть p" or "стол".
func (f AccentedForm) String() string {
	if m := f.Aspect.Marker(); m != "" {
		return f.Stressed + " " + m
	}
	return f.Stressed
}
