package iso639

import (
	"fmt"
	"strings"
)

// Lang is an immutable record of one language or language group, holding
// its value for each of the six identifier kinds (empty string when the
// kind does not apply).
//
// Lang values are constructed only by resolution; the zero value is not a
// valid record. Two Langs are equal (==) iff all six values are equal, so
// a Lang is usable as a map key or set member. Resolving a value obtained
// from an existing Lang yields an equal Lang; copying a Lang is the
// pass-through form of resolution.
type Lang struct {
	name string
	pt1  string
	pt2b string
	pt2t string
	pt3  string
	pt5  string
}

// Name returns the reference name: the ISO 639-3 reference language name if
// there is one, the ISO 639-2 or ISO 639-5 English name otherwise.
func (l Lang) Name() string { return l.name }

// Pt1 returns the two-letter ISO 639-1 code, if there is one.
func (l Lang) Pt1() string { return l.pt1 }

// Pt2b returns the three-letter ISO 639-2 bibliographic code, if there is one.
func (l Lang) Pt2b() string { return l.pt2b }

// Pt2t returns the three-letter ISO 639-2 terminologic code, if there is one.
func (l Lang) Pt2t() string { return l.pt2t }

// Pt3 returns the three-letter ISO 639-3 code, if there is one.
func (l Lang) Pt3() string { return l.pt3 }

// Pt5 returns the three-letter ISO 639-5 group code, if there is one.
func (l Lang) Pt5() string { return l.pt5 }

// Get returns the record's value for the given tag, "" for an unknown tag.
func (l Lang) Get(tag Tag) string {
	switch tag {
	case TagName:
		return l.name
	case TagPt1:
		return l.pt1
	case TagPt2b:
		return l.pt2b
	case TagPt2t:
		return l.pt2t
	case TagPt3:
		return l.pt3
	case TagPt5:
		return l.pt5
	}
	return ""
}

// AsMap returns the six tag/value pairs of the record.
func (l Lang) AsMap() map[Tag]string {
	m := make(map[Tag]string, len(AllTags))
	for _, tag := range AllTags {
		m[tag] = l.Get(tag)
	}
	return m
}

// Compare orders records by reference name, then by the remaining tags for
// a total order. It returns -1, 0 or +1 like strings.Compare.
func (l Lang) Compare(other Lang) int {
	for _, tag := range AllTags {
		if c := strings.Compare(l.Get(tag), other.Get(tag)); c != 0 {
			return c
		}
	}
	return 0
}

// String returns the canonical textual form of the record.
func (l Lang) String() string {
	parts := make([]string, 0, len(AllTags))
	for _, tag := range AllTags {
		parts = append(parts, fmt.Sprintf("%s=%q", tag, l.Get(tag)))
	}
	return "Lang(" + strings.Join(parts, ", ") + ")"
}

// Derived accessors below consult the default tables, like package-level
// Resolve. Use the Catalog methods of the same names to run against
// explicitly loaded tables.

// Scope returns the decoded ISO 639-3 scope of the language ("Individual",
// "Macrolanguage" or "Special"). It returns "" for language groups and
// other records without a pt3 entry; that is the expected case, not an
// error.
func (l Lang) Scope() string {
	return defaultCatalog().Scope(l)
}

// Type returns the decoded ISO 639-3 type of the language ("Ancient",
// "Constructed", "Extinct", "Historical", "Living" or "Special"), or ""
// when the record has no pt3 entry.
func (l Lang) Type() string {
	return defaultCatalog().Type(l)
}

// Macro returns the macrolanguage this individual language belongs to, or
// nil when there is none. A macrolanguage pointer that no longer resolves
// yields nil rather than an error.
func (l Lang) Macro() *Lang {
	return defaultCatalog().Macro(l)
}

// Individuals returns the individual languages of this macrolanguage,
// sorted by pt3 identifier. Non-macrolanguages yield an empty slice.
// Members that no longer resolve are skipped.
func (l Lang) Individuals() []Lang {
	return defaultCatalog().Individuals(l)
}

// OtherNames returns the sorted alternate names of the record (printed,
// inverted and historical names differing from the reference name).
func (l Lang) OtherNames() []string {
	return defaultCatalog().OtherNames(l)
}
