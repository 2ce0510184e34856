// Package iso639 resolves identifiers and names across the ISO 639 family
// of language-code standards (parts 1, 2, 3, 5) into a single canonical
// record.
//
// Any single code or English name, case sensitive, resolves to a Lang
// carrying every equivalent identifier:
//
//	lg, err := iso639.Resolve("fr")
//	// lg.Name() == "French", lg.Pt2b() == "fre", lg.Pt3() == "fra"
//
// Resolution is backed by the compiled mapping artifacts (core/mapping),
// loaded once per process. All lookups after that are in-memory map access;
// Lang values and the tables behind them are immutable and safe to share
// across goroutines.
package iso639

// Tag identifies one of the six identifier kinds of the ISO 639 family.
type Tag string

const (
	// TagName is the reference English name.
	TagName Tag = "name"
	// TagPt1 is the two-letter ISO 639-1 code.
	TagPt1 Tag = "pt1"
	// TagPt2b is the three-letter ISO 639-2 bibliographic code.
	TagPt2b Tag = "pt2b"
	// TagPt2t is the three-letter ISO 639-2 terminologic code.
	TagPt2t Tag = "pt2t"
	// TagPt3 is the three-letter ISO 639-3 code.
	TagPt3 Tag = "pt3"
	// TagPt5 is the three-letter ISO 639-5 language-group code.
	TagPt5 Tag = "pt5"
)

// AllTags lists the six tags in canonical order.
var AllTags = []Tag{TagName, TagPt1, TagPt2b, TagPt2t, TagPt3, TagPt5}

// threeLetterTags is the disambiguation order for bare 3-letter values.
var threeLetterTags = []Tag{TagPt3, TagPt2b, TagPt2t, TagPt5}

// Valid reports whether t is one of the six identifier kinds.
func (t Tag) Valid() bool {
	switch t {
	case TagName, TagPt1, TagPt2b, TagPt2t, TagPt3, TagPt5:
		return true
	}
	return false
}
