package iso639

import (
	"iter"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/FocuswithJustin/iso639/core/mapping"
)

// abbreviations decodes the one-letter ISO 639-3 scope and type codes.
var abbreviations = map[string]string{
	"A": "Ancient",
	"C": "Constructed",
	"E": "Extinct",
	"H": "Historical",
	"I": "Individual",
	"L": "Living",
	"M": "Macrolanguage",
	"S": "Special",
}

// Catalog resolves values against an explicit set of mapping tables.
// The package-level functions run against the default tables; a Catalog
// over fixture tables keeps the resolver testable without touching
// process-wide state.
type Catalog struct {
	tables *mapping.Tables
}

// New returns a Catalog over the given tables. The tables must not be
// mutated afterwards.
func New(t *mapping.Tables) *Catalog {
	return &Catalog{tables: t}
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return New(mapping.Default())
})

// lookup builds the full record for one (tag, value) pair from the core
// cross-reference table.
func (c *Catalog) lookup(tag Tag, value string) (Lang, bool) {
	entry, ok := c.tables.Core[string(tag)][value]
	if !ok {
		return Lang{}, false
	}
	l := Lang{
		name: entry["name"],
		pt1:  entry["pt1"],
		pt2b: entry["pt2b"],
		pt2t: entry["pt2t"],
		pt3:  entry["pt3"],
		pt5:  entry["pt5"],
	}
	// The key tag is not stored in its own entry; close the record.
	switch tag {
	case TagName:
		l.name = value
	case TagPt1:
		l.pt1 = value
	case TagPt2b:
		l.pt2b = value
	case TagPt2t:
		l.pt2t = value
	case TagPt3:
		l.pt3 = value
	case TagPt5:
		l.pt5 = value
	}
	return l, true
}

// retirement looks up a retirement record for a withdrawn identifier or
// withdrawn reference name.
func (c *Catalog) retirement(value string) (mapping.Retirement, bool) {
	if ret, ok := c.tables.DeprecatedID[value]; ok {
		return ret, true
	}
	if ret, ok := c.tables.DeprecatedName[value]; ok {
		return ret, true
	}
	return mapping.Retirement{}, false
}

// refName rewrites an alternate name to its reference name, when known.
func (c *Catalog) refName(name string) string {
	if ref, ok := c.tables.RefNames[name]; ok {
		return ref
	}
	return name
}

// Resolve resolves a single value of unknown kind, case sensitive:
// three lowercase characters are tried as pt3, pt2b, pt2t then pt5; two
// lowercase characters as pt1; anything else as a name, with alternate
// names rewritten to their reference name first.
//
// A value that matches nothing current but appears in the deprecation
// table fails with *DeprecatedValueError carrying the retirement record.
// Everything else that matches nothing fails with *InvalidValueError.
// Two-letter values are never checked against the deprecation table.
func (c *Catalog) Resolve(value string) (Lang, error) {
	n := utf8.RuneCountInString(value)
	lower := value == strings.ToLower(value)
	switch {
	case n == 3 && lower:
		for _, tag := range threeLetterTags {
			if l, ok := c.lookup(tag, value); ok {
				return l, nil
			}
		}
		if ret, ok := c.retirement(value); ok {
			return Lang{}, deprecatedValue(ret)
		}
	case n == 2 && lower:
		if l, ok := c.lookup(TagPt1, value); ok {
			return l, nil
		}
	default:
		if l, ok := c.lookup(TagName, c.refName(value)); ok {
			return l, nil
		}
		if ret, ok := c.retirement(value); ok {
			return Lang{}, deprecatedValue(ret)
		}
	}
	return Lang{}, invalidValue(value)
}

// ResolveTags resolves an explicit set of tag/value pairs. Each non-empty
// pair is resolved independently; all must agree on the same record.
// Empty values are treated as not supplied. Supplying no pairs, a pair
// that does not resolve, or pairs that resolve to different records fails
// with *InvalidValueError; a pair matching the deprecation table fails
// with *DeprecatedValueError.
func (c *Catalog) ResolveTags(pairs map[Tag]string) (Lang, error) {
	var (
		langs    []Lang
		supplied []string
	)
	for _, tag := range AllTags {
		value, ok := pairs[tag]
		if !ok || value == "" {
			continue
		}
		supplied = append(supplied, string(tag)+"="+value)

		lookupValue := value
		if tag == TagName {
			lookupValue = c.refName(value)
		}
		l, ok := c.lookup(tag, lookupValue)
		if !ok {
			if ret, found := c.retirement(value); found {
				return Lang{}, deprecatedValue(ret)
			}
			return Lang{}, invalidValue(string(tag) + "=" + value)
		}
		langs = append(langs, l)
	}
	for tag := range pairs {
		if !tag.Valid() {
			return Lang{}, invalidValue(string(tag) + "=" + pairs[tag])
		}
	}
	if len(langs) == 0 {
		return Lang{}, invalidValue(supplied...)
	}
	for _, l := range langs[1:] {
		if l != langs[0] {
			return Lang{}, invalidValue(supplied...)
		}
	}
	return langs[0], nil
}

// IsLanguage reports whether value belongs to the union of current values
// for the requested tags (all tags when none are given). It never fails:
// unknown and deprecated values are both false. For TagName, alternate
// names count as membership.
func (c *Catalog) IsLanguage(value string, tags ...Tag) bool {
	if len(tags) == 0 {
		tags = AllTags
	}
	for _, tag := range tags {
		lookupValue := value
		if tag == TagName {
			lookupValue = c.refName(value)
		}
		if _, ok := c.tables.Core[string(tag)][lookupValue]; ok {
			return true
		}
	}
	return false
}

// Scope returns the decoded scope of the record, "" when absent.
func (c *Catalog) Scope(l Lang) string {
	return abbreviations[c.tables.Scope[l.pt3]]
}

// Type returns the decoded type of the record, "" when absent.
func (c *Catalog) Type(l Lang) string {
	return abbreviations[c.tables.Type[l.pt3]]
}

// Macro returns the record's macrolanguage, nil when there is none or when
// the stored macro identifier no longer resolves. Stale cross-references
// between tables must not make an otherwise-valid record unusable.
func (c *Catalog) Macro(l Lang) *Lang {
	id, ok := c.tables.Individual[l.pt3]
	if !ok {
		return nil
	}
	macro, err := c.Resolve(id)
	if err != nil {
		return nil
	}
	return &macro
}

// Individuals returns the resolved members of the record's macrolanguage
// relation in stored (identifier-sorted) order. Members that no longer
// resolve are skipped.
func (c *Catalog) Individuals(l Lang) []Lang {
	ids := c.tables.Macro[l.pt3]
	members := make([]Lang, 0, len(ids))
	for _, id := range ids {
		member, err := c.Resolve(id)
		if err != nil {
			continue
		}
		members = append(members, member)
	}
	return members
}

// OtherNames returns the sorted alternate names of the record.
func (c *Catalog) OtherNames(l Lang) []string {
	return slices.Clone(c.tables.OtherNames[l.name])
}

// IterLangs yields every current language and group, ordered alphabetically
// by reference name. The sequence is finite and restartable; each call
// re-resolves from the stored name list.
func (c *Catalog) IterLangs() iter.Seq[Lang] {
	return func(yield func(Lang) bool) {
		for _, name := range c.tables.Langs {
			l, err := c.Resolve(name)
			if err != nil {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}
