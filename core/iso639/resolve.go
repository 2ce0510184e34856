package iso639

import "iter"

// Package-level resolution runs against the default tables: the embedded
// snapshot, or the artifact directory named by $ISO639_DATA_DIR. The
// tables are loaded at most once, on first use.

// Resolve resolves a single code or name of unknown kind into its record.
// See Catalog.Resolve for the disambiguation rules.
func Resolve(value string) (Lang, error) {
	return defaultCatalog().Resolve(value)
}

// ResolveTags resolves an explicit set of tag/value pairs that must all
// agree on the same record. See Catalog.ResolveTags.
func ResolveTags(pairs map[Tag]string) (Lang, error) {
	return defaultCatalog().ResolveTags(pairs)
}

// IsLanguage reports whether value is a current ISO 639 value for any of
// the requested tags (all tags when none are given). It never fails on
// invalid input.
func IsLanguage(value string, tags ...Tag) bool {
	return defaultCatalog().IsLanguage(value, tags...)
}

// IterLangs yields every current language and group, ordered alphabetically
// by reference name.
func IterLangs() iter.Seq[Lang] {
	return defaultCatalog().IterLangs()
}
