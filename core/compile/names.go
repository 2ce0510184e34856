package compile

import (
	"sort"
	"strings"
)

// firstNameSegment returns the first semicolon-separated segment of an
// ISO 639-2 English name column, which lists synonyms joined by "; ".
func firstNameSegment(name string) string {
	if i := strings.Index(name, ";"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// nameSegments splits an ISO 639-2 English name column into its synonyms.
func nameSegments(name string) []string {
	var out []string
	for _, seg := range strings.Split(name, ";") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// refNamesByID maps every identifier (part 3, part 2B, part 5) to the
// reference name of its language. Part 3 assignments win on conflicts.
func refNamesByID(src *sources) map[string]string {
	byID := map[string]string{}

	for _, r := range src.iso6392 {
		if r.Part2b != "" {
			byID[r.Part2b] = firstNameSegment(r.EnglishName)
		}
	}
	for _, r := range src.iso6395 {
		if r.Code != "" {
			byID[r.Code] = r.LabelEnglish
		}
	}
	for _, r := range src.iso6393 {
		if r.Part2b != "" {
			byID[r.Part2b] = r.RefName
		}
		byID[r.ID] = r.RefName
	}
	return byID
}

// buildNames derives the alternate-name relations. The forward relation maps
// an alternate spelling to the reference name it denotes; a spelling shared
// by several languages is ambiguous and dropped from it entirely. The inverse
// keeps every pairing: reference name to its sorted alternates.
func buildNames(src *sources) (refNames map[string]string, otherNames map[string][]string) {
	byID := refNamesByID(src)

	// alternate name -> set of reference names it was seen under
	refsByAlt := map[string]map[string]bool{}
	add := func(alt, ref string) {
		if alt == "" || ref == "" || alt == ref {
			return
		}
		if refsByAlt[alt] == nil {
			refsByAlt[alt] = map[string]bool{}
		}
		refsByAlt[alt][ref] = true
	}

	for _, r := range src.iso6393Names {
		ref := byID[r.ID]
		add(r.PrintName, ref)
		add(r.InvertedName, ref)
	}
	for _, r := range src.iso6392 {
		ref := byID[r.Part2b]
		for _, seg := range nameSegments(r.EnglishName) {
			add(seg, ref)
		}
	}

	refNames = map[string]string{}
	altsByRef := map[string]map[string]bool{}
	for alt, refs := range refsByAlt {
		if len(refs) == 1 {
			for ref := range refs {
				refNames[alt] = ref
			}
		}
		for ref := range refs {
			if altsByRef[ref] == nil {
				altsByRef[ref] = map[string]bool{}
			}
			altsByRef[ref][alt] = true
		}
	}

	otherNames = map[string][]string{}
	for ref, alts := range altsByRef {
		names := make([]string, 0, len(alts))
		for alt := range alts {
			names = append(names, alt)
		}
		sort.Strings(names)
		otherNames[ref] = names
	}
	return refNames, otherNames
}
