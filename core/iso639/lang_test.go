package iso639

import (
	"slices"
	"testing"
)

func mustResolve(t *testing.T, value string) Lang {
	t.Helper()
	lg, err := Resolve(value)
	if err != nil {
		t.Fatalf("Resolve(%s) error = %v", value, err)
	}
	return lg
}

func TestLangEquality(t *testing.T) {
	if mustResolve(t, "fra") != mustResolve(t, "fr") {
		t.Error("fra and fr should resolve to equal records")
	}
	if mustResolve(t, "fra") == mustResolve(t, "eng") {
		t.Error("French and English should not be equal")
	}
}

func TestLangAsMapKey(t *testing.T) {
	counts := map[Lang]int{}
	counts[mustResolve(t, "fra")]++
	counts[mustResolve(t, "French")]++
	counts[mustResolve(t, "eng")]++
	if len(counts) != 2 {
		t.Errorf("got %d distinct keys, want 2", len(counts))
	}
	if counts[mustResolve(t, "fr")] != 2 {
		t.Errorf("French counted %d times, want 2", counts[mustResolve(t, "fr")])
	}
}

func TestLangCompare(t *testing.T) {
	english := mustResolve(t, "eng")
	french := mustResolve(t, "fra")
	if english.Compare(french) >= 0 {
		t.Error("English should order before French")
	}
	if french.Compare(english) <= 0 {
		t.Error("French should order after English")
	}
	if french.Compare(french) != 0 {
		t.Error("a record should compare equal to itself")
	}
}

func TestLangString(t *testing.T) {
	lg := mustResolve(t, "alu")
	want := `Lang(name="'Are'are", pt1="", pt2b="", pt2t="", pt3="alu", pt5="")`
	if lg.String() != want {
		t.Errorf("String() = %s, want %s", lg.String(), want)
	}
}

func TestLangAsMap(t *testing.T) {
	m := mustResolve(t, "fr").AsMap()
	if len(m) != len(AllTags) {
		t.Fatalf("AsMap() has %d entries, want %d", len(m), len(AllTags))
	}
	if m[TagPt2b] != "fre" || m[TagName] != "French" {
		t.Errorf("AsMap() = %v", m)
	}
}

func TestLangGetUnknownTag(t *testing.T) {
	if got := mustResolve(t, "fr").Get(Tag("bogus")); got != "" {
		t.Errorf("Get(bogus) = %q, want empty", got)
	}
}

func TestScopeAndType(t *testing.T) {
	tests := []struct {
		value string
		scope string
		typ   string
	}{
		{"fra", "Individual", "Living"},
		{"zho", "Macrolanguage", "Living"},
		{"grc", "Individual", "Ancient"},
		{"ber", "", ""}, // groups carry no scope or type
	}
	for _, tt := range tests {
		lg := mustResolve(t, tt.value)
		if got := lg.Scope(); got != tt.scope {
			t.Errorf("Resolve(%s).Scope() = %q, want %q", tt.value, got, tt.scope)
		}
		if got := lg.Type(); got != tt.typ {
			t.Errorf("Resolve(%s).Type() = %q, want %q", tt.value, got, tt.typ)
		}
	}
}

func TestMacro(t *testing.T) {
	macro := mustResolve(t, "cmn").Macro()
	if macro == nil {
		t.Fatal("cmn should have a macrolanguage")
	}
	if macro.Pt3() != "zho" {
		t.Errorf("macro pt3 = %q, want %q", macro.Pt3(), "zho")
	}

	// No macrolanguage of a macrolanguage.
	if macro.Macro() != nil {
		t.Error("zho should have no macrolanguage of its own")
	}
	// Plain individuals have no macrolanguage either.
	if mustResolve(t, "fra").Macro() != nil {
		t.Error("fra should have no macrolanguage")
	}
	// Groups have no pt3 at all.
	if mustResolve(t, "ber").Macro() != nil {
		t.Error("ber should have no macrolanguage")
	}
}

func TestIndividuals(t *testing.T) {
	arabic := mustResolve(t, "ara")
	members := arabic.Individuals()
	if len(members) == 0 {
		t.Fatal("ara should have individual members")
	}

	ids := make([]string, len(members))
	seen := map[Lang]int{}
	for i, member := range members {
		ids[i] = member.Pt3()
		seen[member]++
	}
	if !slices.Contains(ids, "apc") {
		t.Errorf("members = %v, want apc among them", ids)
	}
	if !slices.IsSorted(ids) {
		t.Errorf("members not sorted by identifier: %v", ids)
	}
	for member, n := range seen {
		if n != 1 {
			t.Errorf("member %s appears %d times", member.Pt3(), n)
		}
	}

	// Each member points back at the macrolanguage.
	for _, member := range members {
		macro := member.Macro()
		if macro == nil || *macro != arabic {
			t.Errorf("member %s does not point back at ara", member.Pt3())
		}
	}

	// No individuals of an individual.
	if got := mustResolve(t, "apc").Individuals(); len(got) != 0 {
		t.Errorf("apc should have no individuals, got %d", len(got))
	}
}

func TestOtherNames(t *testing.T) {
	names := mustResolve(t, "yue").OtherNames()
	if len(names) == 0 {
		t.Fatal("yue should have alternate names")
	}
	if !slices.IsSorted(names) {
		t.Errorf("alternate names not sorted: %v", names)
	}
	if len(slices.Compact(slices.Clone(names))) != len(names) {
		t.Errorf("alternate names contain duplicates: %v", names)
	}
	if slices.Contains(names, "Yue Chinese") {
		t.Error("alternate names must not include the reference name")
	}
	if !slices.Contains(names, "Cantonese") {
		t.Errorf("names = %v, want Cantonese among them", names)
	}

	if got := mustResolve(t, "fra").OtherNames(); len(got) != 0 {
		t.Errorf("French should have no alternate names in the snapshot, got %v", got)
	}
}
