package iso639

import (
	"errors"
	"testing"

	coreerrors "github.com/FocuswithJustin/iso639/core/errors"
)

func TestResolveFrench(t *testing.T) {
	lg, err := Resolve("fr")
	if err != nil {
		t.Fatalf("Resolve(fr) error = %v", err)
	}
	want := map[Tag]string{
		TagName: "French",
		TagPt1:  "fr",
		TagPt2b: "fre",
		TagPt2t: "fra",
		TagPt3:  "fra",
		TagPt5:  "",
	}
	for tag, value := range want {
		if got := lg.Get(tag); got != value {
			t.Errorf("Get(%s) = %q, want %q", tag, got, value)
		}
	}
}

func TestResolveMandarin(t *testing.T) {
	lg, err := Resolve("cmn")
	if err != nil {
		t.Fatalf("Resolve(cmn) error = %v", err)
	}
	if lg.Name() != "Mandarin Chinese" {
		t.Errorf("Name() = %q, want %q", lg.Name(), "Mandarin Chinese")
	}
	for _, tag := range []Tag{TagPt1, TagPt2b, TagPt2t, TagPt5} {
		if got := lg.Get(tag); got != "" {
			t.Errorf("Get(%s) = %q, want empty", tag, got)
		}
	}
}

func TestResolveBerberGroup(t *testing.T) {
	lg, err := Resolve("ber")
	if err != nil {
		t.Fatalf("Resolve(ber) error = %v", err)
	}
	if lg.Name() != "Berber languages" {
		t.Errorf("Name() = %q, want %q", lg.Name(), "Berber languages")
	}
	if lg.Pt5() != "ber" {
		t.Errorf("Pt5() = %q, want %q", lg.Pt5(), "ber")
	}
	if lg.Pt1() != "" || lg.Pt2b() != "" || lg.Pt3() != "" {
		t.Errorf("group should carry only pt5 and name: %v", lg)
	}
}

func TestResolveRoundTripAcrossKinds(t *testing.T) {
	for _, value := range []string{"fra", "fre", "fr", "French"} {
		lg, err := Resolve(value)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", value, err)
		}
		again, err := Resolve(lg.Pt1())
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", lg.Pt1(), err)
		}
		if lg != again {
			t.Errorf("round trip through pt1 diverged: %v != %v", lg, again)
		}
	}
}

func TestResolveClosure(t *testing.T) {
	// Looking a record's own value up under its kind must yield the value back.
	lg, err := Resolve("deu")
	if err != nil {
		t.Fatal(err)
	}
	for _, tag := range AllTags {
		value := lg.Get(tag)
		if value == "" {
			continue
		}
		other, err := Resolve(value)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", value, err)
		}
		if got := other.Get(tag); got != value {
			t.Errorf("Resolve(%s).Get(%s) = %q, want %q", value, tag, got, value)
		}
	}
}

func TestResolveAlternateName(t *testing.T) {
	lg, err := Resolve("Castilian")
	if err != nil {
		t.Fatalf("Resolve(Castilian) error = %v", err)
	}
	ref, err := Resolve("Spanish")
	if err != nil {
		t.Fatal(err)
	}
	if lg != ref {
		t.Errorf("alternate name resolved to %v, want %v", lg, ref)
	}
}

func TestResolveCaseSensitive(t *testing.T) {
	for _, value := range []string{"ENG", "Eng", "FR", "Fr", "german", "GERMAN"} {
		if _, err := Resolve(value); err == nil {
			t.Errorf("Resolve(%s) should fail", value)
			continue
		} else {
			var invalid *InvalidValueError
			if !errors.As(err, &invalid) {
				t.Errorf("Resolve(%s) error = %T, want *InvalidValueError", value, err)
			}
		}
	}
}

func TestResolveEmptyAndUnknown(t *testing.T) {
	for _, value := range []string{"", "xx", "xxx", "foobar"} {
		_, err := Resolve(value)
		var invalid *InvalidValueError
		if !errors.As(err, &invalid) {
			t.Errorf("Resolve(%q) error = %v, want *InvalidValueError", value, err)
		}
		if !errors.Is(err, coreerrors.ErrInvalidInput) {
			t.Errorf("Resolve(%q) should unwrap to ErrInvalidInput", value)
		}
	}
}

func TestResolveDeprecatedID(t *testing.T) {
	_, err := Resolve("ppr")
	var dep *DeprecatedValueError
	if !errors.As(err, &dep) {
		t.Fatalf("Resolve(ppr) error = %v, want *DeprecatedValueError", err)
	}
	if dep.ID != "ppr" || dep.Name != "Piru" || dep.Reason != "M" {
		t.Errorf("retirement = %+v", dep)
	}
	if dep.ChangeTo != "lcq" || dep.Effective != "2013-01-23" {
		t.Errorf("retirement = %+v", dep)
	}
	if !errors.Is(err, coreerrors.ErrDeprecated) {
		t.Error("DeprecatedValueError should unwrap to ErrDeprecated")
	}

	// The replacement must itself resolve.
	repl, err := Resolve(dep.ChangeTo)
	if err != nil {
		t.Fatalf("Resolve(%s) error = %v", dep.ChangeTo, err)
	}
	if repl.Pt3() != "lcq" {
		t.Errorf("replacement pt3 = %q, want %q", repl.Pt3(), "lcq")
	}
}

func TestResolveDeprecatedName(t *testing.T) {
	_, err := Resolve("Piru")
	var dep *DeprecatedValueError
	if !errors.As(err, &dep) {
		t.Fatalf("Resolve(Piru) error = %v, want *DeprecatedValueError", err)
	}
	if dep.ID != "ppr" || dep.ChangeTo != "lcq" {
		t.Errorf("retirement = %+v", dep)
	}
}

func TestResolveDeprecatedBibliographic(t *testing.T) {
	_, err := Resolve("scc")
	var dep *DeprecatedValueError
	if !errors.As(err, &dep) {
		t.Fatalf("Resolve(scc) error = %v, want *DeprecatedValueError", err)
	}
	if dep.ChangeTo != "srp" {
		t.Errorf("ChangeTo = %q, want %q", dep.ChangeTo, "srp")
	}
	if _, err := Resolve(dep.ChangeTo); err != nil {
		t.Errorf("Resolve(%s) error = %v", dep.ChangeTo, err)
	}
}

func TestResolveTwoLetterNeverDeprecated(t *testing.T) {
	// "iw" sits in the deprecation table but bare two-letter values are
	// rejected as invalid, not deprecated.
	_, err := Resolve("iw")
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("Resolve(iw) error = %v, want *InvalidValueError", err)
	}
}

func TestResolvePassThrough(t *testing.T) {
	lg, err := Resolve("fra")
	if err != nil {
		t.Fatal(err)
	}
	copied := lg
	if copied != lg {
		t.Error("copied record should be equal to the original")
	}
	again, err := Resolve(lg.Name())
	if err != nil {
		t.Fatal(err)
	}
	if again != lg {
		t.Error("re-resolving a record's own name should yield an equal record")
	}
}

func TestResolveTags(t *testing.T) {
	tests := []struct {
		name    string
		pairs   map[Tag]string
		want    string // expected reference name, "" for error
		wantDep bool
	}{
		{
			name:  "single pair",
			pairs: map[Tag]string{TagPt3: "fra"},
			want:  "French",
		},
		{
			name:  "agreeing pairs",
			pairs: map[Tag]string{TagPt1: "fr", TagPt2b: "fre", TagName: "French"},
			want:  "French",
		},
		{
			name:  "empty values ignored",
			pairs: map[Tag]string{TagPt3: "deu", TagPt1: "", TagPt5: ""},
			want:  "German",
		},
		{
			name:  "alternate name pair",
			pairs: map[Tag]string{TagName: "Castilian", TagPt1: "es"},
			want:  "Spanish",
		},
		{
			name:  "conflicting pairs",
			pairs: map[Tag]string{TagPt1: "fr", TagPt3: "eng"},
		},
		{
			name:  "unresolvable pair",
			pairs: map[Tag]string{TagPt3: "zzz"},
		},
		{
			name:  "nothing supplied",
			pairs: map[Tag]string{TagPt1: ""},
		},
		{
			name:  "no pairs at all",
			pairs: map[Tag]string{},
		},
		{
			name:  "unknown tag",
			pairs: map[Tag]string{Tag("foobar"): "fr"},
		},
		{
			name:    "deprecated pair",
			pairs:   map[Tag]string{TagPt3: "ppr"},
			wantDep: true,
		},
		{
			name:    "deprecated two-letter pair",
			pairs:   map[Tag]string{TagPt1: "iw"},
			wantDep: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, err := ResolveTags(tt.pairs)
			if tt.want != "" {
				if err != nil {
					t.Fatalf("ResolveTags() error = %v", err)
				}
				if lg.Name() != tt.want {
					t.Errorf("Name() = %q, want %q", lg.Name(), tt.want)
				}
				return
			}
			if tt.wantDep {
				var dep *DeprecatedValueError
				if !errors.As(err, &dep) {
					t.Fatalf("error = %v, want *DeprecatedValueError", err)
				}
				return
			}
			var invalid *InvalidValueError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want *InvalidValueError", err)
			}
		})
	}
}

func TestIsLanguage(t *testing.T) {
	tests := []struct {
		value string
		tags  []Tag
		want  bool
	}{
		{"fr", nil, true},
		{"fra", nil, true},
		{"French", nil, true},
		{"Castilian", nil, true},
		{"ber", nil, true},
		{"xx", nil, false},
		{"ppr", nil, false}, // deprecated is not current
		{"ENG", nil, false},
		{"fr", []Tag{TagPt1}, true},
		{"fr", []Tag{TagPt3}, false},
		{"fra", []Tag{TagPt3, TagPt2t}, true},
		{"fre", []Tag{TagPt2t}, false},
		{"Berber languages", []Tag{TagName}, true},
		{"", nil, false},
	}

	for _, tt := range tests {
		if got := IsLanguage(tt.value, tt.tags...); got != tt.want {
			t.Errorf("IsLanguage(%q, %v) = %v, want %v", tt.value, tt.tags, got, tt.want)
		}
	}
}
