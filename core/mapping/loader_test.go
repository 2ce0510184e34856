package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromDataDir(t *testing.T) {
	tbl, err := Load("data")
	if err != nil {
		t.Fatalf("Load(data) error = %v", err)
	}

	if !coreComplete(tbl.Core) {
		t.Fatal("core table should carry all six tag keys")
	}
	if got := tbl.Core["pt1"]["fr"]["pt3"]; got != "fra" {
		t.Errorf(`Core["pt1"]["fr"]["pt3"] = %q, want "fra"`, got)
	}
	if got := tbl.Core["pt5"]["ber"]["name"]; got != "Berber languages" {
		t.Errorf(`Core["pt5"]["ber"]["name"] = %q, want "Berber languages"`, got)
	}

	ret, ok := tbl.DeprecatedID["ppr"]
	if !ok {
		t.Fatal("ppr should be in the deprecated id table")
	}
	if ret.ID != "ppr" || ret.Name != "Piru" || ret.ChangeTo != "lcq" {
		t.Errorf("ppr retirement = %+v", ret)
	}
	if ret, ok := tbl.DeprecatedName["Piru"]; !ok || ret.Name != "Piru" || ret.ID != "ppr" {
		t.Errorf("Piru retirement = %+v, ok = %v", ret, ok)
	}

	if got := tbl.Individual["cmn"]; got != "zho" {
		t.Errorf(`Individual["cmn"] = %q, want "zho"`, got)
	}
	if members := tbl.Macro["ara"]; len(members) != 2 || members[0] != "apc" {
		t.Errorf(`Macro["ara"] = %v`, members)
	}

	if got := tbl.RefNames["Castilian"]; got != "Spanish" {
		t.Errorf(`RefNames["Castilian"] = %q`, got)
	}
	if got := tbl.Scope["zho"]; got != "M" {
		t.Errorf(`Scope["zho"] = %q, want "M"`, got)
	}
	if len(tbl.Langs) == 0 {
		t.Error("Langs should not be empty")
	}
}

func TestLoadMissingDirIsEmpty(t *testing.T) {
	tbl, err := Load(filepath.Join(t.TempDir(), "nothing-here"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for absent artifacts", err)
	}
	if len(tbl.Core["pt3"]) != 0 {
		t.Error("core table should be empty")
	}
	if len(tbl.DeprecatedID) != 0 || len(tbl.Macro) != 0 || len(tbl.Langs) != 0 {
		t.Error("all tables should be empty for an absent data directory")
	}
}

func TestLoadIncompleteCoreTreatedAsMissing(t *testing.T) {
	dir := t.TempDir()
	// Only two of the six tag keys: a partial build.
	partial := `{"pt3": {"fra": {"name": "French"}}, "pt1": {}}`
	if err := os.WriteFile(filepath.Join(dir, CoreFile), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Core["pt3"]) != 0 {
		t.Error("incomplete core table should be dropped")
	}
	if !coreComplete(tbl.Core) {
		t.Error("dropped core table should still expose all six tag keys, empty")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ScopeFile), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error for malformed artifact")
	}
}

func TestDefaultEmbedded(t *testing.T) {
	tbl := Default()
	if tbl == nil {
		t.Fatal("Default() returned nil")
	}
	if !coreComplete(tbl.Core) {
		t.Error("embedded core table should be complete")
	}
	if Default() != tbl {
		t.Error("Default() should return the same tables on every call")
	}
}

func TestEmptyTables(t *testing.T) {
	tbl := Empty()
	if !coreComplete(tbl.Core) {
		t.Error("Empty() core should expose all six tag keys")
	}
	if tbl.DeprecatedID == nil || tbl.OtherNames == nil {
		t.Error("Empty() should allocate every table")
	}
}
