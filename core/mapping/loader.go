package mapping

import (
	"embed"
	"encoding/json"
	"io/fs"
	"os"
	"sync"

	"github.com/FocuswithJustin/iso639/core/errors"
	"github.com/FocuswithJustin/iso639/internal/logging"
)

//go:embed data
var embedded embed.FS

// DataDirEnv names the environment variable that overrides the embedded
// snapshot with an external artifact directory.
const DataDirEnv = "ISO639_DATA_DIR"

// Load reads the mapping artifacts from dir. Missing files yield empty
// tables; malformed JSON is an error.
func Load(dir string) (*Tables, error) {
	return loadFS(os.DirFS(dir))
}

func loadFS(fsys fs.FS) (*Tables, error) {
	t := Empty()

	var core map[string]map[string]map[string]string
	if err := loadJSON(fsys, CoreFile, &core); err != nil {
		return nil, err
	}
	switch {
	case coreComplete(core):
		t.Core = core
	case len(core) > 0:
		// Partial core table from an interrupted build: rebuildable, not fatal.
		logging.Warn("incomplete core table, treating as missing", "file", CoreFile)
	}

	var deprecated map[string]map[string]Retirement
	if err := loadJSON(fsys, DeprecatedFile, &deprecated); err != nil {
		return nil, err
	}
	for id, ret := range deprecated["id"] {
		ret.ID = id
		t.DeprecatedID[id] = ret
	}
	for name, ret := range deprecated["name"] {
		ret.Name = name
		t.DeprecatedName[name] = ret
	}

	var macro struct {
		Macro      map[string][]string `json:"macro"`
		Individual map[string]string   `json:"individual"`
	}
	if err := loadJSON(fsys, MacroFile, &macro); err != nil {
		return nil, err
	}
	if macro.Macro != nil {
		t.Macro = macro.Macro
	}
	if macro.Individual != nil {
		t.Individual = macro.Individual
	}

	if err := loadJSON(fsys, RefNameFile, &t.RefNames); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, OtherNamesFile, &t.OtherNames); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, ScopeFile, &t.Scope); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, TypeFile, &t.Type); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, LangsFile, &t.Langs); err != nil {
		return nil, err
	}

	return t, nil
}

// loadJSON decodes one artifact into dst. An absent file leaves dst as-is.
func loadJSON(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.NewIO("read", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.NewParse("JSON", name, err.Error())
	}
	return nil
}

var defaultTables = sync.OnceValue(func() *Tables {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		t, err := Load(dir)
		if err != nil {
			// A corrupt external data directory is unrecoverable at init,
			// same policy as sqlite.MustOpen.
			panic("mapping: " + err.Error())
		}
		logging.TablesLoaded(dir, len(t.Langs))
		return t
	}
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic("mapping: " + err.Error())
	}
	t, err := loadFS(sub)
	if err != nil {
		panic("mapping: " + err.Error())
	}
	logging.TablesLoaded("embedded", len(t.Langs))
	return t
})

// Default returns the process-wide tables, built at most once from the
// embedded snapshot, or from $ISO639_DATA_DIR when set. Concurrent first
// calls are safe; the load happens exactly once.
func Default() *Tables {
	return defaultTables()
}
