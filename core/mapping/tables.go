// Package mapping defines the compiled ISO 639 mapping artifacts and loads
// them into read-only in-memory tables.
//
// The artifacts are eight UTF-8 JSON documents produced by the offline
// compiler (core/compile). The loader tolerates a partially-built data
// directory: a missing artifact yields an empty table, never an error, so a
// fresh checkout works before any compilation has run.
package mapping

// Artifact file names, shared between the compiler and the loader.
const (
	CoreFile       = "iso-639.json"
	DeprecatedFile = "iso-639_deprecated.json"
	MacroFile      = "iso-639_macro.json"
	RefNameFile    = "iso-639_ref_name.json"
	OtherNamesFile = "iso-639_other_names.json"
	ScopeFile      = "iso-639_scope.json"
	TypeFile       = "iso-639_type.json"
	LangsFile      = "iso-639_langs.json"
)

// Files lists every artifact in the bundle, in emission order.
var Files = []string{
	CoreFile,
	DeprecatedFile,
	MacroFile,
	RefNameFile,
	OtherNamesFile,
	ScopeFile,
	TypeFile,
	LangsFile,
}

// Tag keys of the core cross-reference table. The order is the
// disambiguation order used by the resolver for 3-letter values,
// minus the name and pt1 kinds which are recognized by shape.
var Tags = []string{"name", "pt1", "pt2b", "pt2t", "pt3", "pt5"}

// Retirement records the withdrawal of an identifier or name by a
// registration authority. Exactly one of ID and Name is empty, depending on
// which key of the deprecation table the record was found under.
type Retirement struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Reason    string `json:"reason"`
	ChangeTo  string `json:"change_to"`
	RetRemedy string `json:"ret_remedy"`
	Effective string `json:"effective"`
}

// Tables holds all compiled mapping artifacts in memory. Tables values are
// treated as immutable once returned by Load or Default; they are shared
// freely across goroutines without locking.
type Tables struct {
	// Core maps each tag to a value-indexed table of the other five
	// equivalent values: Core["pt1"]["fr"]["pt3"] == "fra".
	Core map[string]map[string]map[string]string
	// DeprecatedID and DeprecatedName key retirement records by the
	// withdrawn identifier and the withdrawn reference name.
	DeprecatedID   map[string]Retirement
	DeprecatedName map[string]Retirement
	// Macro maps a macrolanguage pt3 to its active members, sorted by
	// identifier. Individual is the inverse, one macrolanguage at most.
	Macro      map[string][]string
	Individual map[string]string
	// RefNames maps an alternate (printed, inverted or historical) name to
	// its unique reference name. OtherNames is the inverse, sorted.
	RefNames   map[string]string
	OtherNames map[string][]string
	// Scope and Type map a pt3 identifier to its one-letter code.
	Scope map[string]string
	Type  map[string]string
	// Langs is the sorted list of all current reference names.
	Langs []string
}

// Empty returns a Tables with every table allocated and empty.
func Empty() *Tables {
	return &Tables{
		Core:           emptyCore(),
		DeprecatedID:   map[string]Retirement{},
		DeprecatedName: map[string]Retirement{},
		Macro:          map[string][]string{},
		Individual:     map[string]string{},
		RefNames:       map[string]string{},
		OtherNames:     map[string][]string{},
		Scope:          map[string]string{},
		Type:           map[string]string{},
	}
}

func emptyCore() map[string]map[string]map[string]string {
	core := make(map[string]map[string]map[string]string, len(Tags))
	for _, tag := range Tags {
		core[tag] = map[string]map[string]string{}
	}
	return core
}

// coreComplete reports whether the core table carries all six tag keys.
// A table missing a tag key is a partial build and is treated as absent.
func coreComplete(core map[string]map[string]map[string]string) bool {
	for _, tag := range Tags {
		if _, ok := core[tag]; !ok {
			return false
		}
	}
	return true
}
