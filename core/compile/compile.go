package compile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/iso639/core/artifact"
	"github.com/FocuswithJustin/iso639/core/errors"
	"github.com/FocuswithJustin/iso639/core/mapping"
	"github.com/FocuswithJustin/iso639/core/sqlite"
	"github.com/FocuswithJustin/iso639/internal/logging"
)

// ReportFile is the build report written next to the artifacts.
const ReportFile = "build_report.json"

// Options configures a compiler run.
type Options struct {
	// SourceDir holds the seven source tables.
	SourceDir string
	// OutDir receives the artifacts, checksums, and build report.
	OutDir string
	// Bundle also packs the artifact directory into a tar.xz bundle.
	Bundle bool
}

// Report summarizes one compiler run.
type Report struct {
	RunID     string         `json:"run_id"`
	CreatedAt time.Time      `json:"created_at"`
	Sources   map[string]int `json:"source_rows"`
	Artifacts map[string]int `json:"artifact_entries"`
}

type deprecatedArtifact struct {
	ID   map[string]mapping.Retirement `json:"id"`
	Name map[string]mapping.Retirement `json:"name"`
}

type macroArtifact struct {
	Macro      map[string][]string `json:"macro"`
	Individual map[string]string   `json:"individual"`
}

// Run compiles the source tables in opts.SourceDir into the JSON artifact
// set in opts.OutDir and returns the build report.
func Run(ctx context.Context, opts Options) (*Report, error) {
	src, err := readSources(opts.SourceDir)
	if err != nil {
		logging.CompileError("read-sources", err)
		return nil, err
	}
	logging.CompileStage("read-sources", len(src.iso6393))

	db, err := sqlite.OpenMemory()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := stage(ctx, db, src); err != nil {
		logging.CompileError("stage", err)
		return nil, err
	}

	coreRows, err := queryCore(ctx, db)
	if err != nil {
		logging.CompileError("core", err)
		return nil, err
	}
	logging.CompileStage("core", len(coreRows))

	macro, individual, err := queryMacro(ctx, db)
	if err != nil {
		logging.CompileError("macro", err)
		return nil, err
	}
	logging.CompileStage("macro", len(individual))

	byID := buildRetirements(src)
	byName := retirementsByName(byID)
	logging.CompileStage("retirements", len(byID))

	refNames, otherNames := buildNames(src)
	logging.CompileStage("names", len(refNames))

	report := &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Sources:   src.rowCounts(),
		Artifacts: map[string]int{},
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, errors.NewIO("create directory", opts.OutDir, err)
	}

	core := buildCore(coreRows)
	entries := 0
	for _, byValue := range core {
		entries += len(byValue)
	}
	report.Artifacts[mapping.CoreFile] = entries
	if err := writeJSON(opts.OutDir, mapping.CoreFile, core); err != nil {
		return nil, err
	}

	report.Artifacts[mapping.DeprecatedFile] = len(byID) + len(byName)
	dep := deprecatedArtifact{ID: stripIDs(byID), Name: stripNames(byName)}
	if err := writeJSON(opts.OutDir, mapping.DeprecatedFile, dep); err != nil {
		return nil, err
	}

	report.Artifacts[mapping.MacroFile] = len(macro) + len(individual)
	if err := writeJSON(opts.OutDir, mapping.MacroFile, macroArtifact{macro, individual}); err != nil {
		return nil, err
	}

	report.Artifacts[mapping.RefNameFile] = len(refNames)
	if err := writeJSON(opts.OutDir, mapping.RefNameFile, refNames); err != nil {
		return nil, err
	}

	report.Artifacts[mapping.OtherNamesFile] = len(otherNames)
	if err := writeJSON(opts.OutDir, mapping.OtherNamesFile, otherNames); err != nil {
		return nil, err
	}

	scope := map[string]string{}
	typ := map[string]string{}
	for _, r := range src.iso6393 {
		scope[r.ID] = r.Scope
		typ[r.ID] = r.Type
	}
	report.Artifacts[mapping.ScopeFile] = len(scope)
	if err := writeJSON(opts.OutDir, mapping.ScopeFile, scope); err != nil {
		return nil, err
	}
	report.Artifacts[mapping.TypeFile] = len(typ)
	if err := writeJSON(opts.OutDir, mapping.TypeFile, typ); err != nil {
		return nil, err
	}

	langs := langNames(coreRows)
	report.Artifacts[mapping.LangsFile] = len(langs)
	if err := writeJSON(opts.OutDir, mapping.LangsFile, langs); err != nil {
		return nil, err
	}

	if err := writeJSON(opts.OutDir, ReportFile, report); err != nil {
		return nil, err
	}
	if err := artifact.WriteChecksums(opts.OutDir, ReportFile); err != nil {
		return nil, err
	}

	if opts.Bundle {
		bundle := filepath.Join(opts.OutDir, artifact.BundleFile)
		if err := artifact.Pack(opts.OutDir, bundle); err != nil {
			return nil, err
		}
		logging.CompileStage("bundle", 1)
	}

	logging.Info("compile complete", "run_id", report.RunID, "languages", len(langs))
	return report, nil
}

// buildCore indexes the cross-reference rows under each of the six tags.
// The entry stored under a tag carries the other five values of its record.
func buildCore(rows []coreRow) map[string]map[string]map[string]string {
	core := make(map[string]map[string]map[string]string, len(mapping.Tags))
	for _, tag := range mapping.Tags {
		core[tag] = map[string]map[string]string{}
	}
	for _, r := range rows {
		values := map[string]string{
			"name": r.Name, "pt1": r.Pt1, "pt2b": r.Pt2b,
			"pt2t": r.Pt2t, "pt3": r.Pt3, "pt5": r.Pt5,
		}
		for tag, value := range values {
			if value == "" {
				continue
			}
			entry := make(map[string]string, len(values)-1)
			for other, v := range values {
				if other != tag {
					entry[other] = v
				}
			}
			core[tag][value] = entry
		}
	}
	return core
}

// langNames returns the sorted, de-duplicated reference names of all rows.
func langNames(rows []coreRow) []string {
	seen := map[string]bool{}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Name != "" && !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	sort.Strings(names)
	return names
}

// stripIDs drops the identifier from records already keyed by it.
func stripIDs(byID map[string]mapping.Retirement) map[string]mapping.Retirement {
	out := make(map[string]mapping.Retirement, len(byID))
	for id, ret := range byID {
		ret.ID = ""
		out[id] = ret
	}
	return out
}

// stripNames drops the name from records already keyed by it.
func stripNames(byName map[string]mapping.Retirement) map[string]mapping.Retirement {
	out := make(map[string]mapping.Retirement, len(byName))
	for name, ret := range byName {
		ret.Name = ""
		out[name] = ret
	}
	return out
}

// writeJSON marshals v with stable key order and writes it into dir.
func writeJSON(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return errors.Wrapf(err, "marshaling %s", name)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
