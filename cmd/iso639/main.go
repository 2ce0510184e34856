// Command iso639 resolves ISO 639 language identifiers and compiles the
// mapping artifacts the resolver runs on.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/iso639/core/artifact"
	"github.com/FocuswithJustin/iso639/core/compile"
	"github.com/FocuswithJustin/iso639/core/iso639"
	"github.com/FocuswithJustin/iso639/core/mapping"
	"github.com/FocuswithJustin/iso639/core/sqlite"
	"github.com/FocuswithJustin/iso639/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for iso639.
var CLI struct {
	// Global flags
	DataDir   string `name:"data-dir" short:"d" help:"Mapping artifact directory (default: embedded data)" type:"existingdir"`
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Lookup  LookupCmd  `cmd:"" help:"Resolve a language from a name or code"`
	List    ListCmd    `cmd:"" help:"List every language in the catalog"`
	Compile CompileCmd `cmd:"" help:"Compile mapping artifacts from source tables"`
	Pack    PackCmd    `cmd:"" help:"Pack an artifact directory into a tar.xz bundle"`
	Verify  VerifyCmd  `cmd:"" help:"Verify artifact checksums"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// catalog opens the resolver catalog, honoring the --data-dir override.
func catalog() (*iso639.Catalog, error) {
	if CLI.DataDir == "" {
		return iso639.New(mapping.Default()), nil
	}
	tables, err := mapping.Load(CLI.DataDir)
	if err != nil {
		return nil, err
	}
	return iso639.New(tables), nil
}

// LookupCmd resolves one value to its full language record.
type LookupCmd struct {
	Value string `arg:"" help:"Name or ISO 639 code to resolve"`
	Tag   string `help:"Restrict the value to one tag" enum:",name,pt1,pt2b,pt2t,pt3,pt5" default:""`
	JSON  bool   `help:"Emit the record as JSON"`
}

func (c *LookupCmd) Run() error {
	cat, err := catalog()
	if err != nil {
		return err
	}

	var lg iso639.Lang
	if c.Tag == "" {
		lg, err = cat.Resolve(c.Value)
	} else {
		lg, err = cat.ResolveTags(map[iso639.Tag]string{iso639.Tag(c.Tag): c.Value})
	}
	var dep *iso639.DeprecatedValueError
	if errors.As(err, &dep) && dep.ChangeTo != "" {
		return fmt.Errorf("%w (try %q)", err, dep.ChangeTo)
	}
	if err != nil {
		return err
	}

	if c.JSON {
		record := lg.AsMap()
		out := map[string]any{}
		for tag, value := range record {
			out[string(tag)] = value
		}
		if s := cat.Scope(lg); s != "" {
			out["scope"] = s
		}
		if t := cat.Type(lg); t != "" {
			out["type"] = t
		}
		if names := cat.OtherNames(lg); len(names) != 0 {
			out["other_names"] = names
		}
		if macro := cat.Macro(lg); macro != nil {
			out["macro"] = macro.Pt3()
		}
		if members := cat.Individuals(lg); len(members) != 0 {
			ids := make([]string, 0, len(members))
			for _, m := range members {
				ids = append(ids, m.Pt3())
			}
			out["individuals"] = ids
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, tag := range iso639.AllTags {
		fmt.Printf("%-5s %s\n", string(tag)+":", lg.Get(tag))
	}
	if s := cat.Scope(lg); s != "" {
		fmt.Printf("scope: %s\n", s)
	}
	if t := cat.Type(lg); t != "" {
		fmt.Printf("type:  %s\n", t)
	}
	if macro := cat.Macro(lg); macro != nil {
		fmt.Printf("macro: %s\n", macro.Name())
	}
	for _, member := range cat.Individuals(lg) {
		fmt.Printf("member: %s (%s)\n", member.Name(), member.Pt3())
	}
	if names := cat.OtherNames(lg); len(names) != 0 {
		fmt.Printf("also:  %v\n", names)
	}
	return nil
}

// ListCmd prints the catalog, one reference name per line.
type ListCmd struct {
	JSON bool `help:"Emit the list as a JSON array"`
}

func (c *ListCmd) Run() error {
	cat, err := catalog()
	if err != nil {
		return err
	}

	if c.JSON {
		var names []string
		for lg := range cat.IterLangs() {
			names = append(names, lg.Name())
		}
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for lg := range cat.IterLangs() {
		fmt.Println(lg.Name())
	}
	return nil
}

// CompileCmd builds the artifact set from registration-authority tables.
type CompileCmd struct {
	Sources string `arg:"" help:"Directory holding the source tables" type:"existingdir"`
	Out     string `help:"Artifact output directory" default:"data" type:"path"`
	Bundle  bool   `help:"Also pack the artifacts into a tar.xz bundle"`
}

func (c *CompileCmd) Run() error {
	report, err := compile.Run(context.Background(), compile.Options{
		SourceDir: c.Sources,
		OutDir:    c.Out,
		Bundle:    c.Bundle,
	})
	if err != nil {
		return err
	}

	fmt.Printf("run %s\n", report.RunID)
	names := make([]string, 0, len(report.Artifacts))
	for name := range report.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-28s %d entries\n", name, report.Artifacts[name])
	}
	return nil
}

// PackCmd bundles an artifact directory.
type PackCmd struct {
	Dir string `arg:"" help:"Artifact directory to pack" type:"existingdir"`
	Out string `help:"Bundle path (default: <dir>/iso639-data.tar.xz)" type:"path"`
}

func (c *PackCmd) Run() error {
	out := c.Out
	if out == "" {
		out = filepath.Join(c.Dir, artifact.BundleFile)
	}
	if err := artifact.Pack(c.Dir, out); err != nil {
		return err
	}
	fmt.Printf("packed %s\n", out)
	return nil
}

// VerifyCmd checks the artifact checksums in a directory.
type VerifyCmd struct {
	Dir string `arg:"" help:"Artifact directory to verify" type:"existingdir"`
}

func (c *VerifyCmd) Run() error {
	if err := artifact.VerifyChecksums(c.Dir); err != nil {
		return err
	}
	fmt.Printf("ok %s\n", c.Dir)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("iso639 version %s (sqlite: %s)\n", version, sqlite.DriverType())
	return nil
}

func initLogging() {
	level := logging.LevelWarn
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "info":
		level = logging.LevelInfo
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("iso639"),
		kong.Description("ISO 639 language-code resolver and artifact compiler"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
