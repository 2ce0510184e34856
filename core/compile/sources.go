// Package compile builds the mapping artifacts consumed by core/mapping
// from the source tables published by the ISO 639 registration authorities.
//
// The sources are local files only; downloading them is a separate concern.
// Rows are staged into an in-memory SQLite database, joined into the core
// cross-reference there, and post-processed in Go (deprecation collapsing,
// alternate-name disambiguation) before the JSON artifacts are written.
package compile

import (
	"path/filepath"

	"github.com/FocuswithJustin/iso639/internal/datafile"
)

// Source file names, as published by the registration authorities.
// ISO-639-2_code_changes.tsv is a normalized export of the Library of
// Congress change list: Id, Change_To, English_Name, French_Name, Date,
// Category, Notes.
const (
	SourceISO6392            = "ISO-639-2_utf-8.txt"
	SourceISO6392Changes     = "ISO-639-2_code_changes.tsv"
	SourceISO6393            = "iso-639-3.tab"
	SourceISO6393Names       = "iso-639-3_Name_Index.tab"
	SourceISO6393Macro       = "iso-639-3-macrolanguages.tab"
	SourceISO6393Retirements = "iso-639-3_Retirements.tab"
	SourceISO6395            = "iso639-5.tsv"
	SourceISO6395Changes     = "iso639-5_changes.tsv"
)

type iso6392Row struct {
	Part2b      string
	Part2t      string
	Part1       string
	EnglishName string
	FrenchName  string
}

type changeRow struct {
	ID          string
	ChangeTo    string
	EnglishName string
	FrenchName  string
	Date        string
	Category    string
	Notes       string
}

type iso6393Row struct {
	ID      string
	Part2b  string
	Part2t  string
	Part1   string
	Scope   string
	Type    string
	RefName string
}

type nameIndexRow struct {
	ID           string
	PrintName    string
	InvertedName string
}

type macroRow struct {
	MacroID      string
	IndividualID string
	Status       string
}

type retirementRow struct {
	ID        string
	RefName   string
	Reason    string
	ChangeTo  string
	RetRemedy string
	Effective string
}

type iso6395Row struct {
	URI          string
	Code         string
	LabelEnglish string
	LabelFrench  string
}

// sources holds every parsed source table.
type sources struct {
	iso6392        []iso6392Row
	iso6392Changes []changeRow
	iso6393        []iso6393Row
	iso6393Names   []nameIndexRow
	macrolanguages []macroRow
	retirements    []retirementRow
	iso6395        []iso6395Row
	iso6395Changes []changeRow
}

// rowCounts reports rows per source file, for the build report.
func (s *sources) rowCounts() map[string]int {
	return map[string]int{
		SourceISO6392:            len(s.iso6392),
		SourceISO6392Changes:     len(s.iso6392Changes),
		SourceISO6393:            len(s.iso6393),
		SourceISO6393Names:       len(s.iso6393Names),
		SourceISO6393Macro:       len(s.macrolanguages),
		SourceISO6393Retirements: len(s.retirements),
		SourceISO6395:            len(s.iso6395),
		SourceISO6395Changes:     len(s.iso6395Changes),
	}
}

// readSources parses all eight source files from dir.
func readSources(dir string) (*sources, error) {
	src := &sources{}

	rows, err := datafile.ReadPipe(filepath.Join(dir, SourceISO6392))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.iso6392 = append(src.iso6392, iso6392Row{
			Part2b:      datafile.Field(row, 0),
			Part2t:      datafile.Field(row, 1),
			Part1:       datafile.Field(row, 2),
			EnglishName: datafile.Field(row, 3),
			FrenchName:  datafile.Field(row, 4),
		})
	}

	rows, err = datafile.ReadTab(filepath.Join(dir, SourceISO6392Changes))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.iso6392Changes = append(src.iso6392Changes, changeRow{
			ID:          datafile.Field(row, 0),
			ChangeTo:    datafile.Field(row, 1),
			EnglishName: datafile.Field(row, 2),
			FrenchName:  datafile.Field(row, 3),
			Date:        datafile.Field(row, 4),
			Category:    datafile.Field(row, 5),
			Notes:       datafile.Field(row, 6),
		})
	}

	rows, err = datafile.ReadTab(filepath.Join(dir, SourceISO6393))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.iso6393 = append(src.iso6393, iso6393Row{
			ID:      datafile.Field(row, 0),
			Part2b:  datafile.Field(row, 1),
			Part2t:  datafile.Field(row, 2),
			Part1:   datafile.Field(row, 3),
			Scope:   datafile.Field(row, 4),
			Type:    datafile.Field(row, 5),
			RefName: datafile.Field(row, 6),
		})
	}

	rows, err = datafile.ReadTab(filepath.Join(dir, SourceISO6393Names))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.iso6393Names = append(src.iso6393Names, nameIndexRow{
			ID:           datafile.Field(row, 0),
			PrintName:    datafile.Field(row, 1),
			InvertedName: datafile.Field(row, 2),
		})
	}

	rows, err = datafile.ReadTab(filepath.Join(dir, SourceISO6393Macro))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.macrolanguages = append(src.macrolanguages, macroRow{
			MacroID:      datafile.Field(row, 0),
			IndividualID: datafile.Field(row, 1),
			Status:       datafile.Field(row, 2),
		})
	}

	rows, err = datafile.ReadTab(filepath.Join(dir, SourceISO6393Retirements))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.retirements = append(src.retirements, retirementRow{
			ID:        datafile.Field(row, 0),
			RefName:   datafile.Field(row, 1),
			Reason:    datafile.Field(row, 2),
			ChangeTo:  datafile.Field(row, 3),
			RetRemedy: datafile.Field(row, 4),
			Effective: datafile.Field(row, 5),
		})
	}

	rows, err = datafile.ReadTab(filepath.Join(dir, SourceISO6395))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.iso6395 = append(src.iso6395, iso6395Row{
			URI:          datafile.Field(row, 0),
			Code:         datafile.Field(row, 1),
			LabelEnglish: datafile.Field(row, 2),
			LabelFrench:  datafile.Field(row, 3),
		})
	}

	rows, err = datafile.ReadTab(filepath.Join(dir, SourceISO6395Changes))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		src.iso6395Changes = append(src.iso6395Changes, changeRow{
			ID:          datafile.Field(row, 0),
			ChangeTo:    datafile.Field(row, 1),
			EnglishName: datafile.Field(row, 2),
			FrenchName:  datafile.Field(row, 3),
			Date:        datafile.Field(row, 4),
			Category:    datafile.Field(row, 5),
			Notes:       datafile.Field(row, 6),
		})
	}

	return src, nil
}
