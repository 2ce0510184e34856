package compile

import (
	"context"
	"database/sql"

	"github.com/FocuswithJustin/iso639/core/errors"
)

const stagingSchema = `
CREATE TABLE ISO_639_2 (
	Part2b       TEXT NOT NULL,
	Part2t       TEXT NOT NULL,
	Part1        TEXT NOT NULL,
	English_Name TEXT NOT NULL,
	French_Name  TEXT NOT NULL
);
CREATE TABLE ISO_639_2_Changes (
	Id           TEXT NOT NULL,
	Change_To    TEXT NOT NULL,
	English_Name TEXT NOT NULL,
	French_Name  TEXT NOT NULL,
	Date         TEXT NOT NULL,
	Category     TEXT NOT NULL,
	Notes        TEXT NOT NULL
);
CREATE TABLE ISO_639_3 (
	Id       TEXT NOT NULL PRIMARY KEY,
	Part2b   TEXT NOT NULL,
	Part2t   TEXT NOT NULL,
	Part1    TEXT NOT NULL,
	Scope    TEXT NOT NULL,
	Type     TEXT NOT NULL,
	Ref_Name TEXT NOT NULL
);
CREATE TABLE ISO_639_3_Macrolanguages (
	M_Id     TEXT NOT NULL,
	I_Id     TEXT NOT NULL,
	I_Status TEXT NOT NULL
);
CREATE TABLE ISO_639_5 (
	Uri           TEXT NOT NULL,
	Code          TEXT NOT NULL,
	Label_English TEXT NOT NULL,
	Label_French  TEXT NOT NULL
);
`

// The core cross-reference. Three branches:
//   - ISO 639-3 rows carry the full tuple; a part-1 code the change list has
//     since replaced is rewritten to its successor.
//   - ISO 639-5 rows are language groups: label and part-5 code only.
//   - ISO 639-2 codes absent from both parts 3 and 5 (anti-join) contribute a
//     pt1/pt2b/pt2t tuple; part 2T falls back to 2B, and only the first
//     semicolon segment of the English name is kept. Reserved ranges such as
//     qaa-qtz are excluded.
const coreQuery = `
WITH iso_639 AS (
	SELECT i3.Ref_Name AS name,
	       CASE WHEN dep.Change_To IS NOT NULL AND dep.Change_To != ''
	            THEN dep.Change_To ELSE i3.Part1 END AS pt1,
	       i3.Part2b AS pt2b,
	       i3.Part2t AS pt2t,
	       i3.Id AS pt3,
	       '' AS pt5
	FROM ISO_639_3 i3
	LEFT JOIN ISO_639_2_Changes dep
	       ON dep.Id = i3.Part1 AND LENGTH(dep.Id) = 2 AND i3.Part1 != ''
	UNION
	SELECT i5.Label_English, '', '', '', '', i5.Code
	FROM ISO_639_5 i5
	UNION
	SELECT CASE INSTR(i2.English_Name, ';') WHEN 0 THEN i2.English_Name
	            ELSE SUBSTR(i2.English_Name, 1, INSTR(i2.English_Name, ';') - 1)
	       END,
	       i2.Part1,
	       i2.Part2b,
	       CASE WHEN i2.Part2t = '' THEN i2.Part2b ELSE i2.Part2t END,
	       '',
	       ''
	FROM ISO_639_2 i2
	LEFT JOIN ISO_639_3 i3 ON i2.Part2b = i3.Part2b AND i3.Part2b != ''
	LEFT JOIN ISO_639_5 i5 ON i2.Part2b = i5.Code
	WHERE i3.Id IS NULL AND i5.Code IS NULL AND i2.Part2b NOT LIKE '%-%'
)
SELECT name, pt1, pt2b, pt2t, pt3, pt5 FROM iso_639 ORDER BY name, pt3, pt5
`

const macroQuery = `
SELECT M_Id, I_Id FROM ISO_639_3_Macrolanguages
WHERE I_Status = 'A'
ORDER BY M_Id, I_Id
`

// stage loads the parsed sources into the staging schema.
func stage(ctx context.Context, db *sql.DB, src *sources) error {
	if _, err := db.ExecContext(ctx, stagingSchema); err != nil {
		return errors.Wrap(err, "creating staging schema")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting staging transaction")
	}
	defer tx.Rollback()

	for _, r := range src.iso6392 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ISO_639_2 VALUES (?, ?, ?, ?, ?)`,
			r.Part2b, r.Part2t, r.Part1, r.EnglishName, r.FrenchName); err != nil {
			return errors.Wrap(err, "staging ISO 639-2")
		}
	}
	for _, r := range src.iso6392Changes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ISO_639_2_Changes VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.ChangeTo, r.EnglishName, r.FrenchName, r.Date, r.Category, r.Notes); err != nil {
			return errors.Wrap(err, "staging ISO 639-2 changes")
		}
	}
	for _, r := range src.iso6393 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ISO_639_3 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Part2b, r.Part2t, r.Part1, r.Scope, r.Type, r.RefName); err != nil {
			return errors.Wrap(err, "staging ISO 639-3")
		}
	}
	for _, r := range src.macrolanguages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ISO_639_3_Macrolanguages VALUES (?, ?, ?)`,
			r.MacroID, r.IndividualID, r.Status); err != nil {
			return errors.Wrap(err, "staging macrolanguages")
		}
	}
	for _, r := range src.iso6395 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ISO_639_5 VALUES (?, ?, ?, ?)`,
			r.URI, r.Code, r.LabelEnglish, r.LabelFrench); err != nil {
			return errors.Wrap(err, "staging ISO 639-5")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing staging transaction")
	}
	return nil
}

// coreRow is one language record from the core cross-reference.
type coreRow struct {
	Name, Pt1, Pt2b, Pt2t, Pt3, Pt5 string
}

// queryCore runs the core cross-reference and returns its rows.
func queryCore(ctx context.Context, db *sql.DB) ([]coreRow, error) {
	rows, err := db.QueryContext(ctx, coreQuery)
	if err != nil {
		return nil, errors.Wrap(err, "querying core cross-reference")
	}
	defer rows.Close()

	var out []coreRow
	for rows.Next() {
		var r coreRow
		if err := rows.Scan(&r.Name, &r.Pt1, &r.Pt2b, &r.Pt2t, &r.Pt3, &r.Pt5); err != nil {
			return nil, errors.Wrap(err, "scanning core row")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading core rows")
	}
	return out, nil
}

// queryMacro returns the active macrolanguage membership, both directions.
func queryMacro(ctx context.Context, db *sql.DB) (map[string][]string, map[string]string, error) {
	rows, err := db.QueryContext(ctx, macroQuery)
	if err != nil {
		return nil, nil, errors.Wrap(err, "querying macrolanguages")
	}
	defer rows.Close()

	macro := map[string][]string{}
	individual := map[string]string{}
	for rows.Next() {
		var mid, iid string
		if err := rows.Scan(&mid, &iid); err != nil {
			return nil, nil, errors.Wrap(err, "scanning macrolanguage row")
		}
		macro[mid] = append(macro[mid], iid)
		individual[iid] = mid
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading macrolanguage rows")
	}
	return macro, individual, nil
}
