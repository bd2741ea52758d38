// Package batchfile loads batch assessment input from YAML and XLSX
// files. Both formats carry the same per-row payload: a respondent
// profile plus one answer per question id.
package batchfile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/gulfwise/finclinic/internal/model"
)

// Record is one respondent's input: profile plus answers.
type Record struct {
	Profile model.Profile
	Answers model.AnswerSet
}

// Load dispatches on file extension.
func Load(path string) ([]Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, eris.Errorf("batchfile: unsupported extension %q", ext)
	}
}

type yamlProfile struct {
	IncomeBracket string `yaml:"income_bracket"`
	Nationality   string `yaml:"nationality"`
	Gender        string `yaml:"gender"`
	Children      int    `yaml:"children"`
}

type yamlRecord struct {
	Profile yamlProfile    `yaml:"profile"`
	Answers map[string]int `yaml:"answers"`
}

type yamlFile struct {
	Submissions []yamlRecord `yaml:"submissions"`
}

// LoadYAML reads records from a YAML file with a top-level submissions
// list.
func LoadYAML(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "batchfile: read %s", path)
	}

	var file yamlFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, eris.Wrapf(err, "batchfile: parse %s", path)
	}
	if len(file.Submissions) == 0 {
		return nil, eris.Errorf("batchfile: %s has no submissions", path)
	}

	records := make([]Record, len(file.Submissions))
	for i, yr := range file.Submissions {
		records[i] = Record{
			Profile: model.Profile{
				IncomeBracket: model.IncomeBracket(yr.Profile.IncomeBracket),
				Nationality:   yr.Profile.Nationality,
				Gender:        yr.Profile.Gender,
				Children:      yr.Profile.Children,
			},
			Answers: model.AnswerSet(yr.Answers),
		}
	}
	return records, nil
}

// Fixed profile column names for XLSX input. Remaining header columns
// are treated as question ids.
const (
	colIncomeBracket = "income_bracket"
	colNationality   = "nationality"
	colGender        = "gender"
	colChildren      = "children"
)

// LoadXLSX reads records from the first sheet of an XLSX workbook. The
// header row names the profile columns and one column per question id.
func LoadXLSX(path string) ([]Record, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, eris.Errorf("batchfile: %s has no data rows", path)
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{colIncomeBracket, colNationality, colGender, colChildren} {
		if _, ok := colIdx[required]; !ok {
			return nil, eris.Errorf("batchfile: %s missing column %q", path, required)
		}
	}

	var records []Record
	for n, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rec, err := rowToRecord(header, colIdx, row)
		if err != nil {
			return nil, eris.Wrapf(err, "batchfile: %s row %d", path, n+2)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, eris.Errorf("batchfile: %s has no data rows", path)
	}
	return records, nil
}

func rowToRecord(header []string, colIdx map[string]int, row []string) (Record, error) {
	cell := func(col string) string {
		i := colIdx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	children, err := strconv.Atoi(cell(colChildren))
	if err != nil {
		return Record{}, eris.Wrap(err, "parse children")
	}

	rec := Record{
		Profile: model.Profile{
			IncomeBracket: model.IncomeBracket(cell(colIncomeBracket)),
			Nationality:   cell(colNationality),
			Gender:        cell(colGender),
			Children:      children,
		},
		Answers: make(model.AnswerSet),
	}

	for i, name := range header {
		key := strings.TrimSpace(strings.ToLower(name))
		switch key {
		case colIncomeBracket, colNationality, colGender, colChildren, "":
			continue
		}
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			continue // unanswered; validation decides whether that matters
		}
		value, err := strconv.Atoi(strings.TrimSpace(row[i]))
		if err != nil {
			return Record{}, eris.Wrapf(err, "parse answer %s", key)
		}
		rec.Answers[key] = value
	}
	return rec, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
