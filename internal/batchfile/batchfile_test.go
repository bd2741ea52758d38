package batchfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/gulfwise/finclinic/internal/model"
)

const batchYAML = `
submissions:
  - profile:
      income_bracket: 10000_20000
      nationality: Non-Emirati
      gender: Male
      children: 2
    answers:
      fc_q1: 3
      fc_q2: 4
  - profile:
      income_bracket: above_75000
      nationality: Emirati
      gender: Female
      children: 0
    answers:
      fc_q1: 5
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	records, err := LoadYAML(writeTemp(t, "batch.yaml", batchYAML))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, model.Income10to20k, records[0].Profile.IncomeBracket)
	assert.Equal(t, 2, records[0].Profile.Children)
	assert.Equal(t, model.AnswerSet{"fc_q1": 3, "fc_q2": 4}, records[0].Answers)

	assert.Equal(t, model.NationalityEmirati, records[1].Profile.Nationality)
	assert.Equal(t, model.GenderFemale, records[1].Profile.Gender)
	assert.Equal(t, 0, records[1].Profile.Children)
}

func TestLoadYAML_Empty(t *testing.T) {
	_, err := LoadYAML(writeTemp(t, "empty.yaml", "submissions: []"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no submissions")
}

func TestLoad_Dispatch(t *testing.T) {
	_, err := Load("records.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")

	records, err := Load(writeTemp(t, "batch.yml", batchYAML))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func writeTestXLSX(t *testing.T, header []string, rows [][]string) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("responses")
	require.NoError(t, err)

	add := func(values []string) {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().Value = v
		}
	}
	add(header)
	for _, r := range rows {
		add(r)
	}

	path := filepath.Join(t.TempDir(), "batch.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	header := []string{"income_bracket", "nationality", "gender", "children", "fc_q1", "fc_q2"}
	path := writeTestXLSX(t, header, [][]string{
		{"20000_30000", "Emirati", "Female", "1", "4", "2"},
		{"below_5000", "Non-Emirati", "Male", "0", "1", ""},
	})

	records, err := LoadXLSX(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, model.Income20to30k, records[0].Profile.IncomeBracket)
	assert.Equal(t, 1, records[0].Profile.Children)
	assert.Equal(t, model.AnswerSet{"fc_q1": 4, "fc_q2": 2}, records[0].Answers)

	// Blank answer cells are simply absent from the answer set.
	assert.Equal(t, model.AnswerSet{"fc_q1": 1}, records[1].Answers)
}

func TestLoadXLSX_MissingProfileColumn(t *testing.T) {
	path := writeTestXLSX(t,
		[]string{"income_bracket", "nationality", "gender", "fc_q1"},
		[][]string{{"below_5000", "Emirati", "Male", "3"}},
	)

	_, err := LoadXLSX(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "children"`)
}

func TestLoadXLSX_BadAnswerValue(t *testing.T) {
	header := []string{"income_bracket", "nationality", "gender", "children", "fc_q1"}
	path := writeTestXLSX(t, header, [][]string{
		{"below_5000", "Emirati", "Male", "0", "often"},
	})

	_, err := LoadXLSX(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadXLSX_SkipsEmptyRows(t *testing.T) {
	header := []string{"income_bracket", "nationality", "gender", "children", "fc_q1"}
	rows := [][]string{
		{"below_5000", "Emirati", "Male", "0", "3"},
		{"", "", "", "", ""},
	}
	path := writeTestXLSX(t, header, rows)

	records, err := LoadXLSX(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Profile.Children)
}
