package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"

	"github.com/gulfwise/finclinic/internal/model"
	"github.com/gulfwise/finclinic/internal/store"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Inspect stored assessment submissions",
	Long:  "Commands for listing, viewing, and exporting scored submissions.",
}

// -- submissions list --

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		band, _ := cmd.Flags().GetString("band")
		limit, _ := cmd.Flags().GetInt("limit")

		subs, err := st.ListSubmissions(ctx, store.SubmissionFilter{
			Band:  model.StatusBand(band),
			Limit: limit,
		})
		if err != nil {
			return eris.Wrap(err, "submissions list")
		}

		if len(subs) == 0 {
			fmt.Fprintln(os.Stderr, "No submissions found.")
			return nil
		}

		formatSubmissionsList(os.Stdout, subs)
		return nil
	},
}

// -- submissions show --

var submissionsShowCmd = &cobra.Command{
	Use:   "show <submission-id>",
	Short: "Show full details of a submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		sub, err := st.GetSubmission(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "submissions show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sub)
	},
}

// -- submissions export --

var submissionsExportCmd = &cobra.Command{
	Use:   "export <output-file>",
	Short: "Export submissions to CSV or XLSX",
	Long:  "Exports stored submissions to a flat file. Format is chosen by the output extension (.csv or .xlsx).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		band, _ := cmd.Flags().GetString("band")
		limit, _ := cmd.Flags().GetInt("limit")

		subs, err := st.ListSubmissions(ctx, store.SubmissionFilter{
			Band:  model.StatusBand(band),
			Limit: limit,
		})
		if err != nil {
			return eris.Wrap(err, "submissions export")
		}
		if len(subs) == 0 {
			return eris.New("submissions export: nothing to export")
		}

		out := args[0]
		switch {
		case strings.HasSuffix(out, ".csv"):
			err = exportCSV(out, subs)
		case strings.HasSuffix(out, ".xlsx"):
			err = exportXLSX(out, subs)
		default:
			return eris.Errorf("submissions export: unsupported output extension for %s", out)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Exported %d submissions to %s\n", len(subs), out)
		return nil
	},
}

func init() {
	submissionsListCmd.Flags().String("band", "", "filter by status band (At Risk, Needs Improvement, Good, Excellent)")
	submissionsListCmd.Flags().Int("limit", 50, "max number of submissions to display")

	submissionsExportCmd.Flags().String("band", "", "filter by status band")
	submissionsExportCmd.Flags().Int("limit", 10000, "max number of submissions to export")

	submissionsCmd.AddCommand(submissionsListCmd)
	submissionsCmd.AddCommand(submissionsShowCmd)
	submissionsCmd.AddCommand(submissionsExportCmd)
	rootCmd.AddCommand(submissionsCmd)
}

// formatSubmissionsList writes a tabular list of submissions to w.
func formatSubmissionsList(out io.Writer, subs []model.Submission) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTOTAL\tBAND\tCHILDREN\tINCOME\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t-----\t----\t--------\t------\t-------")

	for _, sub := range subs {
		total, band := "", ""
		if sub.Result != nil {
			total = fmt.Sprintf("%.2f", sub.Result.Overall.Total)
			band = string(sub.Result.Overall.StatusBand)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			truncateID(sub.ID),
			total,
			band,
			sub.Profile.Children,
			sub.Profile.IncomeBracket,
			sub.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// exportHeader is the flat-file column layout shared by CSV and XLSX.
func exportHeader() []string {
	header := []string{"id", "created_at", "income_bracket", "nationality", "gender", "children", "total", "status_band"}
	for _, cat := range model.Categories() {
		header = append(header, string(cat))
	}
	return header
}

// exportRow flattens one submission into the export column layout.
func exportRow(sub model.Submission) []string {
	row := []string{
		sub.ID,
		sub.CreatedAt.Format(time.RFC3339),
		string(sub.Profile.IncomeBracket),
		sub.Profile.Nationality,
		sub.Profile.Gender,
		strconv.Itoa(sub.Profile.Children),
	}
	if sub.Result != nil {
		row = append(row,
			fmt.Sprintf("%.2f", sub.Result.Overall.Total),
			string(sub.Result.Overall.StatusBand),
		)
		for _, cat := range model.Categories() {
			if cs, ok := sub.Result.CategoryScores[cat]; ok {
				row = append(row, fmt.Sprintf("%.2f", cs.Percentage))
			} else {
				row = append(row, "")
			}
		}
	} else {
		row = append(row, "", "")
		for range model.Categories() {
			row = append(row, "")
		}
	}
	return row
}

func exportCSV(path string, subs []model.Submission) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader()); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, sub := range subs {
		if err := w.Write(exportRow(sub)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "export: flush csv")
}

func exportXLSX(path string, subs []model.Submission) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("submissions")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	writeRow := func(values []string) {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().Value = v
		}
	}

	writeRow(exportHeader())
	for _, sub := range subs {
		writeRow(exportRow(sub))
	}

	return eris.Wrapf(f.Save(path), "export: save %s", path)
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
