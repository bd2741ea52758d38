package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gulfwise/finclinic/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the active question catalog",
	Long: `Prints the question catalog: id, category, weight, and text for
each question. A respondent without children is not asked the
conditional question; pass --children 0 to see their view.`,
	RunE: runCatalog,
}

func init() {
	f := catalogCmd.Flags()
	f.String("revision", "", "catalog revision to print (default: active)")
	f.Int("children", -1, "filter questions for a respondent with this many children (-1 = all)")
	f.Bool("arabic", false, "print Arabic question text")
	f.String("format", "table", "output format: table or json")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	children, _ := cmd.Flags().GetInt("children")
	arabic, _ := cmd.Flags().GetBool("arabic")
	format, _ := cmd.Flags().GetString("format")
	revision, _ := cmd.Flags().GetString("revision")

	reg, err := initRegistry()
	if err != nil {
		return err
	}
	cat, err := catalogFor(reg, revision)
	if err != nil {
		return err
	}

	questions := cat.Questions()
	if children >= 0 {
		questions = cat.QuestionsFor(children)
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"revision":  cat.Revision(),
			"questions": questions,
		})
	}

	formatCatalog(os.Stdout, cat.Revision(), questions, arabic)
	return nil
}

func formatCatalog(out io.Writer, revision string, questions []catalog.Question, arabic bool) {
	fmt.Fprintf(out, "Catalog revision: %s\n\n", revision)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tID\tCATEGORY\tWEIGHT\tTEXT")
	_, _ = fmt.Fprintln(w, "-\t--\t--------\t------\t----")

	for _, q := range questions {
		text := q.Text
		if arabic && q.TextAr != "" {
			text = q.TextAr
		}
		if r := []rune(text); len(r) > 60 {
			text = string(r[:57]) + "..."
		}
		marker := ""
		if q.Conditional {
			marker = " *"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s%s\n",
			q.Number, q.ID, q.Category, q.Weight, text, marker)
	}
	_ = w.Flush()
}
