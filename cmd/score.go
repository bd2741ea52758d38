package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/gulfwise/finclinic/internal/batchfile"
	"github.com/gulfwise/finclinic/internal/model"
	"github.com/gulfwise/finclinic/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single assessment",
	Long: `Scores one respondent's answers against the active catalog and
prints the per-category breakdown, overall band, and selected insights.

Input comes from a file (--input, first record of a YAML or XLSX batch
file) or from flags.

Examples:
  # Score from a file
  score --input respondent.yaml

  # Score from flags
  score --income 20000_30000 --nationality Emirati --gender Female --children 2 \
        --answers fc_q1=3,fc_q2=4,fc_q3=2,...

  # Persist the result to the submission store
  score --input respondent.yaml --save`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("input", "", "YAML or XLSX file; the first record is scored")
	f.String("income", "", "income bracket label (e.g. 20000_30000)")
	f.String("nationality", "", "Emirati or Non-Emirati")
	f.String("gender", "", "Male or Female")
	f.Int("children", 0, "number of children")
	f.String("answers", "", "comma-separated question=value pairs")
	f.String("revision", "", "catalog revision to score against (default: active)")
	f.String("format", "table", "output format: table or json")
	f.Bool("save", false, "save the result to the submission store")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rec, err := scoreInput(cmd)
	if err != nil {
		return err
	}
	if err := rec.Profile.Validate(); err != nil {
		return err
	}

	revision, _ := cmd.Flags().GetString("revision")
	assessor, _, _, err := initAssessor(revision)
	if err != nil {
		return err
	}

	result, violations := assessor.Assess(rec.Answers, rec.Profile)
	if err := scoring.ViolationsError(violations); err != nil {
		return err
	}

	save, _ := cmd.Flags().GetBool("save")
	if save {
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		sub := &model.Submission{
			ID:        uuid.New().String(),
			Profile:   rec.Profile,
			Answers:   rec.Answers,
			Result:    result,
			CreatedAt: time.Now().UTC(),
		}
		if err := st.SaveSubmission(ctx, sub); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved submission %s\n", sub.ID)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	formatResult(os.Stdout, result)
	return nil
}

// scoreInput builds the record to score from --input or from flags.
func scoreInput(cmd *cobra.Command) (batchfile.Record, error) {
	if input, _ := cmd.Flags().GetString("input"); input != "" {
		records, err := batchfile.Load(input)
		if err != nil {
			return batchfile.Record{}, err
		}
		return records[0], nil
	}

	income, _ := cmd.Flags().GetString("income")
	nationality, _ := cmd.Flags().GetString("nationality")
	gender, _ := cmd.Flags().GetString("gender")
	children, _ := cmd.Flags().GetInt("children")
	rawAnswers, _ := cmd.Flags().GetString("answers")

	answers, err := parseAnswers(rawAnswers)
	if err != nil {
		return batchfile.Record{}, err
	}

	return batchfile.Record{
		Profile: model.Profile{
			IncomeBracket: model.IncomeBracket(income),
			Nationality:   nationality,
			Gender:        gender,
			Children:      children,
		},
		Answers: answers,
	}, nil
}

// parseAnswers parses "fc_q1=3,fc_q2=4" into an answer set.
func parseAnswers(raw string) (model.AnswerSet, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, eris.New("score: no answers given, use --input or --answers")
	}

	answers := make(model.AnswerSet)
	for _, pair := range strings.Split(raw, ",") {
		id, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, eris.Errorf("score: malformed answer pair %q", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, eris.Wrapf(err, "score: answer %s", id)
		}
		answers[strings.TrimSpace(id)] = n
	}
	return answers, nil
}

// formatResult writes the scored assessment as a table.
func formatResult(out io.Writer, result *model.AssessmentResult) {
	fmt.Fprintf(out, "Overall: %.2f / 100  (%s)\n\n", result.Overall.Total, result.Overall.StatusBand)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tPOINTS\tPCT\tCONTRIB\tSTATUS")
	_, _ = fmt.Fprintln(w, "--------\t------\t---\t-------\t------")
	for _, cat := range model.Categories() {
		cs, ok := result.CategoryScores[cat]
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%.0f/%.0f\t%.1f%%\t%.2f\t%s\n",
			cs.Category, cs.ActualPoints, cs.MaxPoints, cs.Percentage, cs.Contribution, cs.StatusLevel)
	}
	_ = w.Flush()

	if len(result.Insights) > 0 {
		fmt.Fprintln(out, "\nInsights:")
		for i, ins := range result.Insights {
			fmt.Fprintf(out, "  %d. [%s] %s\n", i+1, ins.Category, ins.Text)
		}
	}
}
