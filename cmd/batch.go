package main

import (
	"context"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gulfwise/finclinic/internal/batchfile"
	"github.com/gulfwise/finclinic/internal/model"
	"github.com/gulfwise/finclinic/internal/scoring"
	"github.com/gulfwise/finclinic/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Score a batch of assessments from a YAML or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		records, err := batchfile.Load(args[0])
		if err != nil {
			return err
		}

		revision, _ := cmd.Flags().GetString("revision")
		assessor, _, _, err := initAssessor(revision)
		if err != nil {
			return err
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		var st store.Store
		if !dryRun {
			st, err = initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
		}

		limit, _ := cmd.Flags().GetInt("limit")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		return processBatch(ctx, records, limit, concurrency, assessor, st)
	},
}

func init() {
	batchCmd.Flags().String("revision", "", "catalog revision to score against (default: active)")
	batchCmd.Flags().Int("limit", 0, "max number of records to process (0 = all)")
	batchCmd.Flags().Int("concurrency", 4, "max records scored concurrently")
	batchCmd.Flags().Bool("dry-run", false, "score without persisting submissions")
	rootCmd.AddCommand(batchCmd)
}

// processBatch applies limit, then scores records concurrently. A nil
// store means dry run. Individual record failures are logged, counted,
// and never abort the batch.
func processBatch(ctx context.Context, records []batchfile.Record, limit, concurrency int, assessor *scoring.Assessor, st store.Store) error {
	if len(records) == 0 {
		zap.L().Info("no records to process")
		return nil
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	zap.L().Info("processing batch",
		zap.Int("records", len(records)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for i, rec := range records {
		g.Go(func() error {
			log := zap.L().With(zap.Int("record", i+1))

			if err := rec.Profile.Validate(); err != nil {
				failed.Add(1)
				log.Error("invalid profile", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			result, violations := assessor.Assess(rec.Answers, rec.Profile)
			if err := scoring.ViolationsError(violations); err != nil {
				failed.Add(1)
				log.Error("invalid answers", zap.Error(err))
				return nil
			}

			if st != nil {
				sub := &model.Submission{
					ID:        uuid.New().String(),
					Profile:   rec.Profile,
					Answers:   rec.Answers,
					Result:    result,
					CreatedAt: time.Now().UTC(),
				}
				if err := st.SaveSubmission(gctx, sub); err != nil {
					failed.Add(1)
					log.Error("save submission", zap.Error(err))
					return nil
				}
			}

			succeeded.Add(1)
			log.Info("scored",
				zap.Float64("total", result.Overall.Total),
				zap.String("band", string(result.Overall.StatusBand)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
