package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfwise/finclinic/internal/batchfile"
	"github.com/gulfwise/finclinic/internal/catalog"
	"github.com/gulfwise/finclinic/internal/insight"
	"github.com/gulfwise/finclinic/internal/model"
	"github.com/gulfwise/finclinic/internal/scoring"
	"github.com/gulfwise/finclinic/internal/store"
)

func testAssessor(t *testing.T) *scoring.Assessor {
	t.Helper()
	return scoring.NewAssessor(catalog.MustDefault(), insight.MustDefaultMatrix(), 5)
}

func newBatchStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "batch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func batchRecord(value, children int) batchfile.Record {
	answers := make(model.AnswerSet)
	for _, q := range catalog.MustDefault().Questions() {
		answers[q.ID] = value
	}
	return batchfile.Record{
		Profile: model.Profile{
			IncomeBracket: model.Income20to30k,
			Nationality:   model.NationalityNonEmirati,
			Gender:        model.GenderMale,
			Children:      children,
		},
		Answers: answers,
	}
}

func TestProcessBatch_SavesSubmissions(t *testing.T) {
	ctx := context.Background()
	st := newBatchStore(t)

	records := []batchfile.Record{
		batchRecord(5, 2),
		batchRecord(1, 0),
		batchRecord(3, 1),
	}

	require.NoError(t, processBatch(ctx, records, 0, 2, testAssessor(t), st))

	subs, err := st.ListSubmissions(ctx, store.SubmissionFilter{})
	require.NoError(t, err)
	assert.Len(t, subs, 3)
}

func TestProcessBatch_Limit(t *testing.T) {
	ctx := context.Background()
	st := newBatchStore(t)

	records := []batchfile.Record{
		batchRecord(4, 1),
		batchRecord(4, 1),
		batchRecord(4, 1),
	}

	require.NoError(t, processBatch(ctx, records, 2, 1, testAssessor(t), st))

	subs, err := st.ListSubmissions(ctx, store.SubmissionFilter{})
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestProcessBatch_InvalidRecordDoesNotAbort(t *testing.T) {
	ctx := context.Background()
	st := newBatchStore(t)

	bad := batchRecord(3, 1)
	bad.Profile.Gender = "unknown"

	incomplete := batchRecord(3, 1)
	delete(incomplete.Answers, "fc_q1")

	records := []batchfile.Record{bad, incomplete, batchRecord(3, 1)}

	require.NoError(t, processBatch(ctx, records, 0, 2, testAssessor(t), st))

	subs, err := st.ListSubmissions(ctx, store.SubmissionFilter{})
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestProcessBatch_DryRun(t *testing.T) {
	records := []batchfile.Record{batchRecord(4, 1)}
	// Nil store means score-only.
	require.NoError(t, processBatch(context.Background(), records, 0, 1, testAssessor(t), nil))
}

func TestProcessBatch_NoRecords(t *testing.T) {
	require.NoError(t, processBatch(context.Background(), nil, 0, 4, testAssessor(t), nil))
}
