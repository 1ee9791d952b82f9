package qc_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/qc"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewChecklist = qc.Checklist{
	{Name: "spelling", Passed: true},
	{Name: "tone", Passed: false},
	{Name: "personalization", Passed: true},
}

func TestNewRecord(t *testing.T) {
	t.Run("captures_review_outcome", func(t *testing.T) {
		orderID := kernel.NewUUID()
		writerID := kernel.NewUUID()
		reviewerID := kernel.NewUUID()

		record, err := qc.NewRecord(
			kernel.NewUUID(),
			orderID,
			writerID,
			reviewerID,
			qc.ResultRejected,
			reviewChecklist,
			"tone is off, rewrite the second stanza",
			time.Now(),
		)

		require.NoError(t, err)
		assert.True(t, record.OrderID().IsEqual(orderID))
		assert.True(t, record.WriterID().IsEqual(writerID))
		assert.True(t, record.ReviewerID().IsEqual(reviewerID))
		assert.Equal(t, qc.ResultRejected, record.Result())
		assert.Equal(t, []string{"spelling", "personalization"}, record.Checklist().Passed())
		assert.Equal(t, []string{"tone"}, record.Checklist().Failed())
	})

	t.Run("rework_verdicts_require_comments", func(t *testing.T) {
		for _, result := range []qc.Result{qc.ResultRejected, qc.ResultChangesRequested} {
			_, err := qc.NewRecord(
				kernel.NewUUID(),
				kernel.NewUUID(),
				kernel.NewUUID(),
				kernel.NewUUID(),
				result,
				reviewChecklist,
				"   ",
				time.Now(),
			)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("approval_needs_no_comments", func(t *testing.T) {
		record, err := qc.NewRecord(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			qc.ResultApproved,
			reviewChecklist,
			"",
			time.Now(),
		)

		require.NoError(t, err)
		assert.Empty(t, record.Comments())
	})

	t.Run("checklist_rejects_duplicate_checks", func(t *testing.T) {
		_, err := qc.NewRecord(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			qc.ResultApproved,
			qc.Checklist{{Name: "spelling", Passed: true}, {Name: "spelling", Passed: false}},
			"",
			time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_record_fails_validation", func(t *testing.T) {
		var record qc.Record

		require.ErrorIs(t, record.Validate(), qc.ErrRecordIsNotConstructed)
	})
}

func TestResult_RequiresRework(t *testing.T) {
	assert.False(t, qc.ResultApproved.RequiresRework())
	assert.True(t, qc.ResultRejected.RequiresRework())
	assert.True(t, qc.ResultChangesRequested.RequiresRework())
}

func TestChecklistFromNames(t *testing.T) {
	checklist := qc.ChecklistFromNames(
		[]string{"spelling", "personalization"},
		[]string{"tone"},
	)

	assert.Equal(t, []string{"spelling", "personalization"}, checklist.Passed())
	assert.Equal(t, []string{"tone"}, checklist.Failed())
	require.NoError(t, checklist.Validate())
}

func TestResultFromString(t *testing.T) {
	for _, result := range []qc.Result{
		qc.ResultApproved,
		qc.ResultRejected,
		qc.ResultChangesRequested,
	} {
		parsed, err := qc.ResultFromString(result.String())
		require.NoError(t, err)
		assert.Equal(t, result, parsed)
	}

	_, err := qc.ResultFromString("pending")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
