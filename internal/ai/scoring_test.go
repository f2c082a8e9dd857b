package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMCQ(t *testing.T) {
	t.Run("exact match scores ten", func(t *testing.T) {
		evaluation := ScoreMCQ("42", "42")
		assert.Equal(t, 10, evaluation.Score)
		assert.Equal(t, []string{"Selected the correct answer"}, evaluation.Strengths)
	})

	t.Run("mismatch scores zero and cites the correct answer", func(t *testing.T) {
		evaluation := ScoreMCQ("41", "42")
		assert.Equal(t, 0, evaluation.Score)
		assert.Contains(t, evaluation.Feedback, `"42"`)
		assert.Contains(t, evaluation.MissedPoints[0], `"42"`)
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		evaluation := ScoreMCQ("paris", "Paris")
		assert.Equal(t, 0, evaluation.Score)
	})
}

func TestAggregate(t *testing.T) {
	record := func(score int) EvaluationRecord {
		return EvaluationRecord{Evaluation: &InterviewEvaluation{Score: score}}
	}

	t.Run("empty batch", func(t *testing.T) {
		report := Aggregate(nil)
		assert.Equal(t, 0, report.OverallScore)
		assert.Equal(t, 0.0, report.AverageScore)
		assert.NotNil(t, report.Evaluations)
	})

	t.Run("all correct MCQ batch", func(t *testing.T) {
		report := Aggregate([]EvaluationRecord{record(10)})
		assert.Equal(t, 100, report.OverallScore)
		assert.Equal(t, 10.0, report.AverageScore)
		assert.Equal(t, 1, report.CorrectAnswers)
		assert.Equal(t, 1, report.TotalQuestions)
	})

	t.Run("threshold boundary", func(t *testing.T) {
		report := Aggregate([]EvaluationRecord{record(8), record(7)})
		assert.Equal(t, 1, report.CorrectAnswers)
		assert.True(t, report.Evaluations[0].IsCorrect)
		assert.False(t, report.Evaluations[1].IsCorrect)
	})

	t.Run("mean is rounded", func(t *testing.T) {
		report := Aggregate([]EvaluationRecord{record(7), record(8), record(8)})
		// mean 7.666... -> overall 77, average 7.7
		assert.Equal(t, 77, report.OverallScore)
		assert.Equal(t, 7.7, report.AverageScore)
		assert.Equal(t, 2, report.CorrectAnswers)
		assert.Equal(t, 3, report.TotalQuestions)
	})

	t.Run("correctness flags are recomputed", func(t *testing.T) {
		stale := record(2)
		stale.IsCorrect = true
		report := Aggregate([]EvaluationRecord{stale})
		require.Len(t, report.Evaluations, 1)
		assert.False(t, report.Evaluations[0].IsCorrect)
	})
}
