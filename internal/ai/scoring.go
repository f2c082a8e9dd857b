package ai

import (
	"fmt"
	"math"
)

// CorrectThreshold is the score at and above which an answer counts as
// correct in aggregate reporting. It applies uniformly to MCQ (binary 0/10)
// and open-ended (graded 0-10) answers.
const CorrectThreshold = 8

// ScoreMCQ grades a multiple-choice answer by exact string equality with the
// correct answer. No provider call is involved; the result is fully
// deterministic.
func ScoreMCQ(submitted, correct string) *InterviewEvaluation {
	if submitted == correct {
		return &InterviewEvaluation{
			Score:          10,
			Strengths:      []string{"Selected the correct answer"},
			Weaknesses:     []string{},
			MissedPoints:   []string{},
			ImprovedAnswer: "Answer is correct",
			Feedback:       "Correct answer!",
		}
	}
	return &InterviewEvaluation{
		Score:          0,
		Strengths:      []string{},
		Weaknesses:     []string{fmt.Sprintf("Incorrect answer. Selected: %q", submitted)},
		MissedPoints:   []string{fmt.Sprintf("The correct answer is: %q", correct)},
		ImprovedAnswer: fmt.Sprintf("The correct answer is %q", correct),
		Feedback:       fmt.Sprintf("Incorrect. The correct answer is %q", correct),
	}
}

// Aggregate computes the summary statistics over a fully evaluated batch.
// Records must already be in original question order; correctness flags are
// recomputed from the threshold so the report stays internally consistent.
func Aggregate(records []EvaluationRecord) *AggregateReport {
	total := len(records)
	if total == 0 {
		return &AggregateReport{Evaluations: []EvaluationRecord{}}
	}

	correct := 0
	sum := 0
	for i := range records {
		records[i].IsCorrect = records[i].Evaluation.Score >= CorrectThreshold
		if records[i].IsCorrect {
			correct++
		}
		sum += records[i].Evaluation.Score
	}

	mean := float64(sum) / float64(total)
	return &AggregateReport{
		OverallScore:   int(math.Round(mean / 10 * 100)),
		AverageScore:   math.Round(mean*10) / 10,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Evaluations:    records,
	}
}
