package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n```json\n[1,2]\n```  ", "[1,2]"},
		{"fence without newline", "```json{\"a\":1}```", `{"a":1}`},
		{"inner backticks survive", "```json\n{\"code\":\"```\"}\n", "{\"code\":\"```\"}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}

func TestParseQuestions(t *testing.T) {
	t.Run("valid MCQ list", func(t *testing.T) {
		raw := "```json\n" + `[
			{"id":1,"question":"What is 2+2?","options":["3","4","5","6"],"correctAnswer":"4","type":"quantitative","difficulty":"easy"},
			{"id":2,"question":"Explain REST.","type":"technical","difficulty":"medium"}
		]` + "\n```"
		questions, err := ParseQuestions(raw)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.True(t, questions[0].IsMCQ())
		assert.False(t, questions[1].IsMCQ())
	})

	t.Run("empty list is structural", func(t *testing.T) {
		_, err := ParseQuestions("[]")
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		raw := `[{"id":1,"question":"a"},{"id":1,"question":"b"}]`
		_, err := ParseQuestions(raw)
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})

	t.Run("MCQ with three options rejected", func(t *testing.T) {
		raw := `[{"id":1,"question":"q","options":["a","b","c"],"correctAnswer":"a"}]`
		_, err := ParseQuestions(raw)
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})

	t.Run("correct answer not among options rejected", func(t *testing.T) {
		raw := `[{"id":1,"question":"q","options":["a","b","c","d"],"correctAnswer":"e"}]`
		_, err := ParseQuestions(raw)
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})

	t.Run("truncated JSON is structural", func(t *testing.T) {
		_, err := ParseQuestions(`[{"id":1,"question":"q"`)
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})
}

func TestParseResumeMatch(t *testing.T) {
	t.Run("valid analysis", func(t *testing.T) {
		raw := `{"matchScore":72,"strengths":["Go"],"gaps":["Kubernetes"],"recommendations":["Learn k8s"],"keySkillsMatched":["Go"],"keySkillsMissing":["k8s"]}`
		analysis, err := ParseResumeMatch(raw)
		require.NoError(t, err)
		assert.Equal(t, 72, analysis.MatchScore)
	})

	t.Run("score out of range is structural", func(t *testing.T) {
		_, err := ParseResumeMatch(`{"matchScore":140}`)
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})
}

func TestParseEvaluation(t *testing.T) {
	t.Run("valid evaluation", func(t *testing.T) {
		raw := "```json\n" + `{"score":7,"strengths":["clear"],"weaknesses":["shallow"],"missedPoints":["tradeoffs"],"improvedAnswer":"...","feedback":"decent"}` + "\n```"
		evaluation, err := ParseEvaluation(raw)
		require.NoError(t, err)
		assert.Equal(t, 7, evaluation.Score)
	})

	t.Run("score above ten rejected", func(t *testing.T) {
		_, err := ParseEvaluation(`{"score":11}`)
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})
}

func TestParseOptimizedResume(t *testing.T) {
	t.Run("missing name is structural", func(t *testing.T) {
		_, err := ParseOptimizedResume(`{"contactInfo":{"email":"a@b.c"},"summary":"s"}`)
		require.Error(t, err)
		assert.True(t, IsStructural(err))
	})

	t.Run("minimal valid resume", func(t *testing.T) {
		resume, err := ParseOptimizedResume(`{"contactInfo":{"name":"Ada"},"summary":"Engineer"}`)
		require.NoError(t, err)
		assert.Equal(t, "Ada", resume.ContactInfo.Name)
	})
}

func TestParseDiscussionResponse(t *testing.T) {
	response, err := ParseDiscussionResponse(`{"response":"Good point","followUpQuestion":"Why?"}`)
	require.NoError(t, err)
	assert.Equal(t, "Good point", response.Response)
	assert.NotNil(t, response.PointsMade)
	assert.Empty(t, response.PointsMade)
}
