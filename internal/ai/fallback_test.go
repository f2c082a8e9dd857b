package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuestions(t *testing.T) {
	t.Run("quantitative roles get the quantitative bank", func(t *testing.T) {
		questions := FallbackQuestions("Quantitative Aptitude", 3)
		require.Len(t, questions, 3)
		for _, q := range questions {
			assert.Equal(t, CategoryQuantitative, q.Type)
			assert.Len(t, q.Options, 4)
			assert.Contains(t, q.Options, q.CorrectAnswer)
		}
	})

	t.Run("verbal roles get the verbal bank", func(t *testing.T) {
		questions := FallbackQuestions("Verbal Ability - English", 2)
		require.Len(t, questions, 2)
		for _, q := range questions {
			assert.Equal(t, CategoryVerbal, q.Type)
		}
	})

	t.Run("other roles get the generic bank with the role substituted", func(t *testing.T) {
		questions := FallbackQuestions("Backend Engineer", 5)
		require.Len(t, questions, 5)
		found := false
		for _, q := range questions {
			if strings.Contains(q.Question, "Backend Engineer") {
				found = true
			}
			assert.NotContains(t, q.Question, "%s")
		}
		assert.True(t, found, "role name should be substituted into the bank")
	})

	t.Run("count beyond the bank is capped", func(t *testing.T) {
		questions := FallbackQuestions("math tutor", 50)
		assert.Len(t, questions, 5)
	})

	t.Run("returned options are copies", func(t *testing.T) {
		first := FallbackQuestions("math", 1)
		first[0].Options[0] = "tampered"
		second := FallbackQuestions("math", 1)
		assert.NotEqual(t, "tampered", second[0].Options[0])
	})
}

func TestFallbackTopic(t *testing.T) {
	for i := 0; i < 10; i++ {
		topic := FallbackTopic()
		require.NotNil(t, topic)
		assert.NotEmpty(t, topic.Topic)
		assert.NotEmpty(t, topic.KeyPoints)
	}
}

func TestFallbackDiscussionReply(t *testing.T) {
	reply := FallbackDiscussionReply()
	require.NotNil(t, reply)
	assert.NotEmpty(t, reply.Response)
	assert.NotNil(t, reply.PointsMade)
}

func TestTemplateResume(t *testing.T) {
	profile := UserProfile{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Skills: []string{"Go", "SQL", "Docker"},
	}
	resume := TemplateResume(profile, "Backend Engineer")
	require.NotNil(t, resume)
	assert.Equal(t, "Ada Lovelace", resume.ContactInfo.Name)
	assert.NotEmpty(t, resume.Summary)
	assert.Contains(t, resume.Summary, "Backend Engineer")

	// Deterministic: same input, same output.
	again := TemplateResume(profile, "Backend Engineer")
	assert.Equal(t, resume, again)
}
