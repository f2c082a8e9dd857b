package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionsPrompt(t *testing.T) {
	prompt := QuestionsPrompt("Quantitative Aptitude", "senior", 5)
	assert.Contains(t, prompt, "Quantitative Aptitude")
	assert.Contains(t, prompt, "senior")
	assert.Contains(t, prompt, "exactly 5")
}

func TestEvaluationPrompt(t *testing.T) {
	prompt := EvaluationPrompt("What is a goroutine?", "A lightweight thread.", "Backend Engineer")
	assert.Contains(t, prompt, "What is a goroutine?")
	assert.Contains(t, prompt, "A lightweight thread.")
	assert.Contains(t, prompt, "Backend Engineer")
}

func TestOptimizeResumePromptDefaults(t *testing.T) {
	prompt := OptimizeResumePrompt(UserProfile{Name: "Ada"}, "Platform Engineer")
	assert.Contains(t, prompt, "Ada")
	assert.Contains(t, prompt, "Platform Engineer")
	// Missing fields are replaced with stated defaults, never left blank.
	assert.Contains(t, prompt, "Current Role: Recent Graduate")
	assert.Contains(t, prompt, "Experience: Entry level")
	assert.Contains(t, prompt, "Skills: General skills")
}

func TestDiscussionResponsePrompt(t *testing.T) {
	history := []DiscussionTurn{
		{Speaker: SpeakerParticipant, Message: "AI will replace many jobs."},
		{Speaker: SpeakerAssistant, Message: "Which sectors do you mean?"},
	}
	prompt := DiscussionResponsePrompt("AI regulation", "I think regulation is needed.", history)
	assert.Contains(t, prompt, "AI regulation")
	assert.Contains(t, prompt, "I think regulation is needed.")
	assert.Contains(t, prompt, "Participant: AI will replace many jobs.")
	assert.Contains(t, prompt, "AI: Which sectors do you mean?")
}

func TestTranscript(t *testing.T) {
	assert.Equal(t, "", Transcript(nil))

	got := Transcript([]DiscussionTurn{
		{Speaker: SpeakerParticipant, Message: "hello"},
		{Speaker: SpeakerAssistant, Message: "hi"},
	})
	lines := strings.Split(got, "\n")
	assert.Equal(t, []string{"Participant: hello", "AI: hi"}, lines)
}
