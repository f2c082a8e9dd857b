package ai

import (
	"encoding/json"
	"strings"
)

// StripFences removes a single leading "```json" or "```" fence and a single
// trailing "```" fence from raw model output, tolerating a trailing newline
// on either marker. Nothing else is repaired; anything still unparseable
// after this is a structural failure.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
		clean = strings.TrimPrefix(clean, "\n")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		clean = strings.TrimPrefix(clean, "\n")
	}
	if strings.HasSuffix(clean, "```") {
		clean = strings.TrimSuffix(clean, "```")
		clean = strings.TrimSuffix(clean, "\n")
	}
	return strings.TrimSpace(clean)
}

func decodeJSON(raw string, out any) error {
	clean := StripFences(raw)
	if clean == "" {
		return newStructuralError("empty response", nil)
	}
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return newStructuralError("invalid JSON", err)
	}
	return nil
}

// ParseQuestions decodes generated interview questions and enforces the MCQ
// invariants: at least one question, four options per MCQ and the correct
// answer present among the options exactly once.
func ParseQuestions(raw string) ([]InterviewQuestion, error) {
	var questions []InterviewQuestion
	if err := decodeJSON(raw, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, newStructuralError("no questions in response", nil)
	}
	seen := make(map[int]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if q.Question == "" {
			return nil, newStructuralError("question text is empty", nil)
		}
		if q.ID < 1 || seen[q.ID] {
			return nil, newStructuralError("question ids must be unique and >= 1", nil)
		}
		seen[q.ID] = true
		if q.CorrectAnswer != "" {
			if len(q.Options) != 4 {
				return nil, newStructuralError("MCQ must carry exactly 4 options", nil)
			}
			matches := 0
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					matches++
				}
			}
			if matches != 1 {
				return nil, newStructuralError("correct answer must appear among the options exactly once", nil)
			}
		}
	}
	return questions, nil
}

// ParseResumeMatch decodes an ATS analysis and checks the score range.
func ParseResumeMatch(raw string) (*ResumeMatchAnalysis, error) {
	var analysis ResumeMatchAnalysis
	if err := decodeJSON(raw, &analysis); err != nil {
		return nil, err
	}
	if analysis.MatchScore < 0 || analysis.MatchScore > 100 {
		return nil, newStructuralError("match score out of range", nil)
	}
	return &analysis, nil
}

// ParseOptimizedResume decodes a generated resume. Contact info and summary
// are required; a resume without them is unusable.
func ParseOptimizedResume(raw string) (*OptimizedResume, error) {
	var resume OptimizedResume
	if err := decodeJSON(raw, &resume); err != nil {
		return nil, err
	}
	if resume.ContactInfo.Name == "" || resume.Summary == "" {
		return nil, newStructuralError("resume is missing contact info or summary", nil)
	}
	return &resume, nil
}

// ParseEvaluation decodes a graded answer and checks the score range.
func ParseEvaluation(raw string) (*InterviewEvaluation, error) {
	var evaluation InterviewEvaluation
	if err := decodeJSON(raw, &evaluation); err != nil {
		return nil, err
	}
	if evaluation.Score < 0 || evaluation.Score > 10 {
		return nil, newStructuralError("evaluation score out of range", nil)
	}
	return &evaluation, nil
}

// ParseCareerAdvice decodes counselor output; advice must not be empty.
func ParseCareerAdvice(raw string) (*CareerAdvice, error) {
	var advice CareerAdvice
	if err := decodeJSON(raw, &advice); err != nil {
		return nil, err
	}
	if len(advice.Advice) == 0 {
		return nil, newStructuralError("career advice is empty", nil)
	}
	return &advice, nil
}

// ParseDiscussionTopic decodes a generated discussion topic.
func ParseDiscussionTopic(raw string) (*DiscussionTopic, error) {
	var topic DiscussionTopic
	if err := decodeJSON(raw, &topic); err != nil {
		return nil, err
	}
	if topic.Topic == "" {
		return nil, newStructuralError("discussion topic is empty", nil)
	}
	return &topic, nil
}

// ParseDiscussionResponse decodes one assistant discussion turn.
func ParseDiscussionResponse(raw string) (*DiscussionResponse, error) {
	var response DiscussionResponse
	if err := decodeJSON(raw, &response); err != nil {
		return nil, err
	}
	if response.Response == "" {
		return nil, newStructuralError("discussion response is empty", nil)
	}
	if response.PointsMade == nil {
		response.PointsMade = []string{}
	}
	return &response, nil
}
