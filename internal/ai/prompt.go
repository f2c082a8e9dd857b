package ai

import (
	"fmt"
	"strings"
)

// Prompt builders. Every function here is a pure mapping from typed inputs to
// prompt text: no I/O, no randomness, same input always yields the same
// prompt. The templates ask for raw JSON matching the types in types.go.

// QuestionsPrompt builds the MCQ generation prompt for a role and experience
// level.
func QuestionsPrompt(jobRole, experienceLevel string, count int) string {
	return fmt.Sprintf(`You are a professional interviewer conducting a real-world industry interview for a %s %s position.

CRITICAL: Generate MULTIPLE CHOICE QUESTIONS (MCQ) that match the EXACT job role type:
- If role contains "Quantitative Aptitude" or "Math": Generate ONLY mathematical, numerical reasoning, and logic MCQs
- If role contains "Verbal Ability" or "English": Generate ONLY grammar, vocabulary, comprehension MCQs
- If role contains "Technical": Generate coding, algorithms, system design MCQs
- If role contains "HR" or "Behavioral": Generate behavioral, situational, personality MCQs
- If role contains "Group Discussion": Generate leadership, communication, teamwork MCQs

Generate exactly %d MULTIPLE CHOICE interview questions.

EXAMPLES for different roles:
Quantitative Aptitude:
{
  "id": 1,
  "question": "A train 150 meters long crosses a platform in 15 seconds. If the speed of the train is 90 km/h, what is the length of the platform?",
  "options": ["225 meters", "250 meters", "275 meters", "300 meters"],
  "correctAnswer": "225 meters",
  "type": "quantitative",
  "difficulty": "medium",
  "expectedAnswer": "Calculate using: Platform length = (Speed x Time) - Train length"
}

Verbal Ability:
{
  "id": 1,
  "question": "Choose the correct synonym for 'METICULOUS':",
  "options": ["Careless", "Precise", "Simple", "Harsh"],
  "correctAnswer": "Precise",
  "type": "verbal",
  "difficulty": "easy",
  "expectedAnswer": "Meticulous means showing great attention to detail; being precise."
}

Requirements:
- Professional interviewer tone
- Real-world industry questions (not generic or theoretical)
- Appropriate difficulty for %s level
- Exactly 4 options (A, B, C, D) for each question
- One clearly correct answer
- Return ONLY valid JSON array format

Format each question as:
{
  "id": <number>,
  "question": "<question text>",
  "options": ["option1", "option2", "option3", "option4"],
  "correctAnswer": "<one of the options that is correct>",
  "type": "technical|behavioral|situational|quantitative|verbal|general",
  "difficulty": "easy|medium|hard",
  "expectedAnswer": "<brief explanation of correct answer>"
}

Return JSON array: [question1, question2, ...]`, experienceLevel, jobRole, count, experienceLevel)
}

// ResumeMatchPrompt builds the ATS comparison prompt. Resume and job
// description are embedded verbatim.
func ResumeMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) analyzer. Evaluate how well this resume matches the job description using realistic, industry-standard criteria.

RESUME:
%s

JOB DESCRIPTION:
%s

Perform a comprehensive, ATS-friendly analysis and return results in JSON format:
{
  "matchScore": <0-100 realistic score based on actual skill and experience alignment>,
  "strengths": [<3-5 specific strengths where resume aligns with job requirements>],
  "gaps": [<3-5 specific qualifications or experiences the candidate lacks>],
  "recommendations": [<3-5 actionable improvement suggestions to increase match score>],
  "keySkillsMatched": [<specific technical and soft skills from resume that match job requirements>],
  "keySkillsMissing": [<required skills from job description not found in resume>]
}

Rules:
- Be ATS friendly: Focus on exact keyword matches and quantifiable achievements
- Evaluate skills realistically: Don't inflate scores; assess actual competency indicators
- Consider years of experience, education level, and certification requirements
- Identify transferable skills but note direct experience gaps
- Prioritize hard requirements over nice-to-haves

Return ONLY valid JSON format.`, resumeText, jobDescription)
}

// OptimizeResumePrompt builds the resume-builder prompt from a candidate
// profile. Optional profile fields fall back to the stated defaults so the
// template always renders complete candidate information.
func OptimizeResumePrompt(profile UserProfile, targetRole string) string {
	skillsList := strings.Join(profile.Skills, ", ")
	if skillsList == "" {
		skillsList = "General skills"
	}
	achievementsList := strings.Join(profile.Achievements, "; ")
	if achievementsList == "" {
		achievementsList = "Various achievements"
	}
	projectsList := strings.Join(profile.Projects, "; ")
	if projectsList == "" {
		projectsList = "Personal projects"
	}

	location := "Not provided"
	if profile.City != "" && profile.State != "" {
		location = profile.City + ", " + profile.State
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional resume writer. Create a complete, ATS-optimized resume for %s applying for a %s position.\n\n", profile.Name, targetRole)
	b.WriteString("CANDIDATE INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "- Email: %s\n", orDefault(profile.Email, "Not provided"))
	fmt.Fprintf(&b, "- Phone: %s\n", orDefault(profile.Phone, "Not provided"))
	fmt.Fprintf(&b, "- Location: %s\n", location)
	fmt.Fprintf(&b, "- LinkedIn: %s\n", orDefault(profile.LinkedIn, "Not provided"))
	fmt.Fprintf(&b, "- GitHub: %s\n", orDefault(profile.GitHub, "Not provided"))
	fmt.Fprintf(&b, "- Current Role: %s\n", orDefault(profile.CurrentRole, "Recent Graduate"))
	fmt.Fprintf(&b, "- Company: %s\n", orDefault(profile.CompanyName, "Not provided"))
	fmt.Fprintf(&b, "- Experience: %s\n", orDefault(profile.Experience, "Entry level"))
	fmt.Fprintf(&b, "- Education: %s\n", orDefault(profile.Education, "Bachelor Degree in Computer Science"))
	fmt.Fprintf(&b, "- University: %s\n", orDefault(profile.UniversityName, "Not provided"))
	fmt.Fprintf(&b, "- GPA: %s\n", orDefault(profile.GPA, "Not provided"))
	fmt.Fprintf(&b, "- Skills: %s\n", skillsList)
	fmt.Fprintf(&b, "- Achievements: %s\n", achievementsList)
	fmt.Fprintf(&b, "- Projects: %s\n\n", projectsList)
	fmt.Fprintf(&b, "TARGET POSITION: %s\n\n", targetRole)

	b.WriteString(`Generate a professional resume in JSON format with this EXACT structure:

{
  "contactInfo": {"name", "email", "phone", "location", "linkedin", "github"},
  "summary": "<compelling 3-4 sentence professional summary tailored to the target position, achievement-focused, quantified where possible>",
  "education": [{"degree", "institution", "year", "gpa", "honors"}],
  "experience": [{"title", "company", "location", "duration", "responsibilities": [<5-6 STRONG achievement-focused bullet points using the STAR method, starting with action verbs (Developed, Implemented, Led, Optimized, Architected), with specific metrics and technologies from the skills list>]}],
  "projects": [{"name", "institution", "duration", "description": [<4-5 achievement-focused bullet points explaining the problem solved, technologies used and impact created>], "technologies": [<3-5 most relevant skills>]}],
  "skills": {"technical": [...], "soft": [...], "tools": [...]},
  "certifications": [...],
  "achievements": [...],
  "suggestions": [<5-6 specific, actionable suggestions to improve this resume for the target position: missing skills, certifications, ways to quantify achievements, ATS improvements>]
}

IMPORTANT RULES:
1. Return ONLY valid JSON - no markdown, no code blocks, no extra text
2. Use realistic placeholders based on the user's information
3. Make achievements specific and quantifiable
`)
	fmt.Fprintf(&b, "4. Tailor everything to the %s position\n", targetRole)
	b.WriteString(`5. Ensure all JSON is properly formatted and parseable

Return the JSON now:`)

	return b.String()
}

// EvaluationPrompt builds the strict-grading prompt for an open-ended answer.
// MCQ answers are never sent here; they are scored directly.
func EvaluationPrompt(question, answer, jobRole string) string {
	return fmt.Sprintf(`You are a STRICT senior interviewer at a top tech company evaluating a candidate for a %s position. You have HIGH STANDARDS and give low scores for inadequate answers.

Interview Question:
"%s"

Candidate's Answer:
"%s"

Evaluate this answer with HONEST, CRITICAL feedback. Do NOT be lenient.

Return your evaluation in JSON format:
{
  "score": <number 0-10, where 10 is perfect>,
  "strengths": [<2-3 specific things the candidate did well, ONLY if they actually did well>],
  "weaknesses": [<2-3 specific areas that need improvement>],
  "missedPoints": [<1-3 key points the candidate should have mentioned>],
  "improvedAnswer": "<a better version of the answer, 2-3 sentences, that addresses the weaknesses>",
  "feedback": "<1-2 sentence overall assessment with actionable advice>"
}

STRICT SCORING RULES:
- 0-2: Completely wrong, irrelevant, or "I don't know" type answers
- 3-4: Partially correct but missing major points or showing poor understanding
- 5-6: Mediocre answer with some correct points but significant gaps
- 7: Good answer covering most key points
- 8: Very good answer with depth and good understanding
- 9-10: Excellent answer demonstrating expert-level knowledge

IMPORTANT:
- Be HARSH with scoring - wrong or incomplete answers should get 0-4
- Empty, vague, or "I don't know" answers MUST score 0-2
- Don't give participation points - judge based on correctness only
- 8+ scores should be RARE and only for truly excellent answers

Return ONLY valid JSON format.`, jobRole, question, answer)
}

// CareerAdvicePrompt builds the counselor prompt from a career profile.
func CareerAdvicePrompt(profile CareerProfile) string {
	goals := profile.Goals
	if goals == "" {
		goals = "Career growth and development"
	}
	return fmt.Sprintf(`You are a career counselor. Provide personalized career advice based on:

Current Role: %s
Experience: %s
Skills: %s
Career Goals: %s

Provide advice in JSON format:
{
  "advice": [<3-5 personalized career advice points>],
  "suggestedRoles": [<5-7 suitable job roles to consider>],
  "skillsToLearn": [<5-7 in-demand skills to acquire>],
  "nextSteps": [<3-5 actionable next steps>]
}

Return ONLY valid JSON format.`, profile.CurrentRole, profile.Experience, strings.Join(profile.Skills, ", "), goals)
}

// DiscussionTopicPrompt asks for a fresh group-discussion topic. It takes no
// parameters.
func DiscussionTopicPrompt() string {
	return `Generate a random, engaging group discussion topic suitable for interview assessment.

Return ONLY valid JSON (no markdown, no explanation):
{
  "topic": "<the discussion topic>",
  "category": "<Current Affairs|Technology|Business|Social Issues|Ethics|Environment>",
  "context": "<brief context or background about the topic>",
  "keyPoints": [<3-5 important points to consider in the discussion>]
}

Topics should be:
- Current and relevant
- Thought-provoking
- Suitable for evaluating communication and critical thinking
- Not too controversial or sensitive`
}

// DiscussionResponsePrompt builds the next assistant turn from the topic, the
// running transcript and the latest participant statement.
func DiscussionResponsePrompt(topic, statement string, history []DiscussionTurn) string {
	return fmt.Sprintf(`You are participating in a group discussion on the topic: "%s"

Conversation history:
%s

Participant's latest statement: "%s"

As an AI participant in this discussion:
1. Respond thoughtfully to the participant's point
2. Add your own perspective or counterargument
3. Ask a follow-up question to keep the discussion going
4. Identify key points made by the participant
5. Keep responses conversational and engaging (2-3 sentences max)

Return ONLY valid JSON (no markdown):
{
  "response": "<your response to the participant's statement>",
  "followUpQuestion": "<a question to encourage further discussion>",
  "feedback": "<brief evaluation of the participant's point - was it relevant, well-argued, etc.>",
  "pointsMade": [<list of key points the participant made in their statement>]
}`, topic, Transcript(history), statement)
}

// Transcript serializes a discussion history into the prompt line format.
func Transcript(history []DiscussionTurn) string {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		speaker := "AI"
		if turn.Speaker == SpeakerParticipant {
			speaker = "Participant"
		}
		lines = append(lines, speaker+": "+turn.Message)
	}
	return strings.Join(lines, "\n")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
