package ai

// Question categories the generator is allowed to emit.
const (
	CategoryTechnical    = "technical"
	CategoryBehavioral   = "behavioral"
	CategorySituational  = "situational"
	CategoryGeneral      = "general"
	CategoryQuantitative = "quantitative"
	CategoryVerbal       = "verbal"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// InterviewQuestion is a single generated interview question. MCQ questions
// carry exactly four options plus the correct answer; the correct answer must
// be one of the options.
type InterviewQuestion struct {
	ID             int      `json:"id"`
	Question       string   `json:"question"`
	Type           string   `json:"type"`
	Difficulty     string   `json:"difficulty"`
	ExpectedAnswer string   `json:"expectedAnswer,omitempty"`
	Options        []string `json:"options,omitempty"`
	CorrectAnswer  string   `json:"correctAnswer,omitempty"`
}

// IsMCQ reports whether the question carries a fixed correct answer.
func (q *InterviewQuestion) IsMCQ() bool {
	return q.CorrectAnswer != ""
}

// ResumeMatchAnalysis is the ATS-style comparison of a resume against a job
// description.
type ResumeMatchAnalysis struct {
	MatchScore       int      `json:"matchScore"`
	Strengths        []string `json:"strengths"`
	Gaps             []string `json:"gaps"`
	Recommendations  []string `json:"recommendations"`
	KeySkillsMatched []string `json:"keySkillsMatched"`
	KeySkillsMissing []string `json:"keySkillsMissing"`
}

type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Institution  string   `json:"institution,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
}

type SkillGroups struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// OptimizedResume is the full resume document produced by the resume builder.
type OptimizedResume struct {
	ContactInfo    ContactInfo       `json:"contactInfo"`
	Summary        string            `json:"summary"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Projects       []ProjectEntry    `json:"projects"`
	Skills         SkillGroups       `json:"skills"`
	Certifications []string          `json:"certifications,omitempty"`
	Achievements   []string          `json:"achievements,omitempty"`
	Suggestions    []string          `json:"suggestions"`
}

// InterviewEvaluation grades a single answer on a 0-10 scale.
type InterviewEvaluation struct {
	Score          int      `json:"score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	MissedPoints   []string `json:"missedPoints"`
	ImprovedAnswer string   `json:"improvedAnswer"`
	Feedback       string   `json:"feedback"`
}

// EvaluationRecord pairs one question of a batch with its graded answer.
type EvaluationRecord struct {
	QuestionID     int                  `json:"questionId"`
	Question       string               `json:"question"`
	Answer         string               `json:"answer"`
	ExpectedAnswer string               `json:"expectedAnswer,omitempty"`
	CorrectAnswer  string               `json:"correctAnswer,omitempty"`
	Evaluation     *InterviewEvaluation `json:"evaluation"`
	IsCorrect      bool                 `json:"isCorrect"`
}

// AggregateReport summarizes a fully evaluated batch. Evaluations keep the
// original question order.
type AggregateReport struct {
	OverallScore   int                `json:"overallScore"`
	AverageScore   float64            `json:"averageScore"`
	CorrectAnswers int                `json:"correctAnswers"`
	TotalQuestions int                `json:"totalQuestions"`
	Evaluations    []EvaluationRecord `json:"evaluations"`
}

// CareerAdvice is the counselor output for a career profile.
type CareerAdvice struct {
	Advice         []string `json:"advice"`
	SuggestedRoles []string `json:"suggestedRoles"`
	SkillsToLearn  []string `json:"skillsToLearn"`
	NextSteps      []string `json:"nextSteps"`
}

// DiscussionTopic is a generated group-discussion subject.
type DiscussionTopic struct {
	Topic     string   `json:"topic"`
	Category  string   `json:"category"`
	Context   string   `json:"context"`
	KeyPoints []string `json:"keyPoints"`
}

// DiscussionResponse is one assistant turn in a group discussion.
type DiscussionResponse struct {
	Response         string   `json:"response"`
	FollowUpQuestion string   `json:"followUpQuestion,omitempty"`
	Feedback         string   `json:"feedback,omitempty"`
	PointsMade       []string `json:"pointsMade"`
}

// Discussion turn speakers. The caller owns the history and appends new
// turns after every exchange; nothing is stored on this side.
const (
	SpeakerParticipant = "participant"
	SpeakerAssistant   = "assistant"
)

type DiscussionTurn struct {
	Speaker string `json:"speaker"`
	Message string `json:"message"`
}

// UserProfile carries the candidate details fed into the resume builder.
// Name is the only mandatory field; the prompt substitutes stated defaults
// for everything else.
type UserProfile struct {
	Name                string   `json:"name"`
	Email               string   `json:"email,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	City                string   `json:"city,omitempty"`
	State               string   `json:"state,omitempty"`
	LinkedIn            string   `json:"linkedin,omitempty"`
	GitHub              string   `json:"github,omitempty"`
	CurrentRole         string   `json:"currentRole,omitempty"`
	CompanyName         string   `json:"companyName,omitempty"`
	Experience          string   `json:"experience,omitempty"`
	Skills              []string `json:"skills,omitempty"`
	Education           string   `json:"education,omitempty"`
	UniversityName      string   `json:"universityName,omitempty"`
	GPA                 string   `json:"gpa,omitempty"`
	Achievements        []string `json:"achievements,omitempty"`
	Projects            []string `json:"projects,omitempty"`
	ProjectDescriptions []string `json:"projectDescriptions,omitempty"`
}

// CareerProfile carries the inputs for career advice generation.
type CareerProfile struct {
	CurrentRole string   `json:"currentRole"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Goals       string   `json:"goals,omitempty"`
}
