package ai

import (
	"fmt"
	"math/rand"
	"strings"
)

// Pre-authored content served when the model path is unavailable or returns
// an invalid structure. Everything here is deterministic except the topic
// pick, which selects uniformly from a fixed pool.

var quantitativeFallback = []InterviewQuestion{
	{
		ID:             1,
		Question:       "If 20% of A = 30% of B, what is the ratio A:B?",
		Options:        []string{"2:3", "3:2", "4:3", "3:4"},
		CorrectAnswer:  "3:2",
		Type:           CategoryQuantitative,
		Difficulty:     DifficultyMedium,
		ExpectedAnswer: "A/B = 30/20 = 3/2, so A:B = 3:2",
	},
	{
		ID:             2,
		Question:       "A train 150 meters long crosses a platform in 15 seconds at 90 km/h. What is the platform length?",
		Options:        []string{"200 meters", "225 meters", "250 meters", "275 meters"},
		CorrectAnswer:  "225 meters",
		Type:           CategoryQuantitative,
		Difficulty:     DifficultyHard,
		ExpectedAnswer: "Speed = 90 km/h = 25 m/s. Distance = 25 x 15 = 375m. Platform = 375 - 150 = 225m",
	},
	{
		ID:             3,
		Question:       "What is the next number in the series: 2, 6, 12, 20, 30, ?",
		Options:        []string{"40", "42", "44", "48"},
		CorrectAnswer:  "42",
		Type:           CategoryQuantitative,
		Difficulty:     DifficultyMedium,
		ExpectedAnswer: "Pattern: n(n+1). Next is 6x7 = 42",
	},
	{
		ID:             4,
		Question:       "If the cost price is 80% of the selling price, what is the profit percentage?",
		Options:        []string{"20%", "25%", "30%", "35%"},
		CorrectAnswer:  "25%",
		Type:           CategoryQuantitative,
		Difficulty:     DifficultyMedium,
		ExpectedAnswer: "Profit = SP - CP = SP - 0.8SP = 0.2SP. Profit% = (0.2SP/0.8SP) x 100 = 25%",
	},
	{
		ID:             5,
		Question:       "A can complete a work in 12 days. B can complete the same work in 18 days. How many days will they take working together?",
		Options:        []string{"6.5 days", "7.2 days", "8 days", "9 days"},
		CorrectAnswer:  "7.2 days",
		Type:           CategoryQuantitative,
		Difficulty:     DifficultyHard,
		ExpectedAnswer: "Combined rate = 1/12 + 1/18 = 5/36. Time = 36/5 = 7.2 days",
	},
}

var verbalFallback = []InterviewQuestion{
	{
		ID:             1,
		Question:       `Choose the correct synonym for "METICULOUS":`,
		Options:        []string{"Careless", "Precise", "Simple", "Harsh"},
		CorrectAnswer:  "Precise",
		Type:           CategoryVerbal,
		Difficulty:     DifficultyEasy,
		ExpectedAnswer: "Meticulous means showing great attention to detail; being precise.",
	},
	{
		ID:             2,
		Question:       `Choose the correct antonym for "ABUNDANT":`,
		Options:        []string{"Plentiful", "Scarce", "Sufficient", "Ample"},
		CorrectAnswer:  "Scarce",
		Type:           CategoryVerbal,
		Difficulty:     DifficultyEasy,
		ExpectedAnswer: "Abundant means plentiful, so the opposite is scarce.",
	},
	{
		ID:             3,
		Question:       `Fill in the blank: "She has been working here _____ five years."`,
		Options:        []string{"since", "for", "from", "during"},
		CorrectAnswer:  "for",
		Type:           CategoryVerbal,
		Difficulty:     DifficultyMedium,
		ExpectedAnswer: `Use "for" with a period of time.`,
	},
	{
		ID:             4,
		Question:       `Identify the error: "Each of the students have submitted their assignments."`,
		Options:        []string{"No error", "have should be has", "their should be his", "submitted should be submit"},
		CorrectAnswer:  "have should be has",
		Type:           CategoryVerbal,
		Difficulty:     DifficultyMedium,
		ExpectedAnswer: `"Each" is singular, so the verb should be "has" not "have".`,
	},
	{
		ID:             5,
		Question:       "Choose the correctly spelled word:",
		Options:        []string{"Occurance", "Occurrence", "Occurence", "Occurrance"},
		CorrectAnswer:  "Occurrence",
		Type:           CategoryVerbal,
		Difficulty:     DifficultyEasy,
		ExpectedAnswer: `The correct spelling is "Occurrence" with double C and double R.`,
	},
}

var genericFallback = []InterviewQuestion{
	{
		ID:             1,
		Question:       "What is the most important skill for a %s?",
		Options:        []string{"Technical expertise", "Communication", "Problem-solving", "Time management"},
		CorrectAnswer:  "Problem-solving",
		Type:           CategoryGeneral,
		Difficulty:     DifficultyEasy,
		ExpectedAnswer: "Problem-solving is crucial for any technical role.",
	},
	{
		ID:             2,
		Question:       "In Agile methodology, what is a Sprint?",
		Options:        []string{"A bug in code", "A time-boxed iteration", "A type of test", "A deployment process"},
		CorrectAnswer:  "A time-boxed iteration",
		Type:           CategoryTechnical,
		Difficulty:     DifficultyMedium,
		ExpectedAnswer: "A Sprint is a fixed time period for completing work in Agile.",
	},
	{
		ID:             3,
		Question:       "What does API stand for?",
		Options:        []string{"Application Programming Interface", "Advanced Programming Integration", "Automated Process Integration", "Application Process Interface"},
		CorrectAnswer:  "Application Programming Interface",
		Type:           CategoryTechnical,
		Difficulty:     DifficultyEasy,
		ExpectedAnswer: "API stands for Application Programming Interface.",
	},
	{
		ID:             4,
		Question:       "Which conflict resolution approach is most effective in a team?",
		Options:        []string{"Avoiding conflict", "Forcing your solution", "Collaborative problem-solving", "Compromising always"},
		CorrectAnswer:  "Collaborative problem-solving",
		Type:           CategoryBehavioral,
		Difficulty:     DifficultyMedium,
		ExpectedAnswer: "Collaborative problem-solving leads to better team outcomes.",
	},
	{
		ID:             5,
		Question:       "What is the purpose of version control systems like Git?",
		Options:        []string{"Speed up code execution", "Track changes in code", "Compile code faster", "Test code automatically"},
		CorrectAnswer:  "Track changes in code",
		Type:           CategoryTechnical,
		Difficulty:     DifficultyEasy,
		ExpectedAnswer: "Version control systems track changes and enable collaboration.",
	},
}

// FallbackQuestions returns up to count pre-authored questions for the bank
// matching the role text. Quantitative and math roles get the quantitative
// bank, verbal and English roles the verbal bank, everything else the
// generic bank. Requests beyond the bank size are capped; nothing is
// synthesized.
func FallbackQuestions(jobRole string, count int) []InterviewQuestion {
	role := strings.ToLower(jobRole)

	var bank []InterviewQuestion
	switch {
	case strings.Contains(role, "quantitative") || strings.Contains(role, "math"):
		bank = quantitativeFallback
	case strings.Contains(role, "verbal") || strings.Contains(role, "english"):
		bank = verbalFallback
	default:
		bank = genericFallback
	}

	if count < 0 {
		count = 0
	}
	if count > len(bank) {
		count = len(bank)
	}

	questions := make([]InterviewQuestion, count)
	copy(questions, bank[:count])
	for i := range questions {
		questions[i].Options = append([]string(nil), questions[i].Options...)
		if strings.Contains(questions[i].Question, "%s") {
			questions[i].Question = fmt.Sprintf(questions[i].Question, jobRole)
		}
	}
	return questions
}

var fallbackTopics = []DiscussionTopic{
	{
		Topic:    "Should artificial intelligence be regulated by governments?",
		Category: "Technology",
		Context:  "With rapid AI advancement, concerns about ethics, job displacement, and safety are growing.",
		KeyPoints: []string{
			"Balance between innovation and safety",
			"Potential risks of unregulated AI",
			"Impact on employment and economy",
			"Privacy and data concerns",
			"International cooperation needed",
		},
	},
	{
		Topic:    "Is remote work the future of employment?",
		Category: "Business",
		Context:  "Post-pandemic, many companies are rethinking traditional office-based work models.",
		KeyPoints: []string{
			"Productivity and work-life balance",
			"Company culture and team collaboration",
			"Cost savings vs. infrastructure challenges",
			"Environmental impact",
			"Hybrid models as compromise",
		},
	},
	{
		Topic:    "Should social media platforms be held responsible for fake news?",
		Category: "Social Issues",
		Context:  "Misinformation spreads rapidly on social media, influencing public opinion and elections.",
		KeyPoints: []string{
			"Free speech vs. content moderation",
			"Platform liability and responsibility",
			"User education and media literacy",
			"Technology solutions (AI detection)",
			"Impact on democracy and society",
		},
	},
	{
		Topic:    "Is climate change the biggest challenge facing humanity?",
		Category: "Environment",
		Context:  "Global temperatures rising, extreme weather events increasing, urgent action needed.",
		KeyPoints: []string{
			"Scientific consensus and evidence",
			"Economic vs. environmental priorities",
			"Individual vs. collective responsibility",
			"Renewable energy transition",
			"Global cooperation required",
		},
	},
	{
		Topic:    "Should college education be free for all?",
		Category: "Social Issues",
		Context:  "Student debt crisis and educational inequality are major concerns in many countries.",
		KeyPoints: []string{
			"Access to education as a right",
			"Economic feasibility and funding",
			"Quality of education concerns",
			"Impact on job market and economy",
			"Alternative models (vocational training)",
		},
	},
}

// FallbackTopic picks one of the pre-authored discussion topics uniformly at
// random.
func FallbackTopic() *DiscussionTopic {
	topic := fallbackTopics[rand.Intn(len(fallbackTopics))]
	topic.KeyPoints = append([]string(nil), topic.KeyPoints...)
	return &topic
}

// FallbackDiscussionReply is the fixed generic turn used when the discussion
// model path fails.
func FallbackDiscussionReply() *DiscussionResponse {
	return &DiscussionResponse{
		Response:         "That's an interesting point. Could you elaborate on that?",
		FollowUpQuestion: "What are your thoughts on the opposing viewpoint?",
		Feedback:         "Good participation. Try to provide more specific examples.",
		PointsMade:       []string{},
	}
}

// TemplateResume builds a deterministic resume from the profile alone. It is
// served when fallback mode is forced and the provider must not be called.
func TemplateResume(profile UserProfile, targetRole string) *OptimizedResume {
	skills := profile.Skills
	if len(skills) == 0 {
		skills = []string{"JavaScript", "TypeScript", "React", "Node.js"}
	}
	yearsExp := orDefault(profile.Experience, "Entry level")
	currentRole := orDefault(profile.CurrentRole, "Software Developer")
	location := "Your City, State"
	if profile.City != "" && profile.State != "" {
		location = profile.City + ", " + profile.State
	}

	slug := strings.ToLower(strings.ReplaceAll(profile.Name, " ", "."))

	projects := profile.Projects
	if len(projects) == 0 {
		projects = []string{"Portfolio Website", "Task Management App"}
	}
	projectEntries := make([]ProjectEntry, 0, len(projects))
	for i, name := range projects {
		description := "Built a full-stack application to solve real-world problems"
		if i < len(profile.ProjectDescriptions) && profile.ProjectDescriptions[i] != "" {
			description = profile.ProjectDescriptions[i]
		}
		projectEntries = append(projectEntries, ProjectEntry{
			Name:        name,
			Institution: "Personal Project",
			Duration:    "3 months",
			Description: []string{
				description,
				"Implemented features including user authentication, data persistence, and responsive design",
				"Deployed to production with CI/CD pipeline",
			},
			Technologies: skills[:min(4, len(skills))],
		})
	}

	achievements := profile.Achievements
	if len(achievements) == 0 {
		achievements = []string{
			"Successfully delivered 10+ projects on time and within budget",
			"Improved application performance by 40% through code optimization",
			"Received Employee of the Month award for outstanding contributions",
		}
	}

	return &OptimizedResume{
		ContactInfo: ContactInfo{
			Name:     profile.Name,
			Email:    orDefault(profile.Email, slug+"@email.com"),
			Phone:    orDefault(profile.Phone, "+1 (555) 123-4567"),
			Location: location,
			LinkedIn: orDefault(profile.LinkedIn, "linkedin.com/in/yourprofile"),
			GitHub:   orDefault(profile.GitHub, "github.com/yourprofile"),
		},
		Summary: fmt.Sprintf(
			"Results-driven %s with %s of experience seeking to transition to a %s role. "+
				"Proven track record of delivering high-quality solutions using modern technologies including %s. "+
				"Strong problem-solving abilities and commitment to writing clean, maintainable code. "+
				"Passionate about continuous learning and staying current with industry best practices.",
			currentRole, yearsExp, targetRole, strings.Join(skills[:min(3, len(skills))], ", ")),
		Education: []EducationEntry{{
			Degree:      orDefault(profile.Education, "Bachelor of Science in Computer Science"),
			Institution: orDefault(profile.UniversityName, "University Name"),
			Year:        "2020",
			GPA:         orDefault(profile.GPA, "3.8"),
			Honors:      "Cum Laude",
		}},
		Experience: []ExperienceEntry{{
			Title:    currentRole,
			Company:  orDefault(profile.CompanyName, "Tech Company"),
			Location: location,
			Duration: yearsExp,
			Responsibilities: []string{
				fmt.Sprintf("Developed and maintained full-stack applications using %s", strings.Join(skills[:min(2, len(skills))], " and ")),
				"Collaborated with cross-functional teams to deliver features on time",
				"Implemented responsive UI components improving user experience by 40%",
				"Optimized application performance reducing load times by 30%",
				"Participated in code reviews and mentored junior developers",
			},
		}},
		Projects: projectEntries,
		Skills: SkillGroups{
			Technical: skills,
			Soft:      []string{"Problem Solving", "Team Collaboration", "Communication", "Time Management", "Adaptability"},
			Tools:     []string{"Git", "VS Code", "Docker", "Postman", "Jira"},
		},
		Certifications: []string{},
		Achievements:   achievements,
		Suggestions: []string{
			"This resume was generated from a template while AI generation was disabled",
			"Quantify achievements with specific metrics and numbers",
			"Add more technical projects to demonstrate hands-on experience",
			fmt.Sprintf("Consider obtaining certifications relevant to %s", targetRole),
			"Include a portfolio link or GitHub profile with live project demos",
			"Tailor your resume for each specific job application",
		},
	}
}
