package model

// UserType identifies who is filling out the diagnosis survey.
type UserType string

const (
	UserStudent UserType = "student"
	UserParent  UserType = "parent"
)

// Grade is the student's high-school year.
type Grade string

const (
	Grade1 Grade = "1"
	Grade2 Grade = "2"
	Grade3 Grade = "3"
)

// GradeLevel is the self-reported academic standing bucket.
type GradeLevel string

const (
	LevelTop    GradeLevel = "top"
	LevelUpper  GradeLevel = "upper"
	LevelMiddle GradeLevel = "middle"
	LevelLower  GradeLevel = "lower"
)

// Subject is a school subject code.
type Subject string

const (
	SubjectKorean  Subject = "korean"
	SubjectEnglish Subject = "english"
	SubjectMath    Subject = "math"
	SubjectScience Subject = "science"
	SubjectSocial  Subject = "social"
	SubjectOther   Subject = "other"
)

// StudyStyle is the student's preferred learning mode.
type StudyStyle string

const (
	StyleVisual      StudyStyle = "visual"
	StyleAuditory    StudyStyle = "auditory"
	StyleKinesthetic StudyStyle = "kinesthetic"
	StyleReading     StudyStyle = "reading"
)

// GoalType is a study goal code.
type GoalType string

const (
	GoalUniversity       GoalType = "university"
	GoalGradeImprovement GoalType = "grade_improvement"
	GoalHabitBuilding    GoalType = "habit_building"
	GoalExamPrep         GoalType = "exam_prep"
)

// ConcernType is a study concern code.
type ConcernType string

const (
	ConcernMotivation     ConcernType = "motivation"
	ConcernTimeManagement ConcernType = "time_management"
	ConcernStudyMethod    ConcernType = "study_method"
	ConcernConcentration  ConcernType = "concentration"
	ConcernGrades         ConcernType = "grades"
	ConcernCareer         ConcernType = "career"
)

// UrgencyLevel is the triage signal attached to a diagnosis report.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// DiagnosisInput is one submitted survey. Multi-select fields are sets with
// toggle semantics; repeated codes in the request body collapse on unmarshal.
type DiagnosisInput struct {
	UserType          UserType               `json:"userType"`
	StudentName       string                 `json:"studentName"`
	Grade             Grade                  `json:"grade"`
	CurrentGradeLevel GradeLevel             `json:"currentGradeLevel"`
	WeakSubjects      OptionSet[Subject]     `json:"weakSubjects"`
	StrongSubjects    OptionSet[Subject]     `json:"strongSubjects"`
	DailyStudyHours   int                    `json:"dailyStudyHours"`
	StudyStyle        StudyStyle             `json:"studyStyle"`
	Goals             OptionSet[GoalType]    `json:"goals"`
	MainConcerns      OptionSet[ConcernType] `json:"mainConcerns"`
	SpecificConcern   string                 `json:"specificConcern"`
	CurrentSituation  string                 `json:"currentSituation"`
	PreviousEfforts   string                 `json:"previousEfforts"`
}

// StrengthsAndWeaknesses groups the two assessment lists.
type StrengthsAndWeaknesses struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Recommendations partitions advice by time horizon.
type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

// StudyPlan holds the daily/weekly/monthly plan text.
type StudyPlan struct {
	Daily   string `json:"daily"`
	Weekly  string `json:"weekly"`
	Monthly string `json:"monthly"`
}

// DiagnosisReport is the diagnosis payload returned to the client. The JSON
// shape matches what the completion service is instructed to produce.
type DiagnosisReport struct {
	OverallAssessment      string                 `json:"overallAssessment"`
	StrengthsAndWeaknesses StrengthsAndWeaknesses `json:"strengthsAndWeaknesses"`
	Recommendations        Recommendations        `json:"recommendations"`
	StudyPlan              StudyPlan              `json:"studyPlan"`
	AdditionalResources    []string               `json:"additionalResources"`
	UrgencyLevel           UrgencyLevel           `json:"urgencyLevel"`
}

// Difficulty tags a quiz question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizQuestion is one entry of the bundled question bank.
type QuizQuestion struct {
	ID            int        `json:"id"`
	Subject       string     `json:"subject"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Unanswered is the selection sentinel recorded when a countdown expires
// before the player picks an option.
const Unanswered = -1

// QuizAnswer records the outcome of a single question within a session.
type QuizAnswer struct {
	QuestionID     int  `json:"questionId"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
	TimeSpent      int  `json:"timeSpent"`
}

// QuizResult is emitted once per session when the last question is advanced.
type QuizResult struct {
	PlayerName     string       `json:"playerName"`
	PlayerSchool   string       `json:"playerSchool"`
	TotalScore     int          `json:"totalScore"`
	CorrectAnswers int          `json:"correctAnswers"`
	TotalQuestions int          `json:"totalQuestions"`
	TotalTime      int          `json:"totalTime"`
	Answers        []QuizAnswer `json:"answers"`
}

// SchoolRanking is a read-only row of the bundled school leaderboard.
type SchoolRanking struct {
	Name             string `json:"name"`
	Region           string `json:"region"`
	AverageScore     int    `json:"averageScore"`
	ParticipantCount int    `json:"participantCount"`
}

// PlayerRanking is a read-only row of the bundled player leaderboard.
// Time is in seconds.
type PlayerRanking struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	School string `json:"school"`
	Score  int    `json:"score"`
	Time   int    `json:"time"`
}
