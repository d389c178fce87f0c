// Package types contains read shapes shared between the service and the
// HTTP layer.
package types

// LeaderboardRow is one ranked leaderboard entry.
type LeaderboardRow struct {
	Rank          int    `json:"rank" db:"-"`
	StudentName   string `json:"student_name" db:"student_name"`
	Total         int    `json:"total" db:"total"`
	PassedLetters int    `json:"passed_letters" db:"passed_letters"`
}

// AttemptResult is the outcome of a recorded letter attempt.
type AttemptResult struct {
	Passed  bool `json:"passed"`
	Score   int  `json:"score"`
	Created bool `json:"created"`
}

// ActivitySnapshot is the CVC totals view returned after recording an
// activity.
type ActivitySnapshot struct {
	TotalScore         int  `json:"total_score"`
	WordsCompleted     int  `json:"words_completed"`
	SentencesCompleted int  `json:"sentences_completed"`
	StoriesCompleted   int  `json:"stories_completed"`
	Created            bool `json:"created"`
}

// CertificateStatus is the completion-certificate eligibility view.
type CertificateStatus struct {
	StudentName   string `json:"student_name"`
	Eligible      bool   `json:"eligible"`
	PassedLetters int    `json:"passed_letters"`
	Required      int    `json:"required"`
	TotalScore    int    `json:"total_score"`
}
