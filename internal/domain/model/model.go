// Package model contains domain models passed between layers.
package model

import "time"

// Student identifies a learner. Students are created lazily on their first
// attempt and are only mutated through the aggregate recompute.
type Student struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	School           string `db:"school"`
	TotalScore       int    `db:"total_score"`
	LettersCompleted int    `db:"letters_completed"`
}

// LetterProgress is the per-(student, letter) progress record. Score only
// ever increases and Passed, once true, is never cleared.
type LetterProgress struct {
	ID        int64     `db:"id"`
	StudentID int64     `db:"student_id"`
	Letter    string    `db:"letter"`
	Score     int       `db:"score"`
	Passed    bool      `db:"passed"`
	Attempts  int       `db:"attempts"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CVCProgress holds a student's running CVC activity totals, one row per
// student. BestReadingTime is the minimum observed time, nil until a timed
// reading is recorded.
type CVCProgress struct {
	ID                  int64    `db:"id"`
	StudentID           int64    `db:"student_id"`
	WordsCompleted      int      `db:"words_completed"`
	WordsTotalScore     int      `db:"words_total_score"`
	SentencesCompleted  int      `db:"sentences_completed"`
	SentencesTotalScore int      `db:"sentences_total_score"`
	BestReadingTime     *float64 `db:"best_reading_time"`
	StoriesCompleted    int      `db:"stories_completed"`
	TotalScore          int      `db:"total_score"`
}

// ActivityKind enumerates the CVC activity types.
type ActivityKind string

// CVC activity kinds.
const (
	KindWord     ActivityKind = "word"
	KindSentence ActivityKind = "sentence"
	KindStory    ActivityKind = "story"
)

// Valid reports whether k is a known activity kind.
func (k ActivityKind) Valid() bool {
	switch k {
	case KindWord, KindSentence, KindStory:
		return true
	}
	return false
}

// QuizQuestion is one embedded quiz item attached to a sentence or story.
type QuizQuestion struct {
	Question   string   `json:"question"`
	QuestionAr string   `json:"question_ar,omitempty"`
	Options    []string `json:"options"`
	Correct    int      `json:"correct"`
	FeedbackEn string   `json:"feedback_en,omitempty"`
	FeedbackAr string   `json:"feedback_ar,omitempty"`
}

// CVCWord is a catalog word. The word text is the natural key; the catalog
// sort key is SortOrder, fixed at schema time.
type CVCWord struct {
	ID         int64  `db:"id" json:"id"`
	Word       string `db:"word" json:"word"`
	Meaning    string `db:"meaning" json:"arabic_meaning"`
	Emoji      string `db:"emoji" json:"emoji"`
	Category   string `db:"category" json:"category"`
	WordFamily string `db:"word_family" json:"word_family"`
	VowelSound string `db:"vowel_sound" json:"vowel_sound"`
	Difficulty int    `db:"difficulty" json:"difficulty_level"`
	SortOrder  int    `db:"sort_order" json:"order"`
	ImageURL   string `db:"image_url" json:"image_url,omitempty"`
}

// CVCSentence is a catalog sentence. The sentence text is the natural key;
// sorted by SortOrder then Difficulty.
type CVCSentence struct {
	ID          int64          `db:"id" json:"id"`
	Sentence    string         `db:"sentence" json:"sentence"`
	Translation string         `db:"translation" json:"arabic_translation"`
	Difficulty  int            `db:"difficulty" json:"difficulty"`
	TimeLimit   int            `db:"time_limit" json:"time_limit"`
	SortOrder   int            `db:"sort_order" json:"order"`
	Category    string         `db:"category" json:"category"`
	Emoji       string         `db:"emoji" json:"emoji"`
	Quiz        []QuizQuestion `db:"-" json:"quiz_data"`
}

// CVCStory is a catalog story. The title is the natural key; sorted by
// SortOrder then Difficulty.
type CVCStory struct {
	ID          int64          `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Content     string         `db:"content" json:"content"`
	Explanation string         `db:"explanation" json:"arabic_explanation"`
	ImageURL    string         `db:"image_url" json:"image_url,omitempty"`
	Quiz        []QuizQuestion `db:"-" json:"quiz_data"`
	Difficulty  int            `db:"difficulty" json:"difficulty"`
	SortOrder   int            `db:"sort_order" json:"order"`
}
