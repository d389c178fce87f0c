// Package progression holds the pure rules of the letter path and the CVC
// activity bookkeeping: the sequential gate, the pass threshold, the
// monotonic-max score update and the reading-time minimum. No I/O happens
// here; the storage layer applies these rules inside its transactions.
package progression

import (
	"strings"

	"github.com/okian/harf/internal/domain/model"
)

// Fixed point scales and thresholds of the letter and CVC flows.
const (
	// PassThreshold is the minimum letter quiz score that marks a letter
	// as passed.
	PassThreshold = 14

	// MaxLetterScore is the top of the letter quiz's point scale.
	MaxLetterScore = 20

	// MaxActivityPoints is the top of the CVC activity point scale.
	MaxActivityPoints = 1000

	// FirstLetter and LastLetter bound the sequential letter path.
	FirstLetter = 'A'
	LastLetter  = 'Z'

	// CertificateLetters is how many passed letters earn the completion
	// certificate.
	CertificateLetters = 26
)

// NormalizeLetter validates raw input as a single alphabetic character and
// returns its canonical uppercase form.
func NormalizeLetter(raw string) (string, bool) {
	if len(raw) != 1 {
		return "", false
	}
	upper := strings.ToUpper(raw)
	c := upper[0]
	if c < FirstLetter || c > LastLetter {
		return "", false
	}
	return upper, true
}

// ValidLetterScore reports whether score is on the letter quiz scale.
func ValidLetterScore(score int) bool {
	return score >= 0 && score <= MaxLetterScore
}

// ValidActivityPoints reports whether points is on the CVC activity scale.
func ValidActivityPoints(points int) bool {
	return points >= 0 && points <= MaxActivityPoints
}

// GateDecision is the outcome of the sequential-unlock check. When Allowed
// is false, RequiredLetter names the prerequisite the student is missing.
type GateDecision struct {
	Allowed        bool
	RequiredLetter string
}

// Gate decides whether an attempt at letter may be recorded. Letter 'A' is
// always allowed; any later letter requires its predecessor to be passed.
// hasPassed is consulted at most once, with the predecessor letter.
func Gate(letter string, hasPassed func(letter string) bool) GateDecision {
	if letter == string(rune(FirstLetter)) {
		return GateDecision{Allowed: true}
	}
	previous := string(letter[0] - 1)
	if hasPassed(previous) {
		return GateDecision{Allowed: true}
	}
	return GateDecision{Allowed: false, RequiredLetter: previous}
}

// AttemptOutcome describes what a letter attempt changed.
type AttemptOutcome struct {
	ScoreImproved bool
	NewlyPassed   bool
}

// ApplyLetterAttempt mutates rec with one attempt's result. Attempts always
// increments; the stored score only rises (monotonic-max); Passed latches
// once the stored score reaches the threshold and is never cleared.
func ApplyLetterAttempt(rec *model.LetterProgress, score int) AttemptOutcome {
	var out AttemptOutcome
	rec.Attempts++
	if score > rec.Score {
		rec.Score = score
		out.ScoreImproved = true
	}
	if !rec.Passed && rec.Score >= PassThreshold {
		rec.Passed = true
		out.NewlyPassed = true
	}
	return out
}

// ApplyActivity mutates p with one CVC activity. Words and sentences add
// points to their own totals and the combined total; stories only count
// completions. A nil readingTime means the reading was not timed and must
// not disturb the stored minimum.
func ApplyActivity(p *model.CVCProgress, kind model.ActivityKind, points int, readingTime *float64) {
	switch kind {
	case model.KindWord:
		p.WordsCompleted++
		p.WordsTotalScore += points
		p.TotalScore += points
	case model.KindSentence:
		p.SentencesCompleted++
		p.SentencesTotalScore += points
		p.TotalScore += points
		if readingTime != nil && (p.BestReadingTime == nil || *readingTime < *p.BestReadingTime) {
			t := *readingTime
			p.BestReadingTime = &t
		}
	case model.KindStory:
		p.StoriesCompleted++
	}
}

// CertificateEligible reports whether a student with the given passed-letter
// count has completed the full path.
func CertificateEligible(passedLetters int) bool {
	return passedLetters >= CertificateLetters
}
