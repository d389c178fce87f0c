// Package repository defines the progress store interface and its sqlite
// implementation.
package repository

import (
	"context"

	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/internal/domain/types"
)

// Store provides transactional access to students, progress records and the
// content catalogs.
type Store interface {
	// RecordLetterAttempt applies one letter attempt for the named student
	// as a single atomic unit: get-or-create the student, check the
	// sequential gate, get-or-create the (student, letter) record, count
	// the attempt, raise the score monotonically, latch the pass flag and
	// recompute the student's aggregate totals. Returns the updated record
	// and whether it was created by this attempt. A gate rejection
	// surfaces as *PrerequisiteError and rolls back the whole
	// transaction, leaving no trace in the store.
	RecordLetterAttempt(ctx context.Context, studentName, letter string, score int) (model.LetterProgress, bool, error)

	// RecordActivity applies one CVC activity (word, sentence or story) to
	// the student's progress row, creating student and row lazily.
	// readingTime is nil when the reading was not timed.
	RecordActivity(ctx context.Context, studentName string, kind model.ActivityKind, points int, readingTime *float64) (model.CVCProgress, bool, error)

	// RecalculateStudent recomputes total_score and letters_completed from
	// the letter records and persists them. Idempotent: a second call with
	// no intervening attempt yields identical values.
	RecalculateStudent(ctx context.Context, studentName string) (model.Student, error)

	// StudentByName returns a student or ErrNotFound.
	StudentByName(ctx context.Context, name string) (model.Student, error)

	// TopStudents returns up to limit students that have at least one
	// letter record, ordered by total score descending with name ascending
	// as the tiebreak.
	TopStudents(ctx context.Context, limit int) ([]types.LeaderboardRow, error)

	// CountStudents returns the number of student rows.
	CountStudents(ctx context.Context) (int, error)

	// Catalog reads, each ordered by its declared sort key.
	Words(ctx context.Context) ([]model.CVCWord, error)
	Sentences(ctx context.Context) ([]model.CVCSentence, error)
	Stories(ctx context.Context) ([]model.CVCStory, error)

	// Catalog upserts by natural key. The IgnoreExisting variants leave
	// present rows untouched; the OverwriteExisting variants replace their
	// fields. All report whether the row was created.
	UpsertWordIgnoreExisting(ctx context.Context, w model.CVCWord) (bool, error)
	UpsertWordOverwriteExisting(ctx context.Context, w model.CVCWord) (bool, error)
	UpsertSentenceIgnoreExisting(ctx context.Context, s model.CVCSentence) (bool, error)
	UpsertSentenceOverwriteExisting(ctx context.Context, s model.CVCSentence) (bool, error)
	UpsertStoryIgnoreExisting(ctx context.Context, st model.CVCStory) (bool, error)
	UpsertStoryOverwriteExisting(ctx context.Context, st model.CVCStory) (bool, error)

	// ResetCatalogs deletes every row of the three catalogs and reports
	// how many rows were removed. Student progress is untouched.
	ResetCatalogs(ctx context.Context) (int64, error)

	// CatalogCounts returns the current row counts per catalog.
	CatalogCounts(ctx context.Context) (words, sentences, stories int, err error)

	Close() error
}
