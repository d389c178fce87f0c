package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/internal/domain/progression"
	"github.com/okian/harf/internal/domain/types"
	"github.com/okian/harf/pkg/logger"
	"github.com/okian/harf/pkg/metrics"
)

const defaultBusyTimeoutMS = 5000

// SQLiteStore implements Store on a single sqlite database file.
type SQLiteStore struct {
	db            *sqlx.DB
	logger        logger.Logger
	busyTimeoutMS int
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (and if necessary creates) the database at path and prepares the
// schema. Transactions take the write lock up front via _txlock=immediate so
// concurrent writers queue on busy_timeout instead of failing mid-transaction.
// The pragmas ride on the DSN so every pooled connection gets them, not just
// the one that happens to run a setup statement.
func Open(path string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{
		logger:        logger.Named("store"),
		busyTimeoutMS: defaultBusyTimeoutMS,
	}
	for _, opt := range opts {
		opt(s)
	}

	dsn := fmt.Sprintf(
		"file:%s?_txlock=immediate&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)",
		path, s.busyTimeoutMS)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *SQLiteStore) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	start := time.Now()
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		metrics.RecordStoreFailure(op)
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		metrics.RecordStoreFailure(op)
		return err
	}
	if err := tx.Commit(); err != nil {
		metrics.RecordStoreFailure(op)
		return fmt.Errorf("committing transaction: %w", err)
	}
	metrics.RecordStoreOp(op, float64(time.Since(start).Microseconds())/1000.0)
	return nil
}

func getOrCreateStudent(tx *sqlx.Tx, name string) (model.Student, bool, error) {
	ts := now()
	res, err := tx.Exec(
		`INSERT INTO students (name, created_at, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (name) DO NOTHING`,
		name, ts, ts)
	if err != nil {
		return model.Student{}, false, fmt.Errorf("inserting student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Student{}, false, fmt.Errorf("inserting student: %w", err)
	}

	var student model.Student
	err = tx.Get(&student,
		`SELECT id, name, school, total_score, letters_completed FROM students WHERE name = ?`,
		name)
	if err != nil {
		return model.Student{}, false, fmt.Errorf("loading student: %w", err)
	}
	return student, affected > 0, nil
}

// letterRow carries the TEXT timestamp across the driver boundary.
type letterRow struct {
	ID        int64  `db:"id"`
	StudentID int64  `db:"student_id"`
	Letter    string `db:"letter"`
	Score     int    `db:"score"`
	Passed    bool   `db:"passed"`
	Attempts  int    `db:"attempts"`
	UpdatedAt string `db:"updated_at"`
}

func (r letterRow) toModel() (model.LetterProgress, error) {
	updated, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return model.LetterProgress{}, fmt.Errorf("parsing letter record timestamp %q: %w", r.UpdatedAt, err)
	}
	return model.LetterProgress{
		ID:        r.ID,
		StudentID: r.StudentID,
		Letter:    r.Letter,
		Score:     r.Score,
		Passed:    r.Passed,
		Attempts:  r.Attempts,
		UpdatedAt: updated,
	}, nil
}

// RecordLetterAttempt applies one attempt in a single transaction. See the
// Store interface for the full contract.
func (s *SQLiteStore) RecordLetterAttempt(ctx context.Context, studentName, letter string, score int) (model.LetterProgress, bool, error) {
	var (
		record  model.LetterProgress
		created bool
	)
	err := s.withTx(ctx, "record_letter_attempt", func(tx *sqlx.Tx) error {
		student, _, err := getOrCreateStudent(tx, studentName)
		if err != nil {
			return err
		}

		var gateErr error
		decision := progression.Gate(letter, func(previous string) bool {
			var passed bool
			err := tx.Get(&passed,
				`SELECT COALESCE((SELECT passed FROM letter_progress WHERE student_id = ? AND letter = ?), 0)`,
				student.ID, previous)
			if err != nil {
				gateErr = fmt.Errorf("checking prerequisite: %w", err)
				return false
			}
			return passed
		})
		if gateErr != nil {
			return gateErr
		}
		if !decision.Allowed {
			return &PrerequisiteError{RequiredLetter: decision.RequiredLetter}
		}

		var row letterRow
		err = tx.Get(&row,
			`SELECT id, student_id, letter, score, passed, attempts, updated_at
			 FROM letter_progress WHERE student_id = ? AND letter = ?`,
			student.ID, letter)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			created = true
			record = model.LetterProgress{StudentID: student.ID, Letter: letter}
		case err != nil:
			return fmt.Errorf("loading letter record: %w", err)
		default:
			record, err = row.toModel()
			if err != nil {
				return err
			}
		}

		progression.ApplyLetterAttempt(&record, score)
		record.UpdatedAt = time.Now().UTC()
		ts := record.UpdatedAt.Format(time.RFC3339Nano)

		if created {
			res, err := tx.Exec(
				`INSERT INTO letter_progress (student_id, letter, score, passed, attempts, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				record.StudentID, record.Letter, record.Score, record.Passed, record.Attempts, ts)
			if err != nil {
				return fmt.Errorf("inserting letter record: %w", err)
			}
			record.ID, err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("inserting letter record: %w", err)
			}
		} else {
			_, err := tx.Exec(
				`UPDATE letter_progress SET score = ?, passed = ?, attempts = ?, updated_at = ? WHERE id = ?`,
				record.Score, record.Passed, record.Attempts, ts, record.ID)
			if err != nil {
				return fmt.Errorf("updating letter record: %w", err)
			}
		}

		return recalcAggregates(tx, student.ID)
	})
	if err != nil {
		return model.LetterProgress{}, false, err
	}
	return record, created, nil
}

// recalcAggregates rewrites the student's total_score and letters_completed
// from the letter records inside the caller's transaction.
func recalcAggregates(tx *sqlx.Tx, studentID int64) error {
	var agg struct {
		Total  int `db:"total"`
		Passed int `db:"passed"`
	}
	err := tx.Get(&agg,
		`SELECT COALESCE(SUM(score), 0) AS total, COALESCE(SUM(passed), 0) AS passed
		 FROM letter_progress WHERE student_id = ?`,
		studentID)
	if err != nil {
		return fmt.Errorf("aggregating letter records: %w", err)
	}
	_, err = tx.Exec(
		`UPDATE students SET total_score = ?, letters_completed = ?, updated_at = ? WHERE id = ?`,
		agg.Total, agg.Passed, now(), studentID)
	if err != nil {
		return fmt.Errorf("updating student totals: %w", err)
	}
	return nil
}

// RecordActivity applies one CVC activity in a single transaction.
func (s *SQLiteStore) RecordActivity(ctx context.Context, studentName string, kind model.ActivityKind, points int, readingTime *float64) (model.CVCProgress, bool, error) {
	var (
		progress model.CVCProgress
		created  bool
	)
	err := s.withTx(ctx, "record_activity", func(tx *sqlx.Tx) error {
		student, _, err := getOrCreateStudent(tx, studentName)
		if err != nil {
			return err
		}

		err = tx.Get(&progress,
			`SELECT id, student_id, words_completed, words_total_score, sentences_completed,
			        sentences_total_score, best_reading_time, stories_completed, total_score
			 FROM cvc_progress WHERE student_id = ?`,
			student.ID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			created = true
			progress = model.CVCProgress{StudentID: student.ID}
		case err != nil:
			return fmt.Errorf("loading activity progress: %w", err)
		}

		progression.ApplyActivity(&progress, kind, points, readingTime)

		if created {
			res, err := tx.Exec(
				`INSERT INTO cvc_progress (student_id, words_completed, words_total_score,
				        sentences_completed, sentences_total_score, best_reading_time,
				        stories_completed, total_score)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				progress.StudentID, progress.WordsCompleted, progress.WordsTotalScore,
				progress.SentencesCompleted, progress.SentencesTotalScore, progress.BestReadingTime,
				progress.StoriesCompleted, progress.TotalScore)
			if err != nil {
				return fmt.Errorf("inserting activity progress: %w", err)
			}
			progress.ID, err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("inserting activity progress: %w", err)
			}
			return nil
		}

		_, err = tx.Exec(
			`UPDATE cvc_progress SET words_completed = ?, words_total_score = ?,
			        sentences_completed = ?, sentences_total_score = ?, best_reading_time = ?,
			        stories_completed = ?, total_score = ?
			 WHERE id = ?`,
			progress.WordsCompleted, progress.WordsTotalScore,
			progress.SentencesCompleted, progress.SentencesTotalScore, progress.BestReadingTime,
			progress.StoriesCompleted, progress.TotalScore, progress.ID)
		if err != nil {
			return fmt.Errorf("updating activity progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.CVCProgress{}, false, err
	}
	return progress, created, nil
}

// RecalculateStudent recomputes and persists the student's aggregates.
func (s *SQLiteStore) RecalculateStudent(ctx context.Context, studentName string) (model.Student, error) {
	var student model.Student
	err := s.withTx(ctx, "recalculate_student", func(tx *sqlx.Tx) error {
		err := tx.Get(&student,
			`SELECT id, name, school, total_score, letters_completed FROM students WHERE name = ?`,
			studentName)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("loading student: %w", err)
		}
		if err := recalcAggregates(tx, student.ID); err != nil {
			return err
		}
		err = tx.Get(&student,
			`SELECT id, name, school, total_score, letters_completed FROM students WHERE id = ?`,
			student.ID)
		if err != nil {
			return fmt.Errorf("reloading student: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Student{}, err
	}
	return student, nil
}

// StudentByName returns a student or ErrNotFound.
func (s *SQLiteStore) StudentByName(ctx context.Context, name string) (model.Student, error) {
	var student model.Student
	err := s.db.GetContext(ctx, &student,
		`SELECT id, name, school, total_score, letters_completed FROM students WHERE name = ?`,
		name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Student{}, ErrNotFound
	}
	if err != nil {
		metrics.RecordStoreFailure("student_by_name")
		return model.Student{}, fmt.Errorf("loading student: %w", err)
	}
	return student, nil
}

// TopStudents returns the ranked leaderboard. Only students with at least one
// letter record appear; rank is assigned after the ordered read.
func (s *SQLiteStore) TopStudents(ctx context.Context, limit int) ([]types.LeaderboardRow, error) {
	rows := []types.LeaderboardRow{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT s.name AS student_name, s.total_score AS total, s.letters_completed AS passed_letters
		 FROM students s
		 WHERE EXISTS (SELECT 1 FROM letter_progress lp WHERE lp.student_id = s.id)
		 ORDER BY s.total_score DESC, s.name ASC
		 LIMIT ?`,
		limit)
	if err != nil {
		metrics.RecordStoreFailure("top_students")
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, nil
}

// CountStudents returns the number of student rows.
func (s *SQLiteStore) CountStudents(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM students`)
	if err != nil {
		metrics.RecordStoreFailure("count_students")
		return 0, fmt.Errorf("counting students: %w", err)
	}
	return count, nil
}

// Words returns the word catalog in its fixed practice order.
func (s *SQLiteStore) Words(ctx context.Context) ([]model.CVCWord, error) {
	words := []model.CVCWord{}
	err := s.db.SelectContext(ctx, &words,
		`SELECT id, word, meaning, emoji, category, word_family, vowel_sound, difficulty, sort_order, image_url
		 FROM cvc_words ORDER BY sort_order, word`)
	if err != nil {
		metrics.RecordStoreFailure("words")
		return nil, fmt.Errorf("loading words: %w", err)
	}
	return words, nil
}

type sentenceRow struct {
	ID          int64  `db:"id"`
	Sentence    string `db:"sentence"`
	Translation string `db:"translation"`
	Difficulty  int    `db:"difficulty"`
	TimeLimit   int    `db:"time_limit"`
	SortOrder   int    `db:"sort_order"`
	Category    string `db:"category"`
	Emoji       string `db:"emoji"`
	QuizJSON    string `db:"quiz_json"`
}

type storyRow struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Content     string `db:"content"`
	Explanation string `db:"explanation"`
	ImageURL    string `db:"image_url"`
	QuizJSON    string `db:"quiz_json"`
	Difficulty  int    `db:"difficulty"`
	SortOrder   int    `db:"sort_order"`
}

func decodeQuiz(raw string) ([]model.QuizQuestion, error) {
	if raw == "" {
		return nil, nil
	}
	var quiz []model.QuizQuestion
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, fmt.Errorf("decoding quiz: %w", err)
	}
	return quiz, nil
}

func encodeQuiz(quiz []model.QuizQuestion) (string, error) {
	if quiz == nil {
		quiz = []model.QuizQuestion{}
	}
	raw, err := json.Marshal(quiz)
	if err != nil {
		return "", fmt.Errorf("encoding quiz: %w", err)
	}
	return string(raw), nil
}

// Sentences returns the sentence catalog in its fixed practice order.
func (s *SQLiteStore) Sentences(ctx context.Context) ([]model.CVCSentence, error) {
	rows := []sentenceRow{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, sentence, translation, difficulty, time_limit, sort_order, category, emoji, quiz_json
		 FROM cvc_sentences ORDER BY sort_order, difficulty, sentence`)
	if err != nil {
		metrics.RecordStoreFailure("sentences")
		return nil, fmt.Errorf("loading sentences: %w", err)
	}

	sentences := make([]model.CVCSentence, 0, len(rows))
	for _, r := range rows {
		quiz, err := decodeQuiz(r.QuizJSON)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", r.ID, err)
		}
		sentences = append(sentences, model.CVCSentence{
			ID:          r.ID,
			Sentence:    r.Sentence,
			Translation: r.Translation,
			Difficulty:  r.Difficulty,
			TimeLimit:   r.TimeLimit,
			SortOrder:   r.SortOrder,
			Category:    r.Category,
			Emoji:       r.Emoji,
			Quiz:        quiz,
		})
	}
	return sentences, nil
}

// Stories returns the story catalog in its fixed practice order.
func (s *SQLiteStore) Stories(ctx context.Context) ([]model.CVCStory, error) {
	rows := []storyRow{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, title, content, explanation, image_url, quiz_json, difficulty, sort_order
		 FROM cvc_stories ORDER BY sort_order, difficulty, title`)
	if err != nil {
		metrics.RecordStoreFailure("stories")
		return nil, fmt.Errorf("loading stories: %w", err)
	}

	stories := make([]model.CVCStory, 0, len(rows))
	for _, r := range rows {
		quiz, err := decodeQuiz(r.QuizJSON)
		if err != nil {
			return nil, fmt.Errorf("story %d: %w", r.ID, err)
		}
		stories = append(stories, model.CVCStory{
			ID:          r.ID,
			Title:       r.Title,
			Content:     r.Content,
			Explanation: r.Explanation,
			ImageURL:    r.ImageURL,
			Quiz:        quiz,
			Difficulty:  r.Difficulty,
			SortOrder:   r.SortOrder,
		})
	}
	return stories, nil
}

// UpsertWordIgnoreExisting inserts the word if its text is new, leaving an
// existing row untouched.
func (s *SQLiteStore) UpsertWordIgnoreExisting(ctx context.Context, w model.CVCWord) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO cvc_words (word, meaning, emoji, category, word_family, vowel_sound, difficulty, sort_order, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (word) DO NOTHING`,
		w.Word, w.Meaning, w.Emoji, w.Category, w.WordFamily, w.VowelSound, w.Difficulty, w.SortOrder, w.ImageURL)
	if err != nil {
		metrics.RecordStoreFailure("upsert_word")
		return false, fmt.Errorf("upserting word: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("upserting word: %w", err)
	}
	return affected > 0, nil
}

// UpsertWordOverwriteExisting inserts the word or replaces the fields of an
// existing row with the same text.
func (s *SQLiteStore) UpsertWordOverwriteExisting(ctx context.Context, w model.CVCWord) (bool, error) {
	var created bool
	err := s.withTx(ctx, "upsert_word", func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.Get(&exists, `SELECT COUNT(*) > 0 FROM cvc_words WHERE word = ?`, w.Word); err != nil {
			return fmt.Errorf("checking word: %w", err)
		}
		created = !exists
		_, err := tx.Exec(
			`INSERT INTO cvc_words (word, meaning, emoji, category, word_family, vowel_sound, difficulty, sort_order, image_url)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (word) DO UPDATE SET
			   meaning = excluded.meaning, emoji = excluded.emoji, category = excluded.category,
			   word_family = excluded.word_family, vowel_sound = excluded.vowel_sound,
			   difficulty = excluded.difficulty, sort_order = excluded.sort_order,
			   image_url = excluded.image_url`,
			w.Word, w.Meaning, w.Emoji, w.Category, w.WordFamily, w.VowelSound, w.Difficulty, w.SortOrder, w.ImageURL)
		if err != nil {
			return fmt.Errorf("upserting word: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// UpsertSentenceIgnoreExisting inserts the sentence if its text is new.
func (s *SQLiteStore) UpsertSentenceIgnoreExisting(ctx context.Context, sn model.CVCSentence) (bool, error) {
	quiz, err := encodeQuiz(sn.Quiz)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO cvc_sentences (sentence, translation, difficulty, time_limit, sort_order, category, emoji, quiz_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (sentence) DO NOTHING`,
		sn.Sentence, sn.Translation, sn.Difficulty, sn.TimeLimit, sn.SortOrder, sn.Category, sn.Emoji, quiz)
	if err != nil {
		metrics.RecordStoreFailure("upsert_sentence")
		return false, fmt.Errorf("upserting sentence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("upserting sentence: %w", err)
	}
	return affected > 0, nil
}

// UpsertSentenceOverwriteExisting inserts the sentence or replaces the fields
// of an existing row with the same text.
func (s *SQLiteStore) UpsertSentenceOverwriteExisting(ctx context.Context, sn model.CVCSentence) (bool, error) {
	quiz, err := encodeQuiz(sn.Quiz)
	if err != nil {
		return false, err
	}
	var created bool
	err = s.withTx(ctx, "upsert_sentence", func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.Get(&exists, `SELECT COUNT(*) > 0 FROM cvc_sentences WHERE sentence = ?`, sn.Sentence); err != nil {
			return fmt.Errorf("checking sentence: %w", err)
		}
		created = !exists
		_, err := tx.Exec(
			`INSERT INTO cvc_sentences (sentence, translation, difficulty, time_limit, sort_order, category, emoji, quiz_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (sentence) DO UPDATE SET
			   translation = excluded.translation, difficulty = excluded.difficulty,
			   time_limit = excluded.time_limit, sort_order = excluded.sort_order,
			   category = excluded.category, emoji = excluded.emoji, quiz_json = excluded.quiz_json`,
			sn.Sentence, sn.Translation, sn.Difficulty, sn.TimeLimit, sn.SortOrder, sn.Category, sn.Emoji, quiz)
		if err != nil {
			return fmt.Errorf("upserting sentence: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// UpsertStoryIgnoreExisting inserts the story if its title is new.
func (s *SQLiteStore) UpsertStoryIgnoreExisting(ctx context.Context, st model.CVCStory) (bool, error) {
	quiz, err := encodeQuiz(st.Quiz)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO cvc_stories (title, content, explanation, image_url, quiz_json, difficulty, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (title) DO NOTHING`,
		st.Title, st.Content, st.Explanation, st.ImageURL, quiz, st.Difficulty, st.SortOrder)
	if err != nil {
		metrics.RecordStoreFailure("upsert_story")
		return false, fmt.Errorf("upserting story: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("upserting story: %w", err)
	}
	return affected > 0, nil
}

// UpsertStoryOverwriteExisting inserts the story or replaces the fields of an
// existing row with the same title.
func (s *SQLiteStore) UpsertStoryOverwriteExisting(ctx context.Context, st model.CVCStory) (bool, error) {
	quiz, err := encodeQuiz(st.Quiz)
	if err != nil {
		return false, err
	}
	var created bool
	err = s.withTx(ctx, "upsert_story", func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.Get(&exists, `SELECT COUNT(*) > 0 FROM cvc_stories WHERE title = ?`, st.Title); err != nil {
			return fmt.Errorf("checking story: %w", err)
		}
		created = !exists
		_, err := tx.Exec(
			`INSERT INTO cvc_stories (title, content, explanation, image_url, quiz_json, difficulty, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (title) DO UPDATE SET
			   content = excluded.content, explanation = excluded.explanation,
			   image_url = excluded.image_url, quiz_json = excluded.quiz_json,
			   difficulty = excluded.difficulty, sort_order = excluded.sort_order`,
			st.Title, st.Content, st.Explanation, st.ImageURL, quiz, st.Difficulty, st.SortOrder)
		if err != nil {
			return fmt.Errorf("upserting story: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// ResetCatalogs deletes all catalog rows. Student progress is untouched.
func (s *SQLiteStore) ResetCatalogs(ctx context.Context) (int64, error) {
	var removed int64
	err := s.withTx(ctx, "reset_catalogs", func(tx *sqlx.Tx) error {
		for _, table := range []string{"cvc_words", "cvc_sentences", "cvc_stories"} {
			res, err := tx.Exec("DELETE FROM " + table)
			if err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
			removed += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "catalogs reset", logger.Int64("rows_removed", removed))
	return removed, nil
}

// CatalogCounts returns the row counts of the three catalogs.
func (s *SQLiteStore) CatalogCounts(ctx context.Context) (words, sentences, stories int, err error) {
	if err = s.db.GetContext(ctx, &words, `SELECT COUNT(*) FROM cvc_words`); err != nil {
		return 0, 0, 0, fmt.Errorf("counting words: %w", err)
	}
	if err = s.db.GetContext(ctx, &sentences, `SELECT COUNT(*) FROM cvc_sentences`); err != nil {
		return 0, 0, 0, fmt.Errorf("counting sentences: %w", err)
	}
	if err = s.db.GetContext(ctx, &stories, `SELECT COUNT(*) FROM cvc_stories`); err != nil {
		return 0, 0, 0, fmt.Errorf("counting stories: %w", err)
	}
	return words, sentences, stories, nil
}
