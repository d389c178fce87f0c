package service

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/harf/internal/adapters/repository"
	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/internal/domain/types"
	"github.com/okian/harf/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// mockStore is a hand-rolled repository.Store for unit tests.
type mockStore struct {
	attemptRecord  model.LetterProgress
	attemptCreated bool
	attemptErr     error

	activityProgress model.CVCProgress
	activityErr      error
	gotKind          model.ActivityKind
	gotReadingTime   *float64

	student    model.Student
	studentErr error

	topRows  []types.LeaderboardRow
	gotLimit int
}

func (m *mockStore) RecordLetterAttempt(ctx context.Context, studentName, letter string, score int) (model.LetterProgress, bool, error) {
	return m.attemptRecord, m.attemptCreated, m.attemptErr
}

func (m *mockStore) RecordActivity(ctx context.Context, studentName string, kind model.ActivityKind, points int, readingTime *float64) (model.CVCProgress, bool, error) {
	m.gotKind = kind
	m.gotReadingTime = readingTime
	return m.activityProgress, true, m.activityErr
}

func (m *mockStore) RecalculateStudent(ctx context.Context, studentName string) (model.Student, error) {
	return m.student, m.studentErr
}

func (m *mockStore) StudentByName(ctx context.Context, name string) (model.Student, error) {
	return m.student, m.studentErr
}

func (m *mockStore) TopStudents(ctx context.Context, limit int) ([]types.LeaderboardRow, error) {
	m.gotLimit = limit
	return m.topRows, nil
}

func (m *mockStore) CountStudents(ctx context.Context) (int, error) { return 0, nil }

func (m *mockStore) Words(ctx context.Context) ([]model.CVCWord, error)         { return nil, nil }
func (m *mockStore) Sentences(ctx context.Context) ([]model.CVCSentence, error) { return nil, nil }
func (m *mockStore) Stories(ctx context.Context) ([]model.CVCStory, error)      { return nil, nil }

func (m *mockStore) UpsertWordIgnoreExisting(ctx context.Context, w model.CVCWord) (bool, error) {
	return false, nil
}
func (m *mockStore) UpsertWordOverwriteExisting(ctx context.Context, w model.CVCWord) (bool, error) {
	return false, nil
}
func (m *mockStore) UpsertSentenceIgnoreExisting(ctx context.Context, s model.CVCSentence) (bool, error) {
	return false, nil
}
func (m *mockStore) UpsertSentenceOverwriteExisting(ctx context.Context, s model.CVCSentence) (bool, error) {
	return false, nil
}
func (m *mockStore) UpsertStoryIgnoreExisting(ctx context.Context, st model.CVCStory) (bool, error) {
	return false, nil
}
func (m *mockStore) UpsertStoryOverwriteExisting(ctx context.Context, st model.CVCStory) (bool, error) {
	return false, nil
}
func (m *mockStore) ResetCatalogs(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockStore) CatalogCounts(ctx context.Context) (int, int, int, error) {
	return 0, 0, 0, nil
}
func (m *mockStore) Close() error { return nil }

func newTestService(t *testing.T, store repository.Store) *Service {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	s := New(WithStore(store))
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

func TestRecordLetterAttemptValidation(t *testing.T) {
	Convey("Given a running service", t, func() {
		store := &mockStore{attemptRecord: model.LetterProgress{Letter: "A", Score: 15, Passed: true, Attempts: 1}}
		svc := newTestService(t, store)
		ctx := context.Background()

		Convey("A valid attempt passes through to the store", func() {
			out, err := svc.RecordLetterAttempt(ctx, "Lina", "a", 15)
			So(err, ShouldBeNil)
			So(out.Passed, ShouldBeTrue)
			So(out.Score, ShouldEqual, 15)
		})

		Convey("A blank student name is rejected", func() {
			_, err := svc.RecordLetterAttempt(ctx, "   ", "A", 15)
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("A malformed letter is rejected", func() {
			for _, raw := range []string{"", "AB", "4", "?"} {
				_, err := svc.RecordLetterAttempt(ctx, "Lina", raw, 15)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			}
		})

		Convey("An out-of-range score is rejected", func() {
			for _, score := range []int{-1, 21, 100} {
				_, err := svc.RecordLetterAttempt(ctx, "Lina", "A", score)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			}
		})

		Convey("A gate rejection from the store is passed through untouched", func() {
			store.attemptErr = &repository.PrerequisiteError{RequiredLetter: "B"}
			_, err := svc.RecordLetterAttempt(ctx, "Lina", "C", 15)
			So(errors.Is(err, repository.ErrPrerequisiteNotMet), ShouldBeTrue)
		})
	})
}

func TestRecordActivityValidation(t *testing.T) {
	Convey("Given a running service", t, func() {
		store := &mockStore{activityProgress: model.CVCProgress{WordsCompleted: 1, TotalScore: 40}}
		svc := newTestService(t, store)
		ctx := context.Background()

		Convey("A valid activity passes through", func() {
			out, err := svc.RecordActivity(ctx, "Zain", model.KindWord, 40, nil)
			So(err, ShouldBeNil)
			So(out.TotalScore, ShouldEqual, 40)
			So(store.gotKind, ShouldEqual, model.KindWord)
		})

		Convey("An unknown activity type is rejected", func() {
			_, err := svc.RecordActivity(ctx, "Zain", "poem", 40, nil)
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("Out-of-range points are rejected", func() {
			for _, points := range []int{-5, 1001} {
				_, err := svc.RecordActivity(ctx, "Zain", model.KindWord, points, nil)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			}
		})

		Convey("A non-positive reading time is treated as untimed", func() {
			zero := 0.0
			_, err := svc.RecordActivity(ctx, "Zain", model.KindSentence, 20, &zero)
			So(err, ShouldBeNil)
			So(store.gotReadingTime, ShouldBeNil)
		})

		Convey("A positive reading time reaches the store", func() {
			ts := 12.5
			_, err := svc.RecordActivity(ctx, "Zain", model.KindSentence, 20, &ts)
			So(err, ShouldBeNil)
			So(store.gotReadingTime, ShouldNotBeNil)
			So(*store.gotReadingTime, ShouldEqual, 12.5)
		})
	})
}

func TestLeaderboardLimits(t *testing.T) {
	Convey("Given a service with default limits", t, func() {
		store := &mockStore{}
		svc := newTestService(t, store)
		ctx := context.Background()

		Convey("A non-positive limit uses the default", func() {
			_, err := svc.Leaderboard(ctx, 0)
			So(err, ShouldBeNil)
			So(store.gotLimit, ShouldEqual, 50)
		})

		Convey("An oversized limit is clamped to the cap", func() {
			_, err := svc.Leaderboard(ctx, 5000)
			So(err, ShouldBeNil)
			So(store.gotLimit, ShouldEqual, 100)
		})

		Convey("A reasonable limit is honored", func() {
			_, err := svc.Leaderboard(ctx, 10)
			So(err, ShouldBeNil)
			So(store.gotLimit, ShouldEqual, 10)
		})
	})
}

func TestCertificate(t *testing.T) {
	Convey("Given a service", t, func() {
		store := &mockStore{}
		svc := newTestService(t, store)
		ctx := context.Background()

		Convey("A student short of the full path is not eligible", func() {
			store.student = model.Student{Name: "Lina", TotalScore: 300, LettersCompleted: 20}
			status, err := svc.Certificate(ctx, "Lina")
			So(err, ShouldBeNil)
			So(status.Eligible, ShouldBeFalse)
			So(status.PassedLetters, ShouldEqual, 20)
			So(status.Required, ShouldEqual, 26)
		})

		Convey("A student with every letter passed is eligible", func() {
			store.student = model.Student{Name: "Omar", TotalScore: 480, LettersCompleted: 26}
			status, err := svc.Certificate(ctx, "Omar")
			So(err, ShouldBeNil)
			So(status.Eligible, ShouldBeTrue)
		})

		Convey("An unknown student surfaces ErrNotFound", func() {
			store.studentErr = repository.ErrNotFound
			_, err := svc.Certificate(ctx, "ghost")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}
