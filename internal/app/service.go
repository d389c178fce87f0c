// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	repository "github.com/okian/harf/internal/adapters/repository"
	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/internal/domain/progression"
	"github.com/okian/harf/internal/domain/types"
	"github.com/okian/harf/pkg/logger"
	"github.com/okian/harf/pkg/metrics"
)

// ErrInvalidArgument marks client input rejected before it reaches storage.
var ErrInvalidArgument = errors.New("invalid argument")

// Service implements the API dependencies for the literacy practice system.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	defaultLeaderboardLimit int
	maxLeaderboardLimit     int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the progress store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultLeaderboardLimit sets the leaderboard size used when the caller
// does not ask for one.
func WithDefaultLeaderboardLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.defaultLeaderboardLimit = limit
		}
	}
}

// WithMaxLeaderboardLimit caps the leaderboard size a caller may request.
func WithMaxLeaderboardLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxLeaderboardLimit = limit
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultLeaderboardLimit: 50,
		maxLeaderboardLimit:     100,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start validates the wiring and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.store == nil {
		return errors.New("service requires a store")
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.logger.Info(ctx, "literacy service started",
		logger.Int("defaultLeaderboardLimit", s.defaultLeaderboardLimit),
		logger.Int("maxLeaderboardLimit", s.maxLeaderboardLimit),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "literacy service stopped")
}

// RecordLetterAttempt validates and records one letter quiz attempt.
func (s *Service) RecordLetterAttempt(ctx context.Context, studentName, rawLetter string, score int) (types.AttemptResult, error) {
	start := time.Now()

	name := strings.TrimSpace(studentName)
	if name == "" {
		return types.AttemptResult{}, fmt.Errorf("%w: student name is required", ErrInvalidArgument)
	}
	letter, ok := progression.NormalizeLetter(strings.TrimSpace(rawLetter))
	if !ok {
		return types.AttemptResult{}, fmt.Errorf("%w: letter must be a single character A-Z", ErrInvalidArgument)
	}
	if !progression.ValidLetterScore(score) {
		return types.AttemptResult{}, fmt.Errorf("%w: score must be between 0 and %d", ErrInvalidArgument, progression.MaxLetterScore)
	}

	record, created, err := s.store.RecordLetterAttempt(ctx, name, letter, score)
	if err != nil {
		if errors.Is(err, repository.ErrPrerequisiteNotMet) {
			metrics.RecordGateRejection()
		}
		return types.AttemptResult{}, err
	}

	metrics.RecordLetterAttempt(record.Passed)
	metrics.RecordAttemptLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	s.logger.Debug(ctx, "letter attempt recorded",
		logger.String("student", name),
		logger.String("letter", letter),
		logger.Int("score", record.Score),
		logger.Bool("passed", record.Passed),
	)

	return types.AttemptResult{
		Passed:  record.Passed,
		Score:   record.Score,
		Created: created,
	}, nil
}

// RecordActivity validates and records one CVC activity.
func (s *Service) RecordActivity(ctx context.Context, studentName string, kind model.ActivityKind, points int, readingTime *float64) (types.ActivitySnapshot, error) {
	name := strings.TrimSpace(studentName)
	if name == "" {
		return types.ActivitySnapshot{}, fmt.Errorf("%w: student name is required", ErrInvalidArgument)
	}
	if !kind.Valid() {
		return types.ActivitySnapshot{}, fmt.Errorf("%w: unknown activity type %q", ErrInvalidArgument, kind)
	}
	if !progression.ValidActivityPoints(points) {
		return types.ActivitySnapshot{}, fmt.Errorf("%w: points must be between 0 and %d", ErrInvalidArgument, progression.MaxActivityPoints)
	}
	// A missing or non-positive reading time means the reading was untimed.
	if readingTime != nil && *readingTime <= 0 {
		readingTime = nil
	}

	progress, created, err := s.store.RecordActivity(ctx, name, kind, points, readingTime)
	if err != nil {
		return types.ActivitySnapshot{}, err
	}

	metrics.RecordCVCActivity(string(kind))

	return types.ActivitySnapshot{
		TotalScore:         progress.TotalScore,
		WordsCompleted:     progress.WordsCompleted,
		SentencesCompleted: progress.SentencesCompleted,
		StoriesCompleted:   progress.StoriesCompleted,
		Created:            created,
	}, nil
}

// Leaderboard returns the ranked top students. A non-positive limit falls
// back to the configured default; requests above the cap are clamped.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]types.LeaderboardRow, error) {
	if limit <= 0 {
		limit = s.defaultLeaderboardLimit
	}
	if limit > s.maxLeaderboardLimit {
		limit = s.maxLeaderboardLimit
	}
	return s.store.TopStudents(ctx, limit)
}

// Words returns the word catalog in practice order.
func (s *Service) Words(ctx context.Context) ([]model.CVCWord, error) {
	return s.store.Words(ctx)
}

// Sentences returns the sentence catalog in practice order.
func (s *Service) Sentences(ctx context.Context) ([]model.CVCSentence, error) {
	return s.store.Sentences(ctx)
}

// Stories returns the story catalog in practice order.
func (s *Service) Stories(ctx context.Context) ([]model.CVCStory, error) {
	return s.store.Stories(ctx)
}

// Certificate reports completion-certificate eligibility for a student.
func (s *Service) Certificate(ctx context.Context, studentName string) (types.CertificateStatus, error) {
	name := strings.TrimSpace(studentName)
	if name == "" {
		return types.CertificateStatus{}, fmt.Errorf("%w: student name is required", ErrInvalidArgument)
	}

	student, err := s.store.StudentByName(ctx, name)
	if err != nil {
		return types.CertificateStatus{}, err
	}

	return types.CertificateStatus{
		StudentName:   student.Name,
		Eligible:      progression.CertificateEligible(student.LettersCompleted),
		PassedLetters: student.LettersCompleted,
		Required:      progression.CertificateLetters,
		TotalScore:    student.TotalScore,
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":                 s.started,
		"defaultLeaderboardLimit": s.defaultLeaderboardLimit,
		"maxLeaderboardLimit":     s.maxLeaderboardLimit,
	}

	if !s.started {
		return stats
	}

	if totalStudents, err := s.store.CountStudents(ctx); err == nil {
		stats["totalStudents"] = totalStudents
		metrics.UpdateTotalStudents(totalStudents)
	}
	if words, sentences, stories, err := s.store.CatalogCounts(ctx); err == nil {
		stats["words"] = words
		stats["sentences"] = sentences
		stats["stories"] = stories
	}

	return stats
}
