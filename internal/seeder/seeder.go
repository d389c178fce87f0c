// Package seeder installs the built-in practice catalogs. The default mode
// merges: rows already present keep their fields and seeding can be re-run
// any number of times without changing the result. A destructive re-seed
// wipes the catalogs first and requires an explicit confirmation phrase.
package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/pkg/logger"
	"github.com/okian/harf/pkg/metrics"
)

// ResetConfirmation is the phrase a caller must supply to allow a destructive
// re-seed.
const ResetConfirmation = "delete all catalog content"

// ErrResetNotConfirmed is returned when a reset is requested without the
// confirmation phrase.
var ErrResetNotConfirmed = errors.New("catalog reset not confirmed")

// CatalogStore is the slice of the repository the seeder writes through.
type CatalogStore interface {
	UpsertWordIgnoreExisting(ctx context.Context, w model.CVCWord) (bool, error)
	UpsertSentenceIgnoreExisting(ctx context.Context, s model.CVCSentence) (bool, error)
	UpsertStoryIgnoreExisting(ctx context.Context, st model.CVCStory) (bool, error)
	ResetCatalogs(ctx context.Context) (int64, error)
	CatalogCounts(ctx context.Context) (words, sentences, stories int, err error)
}

// Counts is the per-catalog seeding outcome.
type Counts struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
}

// Report summarizes one seeding run.
type Report struct {
	Words        Counts `json:"words"`
	Sentences    Counts `json:"sentences"`
	Stories      Counts `json:"stories"`
	RowsRemoved  int64  `json:"rows_removed,omitempty"`
	ResetApplied bool   `json:"reset_applied"`
}

// Options controls a seeding run.
type Options struct {
	// ForceReset wipes the catalogs before seeding. Confirm must equal
	// ResetConfirmation or the run fails before touching anything.
	ForceReset bool
	Confirm    string
}

// Seeder installs catalog content through a CatalogStore.
type Seeder struct {
	store  CatalogStore
	logger logger.Logger
}

// New returns a Seeder writing through store.
func New(store CatalogStore) *Seeder {
	return &Seeder{
		store:  store,
		logger: logger.Named("seeder"),
	}
}

// Run seeds the catalogs and reports what happened. In merge mode (the
// default) existing rows are never modified, so partial prior runs and
// operator edits survive. Re-running is always safe.
func (s *Seeder) Run(ctx context.Context, opts Options) (Report, error) {
	var report Report

	if opts.ForceReset {
		if opts.Confirm != ResetConfirmation {
			return Report{}, fmt.Errorf("%w: pass --confirm %q", ErrResetNotConfirmed, ResetConfirmation)
		}
		removed, err := s.store.ResetCatalogs(ctx)
		if err != nil {
			return Report{}, fmt.Errorf("resetting catalogs: %w", err)
		}
		report.RowsRemoved = removed
		report.ResetApplied = true
		s.logger.Warn(ctx, "catalogs wiped before seeding", logger.Int64("rows_removed", removed))
	}

	for _, w := range defaultWords() {
		created, err := s.store.UpsertWordIgnoreExisting(ctx, w)
		if err != nil {
			return report, fmt.Errorf("seeding word %q: %w", w.Word, err)
		}
		report.Words.tally(created)
	}
	for _, sn := range defaultSentences() {
		created, err := s.store.UpsertSentenceIgnoreExisting(ctx, sn)
		if err != nil {
			return report, fmt.Errorf("seeding sentence %q: %w", sn.Sentence, err)
		}
		report.Sentences.tally(created)
	}
	for _, st := range defaultStories() {
		created, err := s.store.UpsertStoryIgnoreExisting(ctx, st)
		if err != nil {
			return report, fmt.Errorf("seeding story %q: %w", st.Title, err)
		}
		report.Stories.tally(created)
	}

	metrics.RecordSeededRows("words", "created", report.Words.Created)
	metrics.RecordSeededRows("words", "existing", report.Words.Existing)
	metrics.RecordSeededRows("sentences", "created", report.Sentences.Created)
	metrics.RecordSeededRows("sentences", "existing", report.Sentences.Existing)
	metrics.RecordSeededRows("stories", "created", report.Stories.Created)
	metrics.RecordSeededRows("stories", "existing", report.Stories.Existing)

	s.logger.Info(ctx, "seeding complete",
		logger.Int("words_created", report.Words.Created),
		logger.Int("words_existing", report.Words.Existing),
		logger.Int("sentences_created", report.Sentences.Created),
		logger.Int("sentences_existing", report.Sentences.Existing),
		logger.Int("stories_created", report.Stories.Created),
		logger.Int("stories_existing", report.Stories.Existing))

	return report, nil
}

func (c *Counts) tally(created bool) {
	if created {
		c.Created++
	} else {
		c.Existing++
	}
}
