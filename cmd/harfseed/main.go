// Command harfseed installs the built-in practice catalogs into the
// database. The default mode merges and is safe to re-run; --force-reset
// wipes the catalogs first and demands an explicit confirmation phrase.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/harf/internal/adapters/repository"
	"github.com/okian/harf/internal/config"
	"github.com/okian/harf/internal/seeder"
	"github.com/okian/harf/pkg/logger"
)

var (
	dbPath     string
	forceReset bool
	confirm    string
)

var rootCmd = &cobra.Command{
	Use:   "harfseed",
	Short: "Seed the practice content catalogs",
	Long: `Seed the word, sentence and story catalogs with the built-in content.

Existing rows are left untouched, so the command can be re-run at any time.
To discard the current catalogs first, pass --force-reset together with
--confirm "` + seeder.ResetConfirmation + `". Student progress is never touched.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "database file (defaults to the configured db_path)")
	rootCmd.Flags().BoolVar(&forceReset, "force-reset", false, "wipe the catalogs before seeding")
	rootCmd.Flags().StringVar(&confirm, "confirm", "", "confirmation phrase required by --force-reset")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if dbPath == "" {
		cfg, err := config.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		dbPath = cfg.DBPath
	}

	store, err := repository.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	report, err := seeder.New(store).Run(ctx, seeder.Options{
		ForceReset: forceReset,
		Confirm:    confirm,
	})
	if err != nil {
		return err
	}

	if report.ResetApplied {
		fmt.Printf("reset: removed %d rows\n", report.RowsRemoved)
	}
	fmt.Printf("words:     %d created, %d already present\n", report.Words.Created, report.Words.Existing)
	fmt.Printf("sentences: %d created, %d already present\n", report.Sentences.Created, report.Sentences.Existing)
	fmt.Printf("stories:   %d created, %d already present\n", report.Stories.Created, report.Stories.Existing)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
