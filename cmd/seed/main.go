// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed fills the authors table with fake rows for local development.
//
// It reuses the API configuration (DATABASE_URL, MIGRATION_PATH), applies
// pending migrations, then creates --count authors through the same service
// the API uses, so every row passes the create validation.
package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/authors/internal/author"
	"github.com/taibuivan/authors/internal/platform/config"
	"github.com/taibuivan/authors/internal/platform/constants"
	"github.com/taibuivan/authors/internal/platform/migration"
	pgstore "github.com/taibuivan/authors/internal/platform/postgres"
)

const defaultCount = 30

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).
		With(slog.String("app", constants.AppName), slog.String("command", "seed"))

	if err := newRootCommand(log).Execute(); err != nil {
		log.Error("seed_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCommand(log *slog.Logger) *cobra.Command {
	var (
		count int
		seed  uint64
	)

	command := &cobra.Command{
		Use:   "seed",
		Short: "Fill the authors table with fake rows",
		Long: `Apply pending migrations, then create fake authors through the same
service the API uses. Configuration is read from the API environment
(DATABASE_URL, MIGRATION_PATH).

Examples:
  seed                  # 30 authors, random data
  seed --count 500      # 500 authors
  seed --seed 42        # reproducible data`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			return run(cmd.Context(), log, count, seed)
		},
	}

	command.Flags().IntVarP(&count, "count", "n", defaultCount, "number of fake authors to create")
	command.Flags().Uint64Var(&seed, "seed", 0, "random seed, for reproducible data (default: current time)")

	return command
}

func run(parent context.Context, log *slog.Logger, count int, seed uint64) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(parent, 2*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return err
	}

	service := author.NewService(author.NewPostgresRepository(pool), nil, log)
	created, err := Seed(ctx, service, rand.New(rand.NewPCG(seed, seed)), count)
	if err != nil {
		return err
	}

	log.Info("seed_completed", slog.Int("created", created), slog.Uint64("seed", seed))
	return nil
}

// Seed creates count fake authors and returns how many were written.
func Seed(ctx context.Context, service *author.Service, rng *rand.Rand, count int) (int, error) {
	for i := 0; i < count; i++ {
		if _, err := service.CreateAuthor(ctx, author.Fake(rng)); err != nil {
			return i, err
		}
	}
	return count, nil
}
