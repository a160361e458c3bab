package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lexipenia/anki-russian-cards/internal/adapter/ankifile"
	"github.com/lexipenia/anki-russian-cards/internal/adapter/console"
	"github.com/lexipenia/anki-russian-cards/internal/adapter/postgres"
	"github.com/lexipenia/anki-russian-cards/internal/adapter/postgres/card"
	"github.com/lexipenia/anki-russian-cards/internal/adapter/provider/gtranslate"
	"github.com/lexipenia/anki-russian-cards/internal/adapter/provider/wiktionary"
	"github.com/lexipenia/anki-russian-cards/internal/config"
	"github.com/lexipenia/anki-russian-cards/internal/service/resolver"
	"github.com/lexipenia/anki-russian-cards/internal/service/session"
)

// Run is the application entry point. It loads configuration from
// configPath (empty means the default search), initializes the logger, and
// runs the interactive session over in and out until it ends.
func Run(ctx context.Context, configPath string, in io.Reader, out io.Writer) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("output", cfg.Output.Path()),
		slog.Bool("deck_store", cfg.Database.Enabled()),
	)

	return run(ctx, cfg, logger, in, out)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	writers := []session.CardWriter{ankifile.NewWriter(cfg.Output, logger)}

	if cfg.Database.Enabled() {
		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
				return err
			}
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		writers = append(writers, card.New(pool, logger))
	}

	prompt := console.NewPrompter(in, out)
	defer prompt.Close()
	translator := gtranslate.NewClient(cfg.Translate, logger)
	accents := wiktionary.NewClient(cfg.Wiktionary, nil, logger)
	roots := resolver.NewService(logger, translator, prompt)

	cleaner := ankifile.NewCleaner(cfg.Output.StripHTML)

	return session.New(logger, cfg.Session, roots, accents, cleaner, prompt, writers...).Run(ctx)
}
