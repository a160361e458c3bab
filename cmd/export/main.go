// Command export writes every card in the deck store to an Anki import
// file. It needs DATABASE_DSN (or database.dsn in the config).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/lexipenia/anki-russian-cards/internal/adapter/ankifile"
	"github.com/lexipenia/anki-russian-cards/internal/adapter/postgres"
	"github.com/lexipenia/anki-russian-cards/internal/adapter/postgres/card"
	"github.com/lexipenia/anki-russian-cards/internal/app"
	"github.com/lexipenia/anki-russian-cards/internal/config"
)

func main() {
	outPath := flag.String("out", "-", "output file, - for stdout")
	limit := flag.Int("limit", 0, "export at most this many cards (0 = all)")
	configPath := flag.String("config", "", "config file (default: $CONFIG_PATH, ./config.yaml, then the user config dir)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	if !cfg.Database.Enabled() {
		logger.Error("deck store is not configured, set DATABASE_DSN")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cards, err := card.New(pool, logger).List(ctx, *limit)
	if err != nil {
		logger.Error("list cards", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error("create output", slog.String("path", *outPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := ankifile.NewWriter(cfg.Output, logger)
	written := 0
	for _, c := range cards {
		if err := w.Encode(out, c.Record); err != nil {
			logger.Warn("skip card",
				slog.String("id", c.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		written++
	}

	logger.Info("export complete",
		slog.Int("cards", written),
		slog.Int("skipped", len(cards)-written),
	)
}
