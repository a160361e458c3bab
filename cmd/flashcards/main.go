// Command flashcards builds Anki cards for Russian vocabulary interactively.
// It looks up the dictionary form and English translations of each entered
// word, marks stress and verb aspect, asks for an example sentence and
// appends the confirmed card to the Anki import file.
//
// Exit codes: 0 = session ended normally, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lexipenia/anki-russian-cards/internal/app"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	envFile := flag.String("env-file", ".env", "optional dotenv file loaded before the config")
	configPath := flag.String("config", "", "config file (default: $CONFIG_PATH, ./config.yaml, then the user config dir)")
	flag.Parse()

	if *showVersion {
		fmt.Println(app.BuildVersion())
		return
	}

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		slog.Error("load env file", slog.String("path", *envFile), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath, os.Stdin, os.Stdout); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
