package ankifile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lexipenia/anki-russian-cards/internal/config"
	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

const filePerm = 0o644

// Writer appends cards to an Anki plain-text import file, one card per
// line with tab-separated fields.
type Writer struct {
	path    string
	cleaner *Cleaner
	log     *slog.Logger
}

// NewWriter creates a Writer for cfg.Path(). Markup is stripped from the
// fields unless cfg.StripHTML is off.
func NewWriter(cfg config.OutputConfig, logger *slog.Logger) *Writer {
	return &Writer{
		path:    cfg.Path(),
		cleaner: NewCleaner(cfg.StripHTML),
		log:     logger.With("adapter", "ankifile"),
	}
}

// Path returns the file the writer appends to.
func (w *Writer) Path() string { return w.path }

// Append writes card as one line at the end of the file, creating the file
// if needed. The file is opened and closed on every call.
func (w *Writer) Append(ctx context.Context, card domain.StoredCard) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := w.line(card.Record)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("ankifile: open %s: %w", w.path, err)
	}
	if _, err := io.WriteString(f, line); err != nil {
		f.Close()
		return fmt.Errorf("ankifile: write %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ankifile: close %s: %w", w.path, err)
	}

	w.log.DebugContext(ctx, "card appended",
		slog.String("path", w.path),
		slog.String("front", card.Record.Front),
	)
	return nil
}

// Encode cleans rec and writes it to dst as a single line.
func (w *Writer) Encode(dst io.Writer, rec domain.FlashcardRecord) error {
	line, err := w.line(rec)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(dst, line); err != nil {
		return fmt.Errorf("ankifile: write: %w", err)
	}
	return nil
}

func (w *Writer) line(rec domain.FlashcardRecord) (string, error) {
	rec = w.Clean(rec)
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("ankifile: %w", err)
	}
	return rec.Line(), nil
}

// Clean applies the writer's Cleaner to rec.
func (w *Writer) Clean(rec domain.FlashcardRecord) domain.FlashcardRecord {
	return w.cleaner.Clean(rec)
}
