package ankifile

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexipenia/anki-russian-cards/internal/config"
	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

func newTestWriter(t *testing.T, strip bool) *Writer {
	t.Helper()
	return NewWriter(config.OutputConfig{
		Dir:       t.TempDir(),
		File:      "anki_cards.txt",
		StripHTML: strip,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func card(front, example, translations string) domain.StoredCard {
	return domain.StoredCard{Record: domain.FlashcardRecord{
		Front:        front,
		Example:      example,
		Translations: translations,
	}}
}

func TestWriter_AppendCreatesAndAppends(t *testing.T) {
	t.Parallel()

	w := newTestWriter(t, true)
	ctx := context.Background()

	require.NoError(t, w.Append(ctx, card("говори́ть i", "Я говорю по-русски.", "to speak; to talk")))
	require.NoError(t, w.Append(ctx, card("сто́л", "Книга на столе.", "table")))

	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t,
		"говори́ть i\tЯ говорю по-русски.\tto speak; to talk\n"+
			"сто́л\tКнига на столе.\ttable\n",
		string(data))
}

func TestWriter_AppendKeepsExistingContent(t *testing.T) {
	t.Parallel()

	w := newTestWriter(t, true)
	require.NoError(t, os.WriteFile(w.Path(), []byte("старое\tпример\told\n"), filePerm))

	require.NoError(t, w.Append(context.Background(), card("новое", "", "new")))

	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t, "старое\tпример\told\nновое\t\tnew\n", string(data))
}

func TestWriter_Clean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		strip bool
		in    string
		want  string
	}{
		{name: "plain", strip: true, in: "to speak", want: "to speak"},
		{name: "tab collapsed", strip: true, in: "a\tb", want: "a b"},
		{name: "line breaks collapsed", strip: true, in: "first\r\nsecond\nthird", want: "first second third"},
		{name: "trimmed", strip: true, in: "  слово \n", want: "слово"},
		{name: "markup stripped", strip: true, in: "<b>жи́ть</b> <script>x()</script>", want: "жи́ть"},
		{name: "entities kept as text", strip: true, in: "salt & pepper", want: "salt & pepper"},
		{name: "markup kept when disabled", strip: false, in: "<b>жить</b>", want: "<b>жить</b>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := newTestWriter(t, tt.strip)
			got := w.Clean(domain.FlashcardRecord{Front: tt.in})
			assert.Equal(t, tt.want, got.Front)
		})
	}
}

func TestWriter_LineSplitsIntoThreeFields(t *testing.T) {
	t.Parallel()

	w := newTestWriter(t, true)
	var buf bytes.Buffer
	require.NoError(t, w.Encode(&buf, domain.FlashcardRecord{
		Front:        "жить\ti",
		Example:      "Мы живём\nздесь",
		Translations: "to live;\tto dwell",
	}))

	line := strings.TrimSuffix(buf.String(), "\n")
	assert.NotContains(t, line, "\n")
	fields := strings.Split(line, domain.FieldSeparator)
	require.Len(t, fields, 3)
	assert.Equal(t, []string{"жить i", "Мы живём здесь", "to live; to dwell"}, fields)
}

func TestWriter_AppendRejectsEmptyFront(t *testing.T) {
	t.Parallel()

	w := newTestWriter(t, true)
	err := w.Append(context.Background(), card("  <i></i> ", "пример", "example"))
	require.ErrorIs(t, err, domain.ErrValidation)

	_, statErr := os.Stat(w.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_AppendMissingDir(t *testing.T) {
	t.Parallel()

	w := NewWriter(config.OutputConfig{
		Dir:  filepath.Join(t.TempDir(), "missing"),
		File: "anki_cards.txt",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := w.Append(context.Background(), card("слово", "", "word"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ankifile: open")
}

func TestWriter_AppendCancelled(t *testing.T) {
	t.Parallel()

	w := newTestWriter(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, w.Append(ctx, card("слово", "", "word")), context.Canceled)
}
