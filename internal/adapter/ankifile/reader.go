package ankifile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

// ReadRecords parses an import file written by Writer. Blank lines are
// skipped; any other line must carry exactly three fields.
func ReadRecords(r io.Reader) ([]domain.FlashcardRecord, error) {
	var records []domain.FlashcardRecord

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, domain.FieldSeparator)
		if len(fields) != 3 {
			return nil, fmt.Errorf("ankifile: line %d: %w", n,
				domain.NewValidationError("fields", fmt.Sprintf("want 3, got %d", len(fields))))
		}
		records = append(records, domain.FlashcardRecord{
			Front:        fields[0],
			Example:      fields[1],
			Translations: fields[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ankifile: read: %w", err)
	}

	return records, nil
}
