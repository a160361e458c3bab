// Package wiktionary looks up stress marks and verb aspect on ru.wiktionary.org.
package wiktionary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/lexipenia/anki-russian-cards/internal/config"
	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

const pagePath = "/wiki/{word}"

// Client fetches dictionary pages and delegates headword extraction.
type Client struct {
	http      *resty.Client
	extractor AccentExtractor
	log       *slog.Logger
}

// NewClient creates a Client. A nil extractor selects ParagraphExtractor.
func NewClient(cfg config.WiktionaryConfig, extractor AccentExtractor, logger *slog.Logger) *Client {
	if extractor == nil {
		extractor = NewParagraphExtractor()
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{
		http:      rc,
		extractor: extractor,
		log:       logger.With("adapter", "wiktionary"),
	}
}

// LookupAccent returns the accented form of word, or word itself when the
// page is missing, unreachable, or has no headword. It never fails.
func (c *Client) LookupAccent(ctx context.Context, word string) domain.AccentedForm {
	form, err := c.FetchAccent(ctx, word)
	if err == nil {
		return form
	}

	if errors.Is(err, domain.ErrNotFound) {
		c.log.InfoContext(ctx, "no accent information found", slog.String("word", word))
	} else {
		c.log.ErrorContext(ctx, "wiktionary lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}
	return domain.PlainForm(word)
}

// FetchAccent fetches the page for word and extracts its headword.
// Returns domain.ErrNotFound on HTTP 404 or when the page has no headword.
func (c *Client) FetchAccent(ctx context.Context, word string) (domain.AccentedForm, error) {
	c.log.DebugContext(ctx, "wiktionary request", slog.String("word", word))

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("word", strings.ReplaceAll(word, " ", "_")).
		Get(pagePath)
	if err != nil {
		return domain.AccentedForm{}, fmt.Errorf("wiktionary: request failed: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return domain.AccentedForm{}, fmt.Errorf("wiktionary: page %q: %w", word, domain.ErrNotFound)
	}
	if resp.IsError() {
		return domain.AccentedForm{}, fmt.Errorf("wiktionary: unexpected status %d", resp.StatusCode())
	}

	form, ok, err := c.extractor.Extract(bytes.NewReader(resp.Body()))
	if err != nil {
		return domain.AccentedForm{}, err
	}
	if !ok {
		return domain.AccentedForm{}, fmt.Errorf("wiktionary: page %q has no headword: %w", word, domain.ErrNotFound)
	}

	c.log.DebugContext(ctx, "wiktionary response",
		slog.String("word", word),
		slog.String("stressed", form.Stressed),
		slog.String("aspect", form.Aspect.String()),
	)

	return form, nil
}
