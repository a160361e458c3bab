// Package gtranslate talks to the Google Translate web RPC (batchexecute,
// rpc id MkEWBc). The same request backs both the structured translations
// shape and the raw payload used for root discovery.
package gtranslate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/lexipenia/anki-russian-cards/internal/config"
	"github.com/lexipenia/anki-russian-cards/internal/provider"
)

const (
	batchPath = "/_/TranslateWebserverUi/data/batchexecute"
	rpcID     = "MkEWBc"
	xssiGuard = ")]}'"
)

// ErrNoPayload is returned when the response holds no MkEWBc row.
var ErrNoPayload = errors.New("gtranslate: no translation payload in response")

// Client fetches translations for one language pair.
type Client struct {
	http       *resty.Client
	sourceLang string
	targetLang string
	log        *slog.Logger
}

// NewClient creates a Client from TranslateConfig. Requests are never retried.
func NewClient(cfg config.TranslateConfig, logger *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{
		http:       rc,
		sourceLang: cfg.SourceLang,
		targetLang: cfg.TargetLang,
		log:        logger.With("adapter", "gtranslate"),
	}
}

// FetchStructured returns the translations of word grouped by part of speech.
func (c *Client) FetchStructured(ctx context.Context, word string) (provider.TranslationBundle, error) {
	doc, err := c.fetch(ctx, word)
	if err != nil {
		return provider.TranslationBundle{Word: word}, err
	}

	bundle := toBundle(word, doc)

	c.log.DebugContext(ctx, "gtranslate structured response",
		slog.String("word", word),
		slog.Int("groups", len(bundle.Groups)),
	)

	return bundle, nil
}

// FetchRaw returns the undecoded payload for word.
func (c *Client) FetchRaw(ctx context.Context, word string) (provider.RawLookup, error) {
	doc, err := c.fetch(ctx, word)
	if err != nil {
		return nil, err
	}
	return RawResponse{doc: doc}, nil
}

func (c *Client) fetch(ctx context.Context, word string) (gjson.Result, error) {
	freq, err := c.buildRequest(word)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("gtranslate: build request: %w", err)
	}

	c.log.DebugContext(ctx, "gtranslate request", slog.String("word", word))

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"rpcids": rpcID,
			"rt":     "c",
		}).
		SetFormData(map[string]string{"f.req": freq}).
		Post(batchPath)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("gtranslate: request failed: %w", err)
	}

	if resp.IsError() {
		return gjson.Result{}, fmt.Errorf("gtranslate: unexpected status %d", resp.StatusCode())
	}

	payload, err := extractPayload(resp.Body())
	if err != nil {
		return gjson.Result{}, err
	}

	return gjson.Parse(payload), nil
}

// buildRequest encodes the f.req form value:
// [[["MkEWBc","[[word,src,dst,true],[null]]",null,"generic"]]]
func (c *Client) buildRequest(word string) (string, error) {
	inner, err := json.Marshal([]any{
		[]any{word, c.sourceLang, c.targetLang, true},
		[]any{nil},
	})
	if err != nil {
		return "", err
	}

	outer, err := json.Marshal([]any{[]any{[]any{rpcID, string(inner), nil, "generic"}}})
	if err != nil {
		return "", err
	}
	return string(outer), nil
}

// extractPayload finds the wrb.fr row for MkEWBc in a chunked batchexecute
// body and returns its embedded JSON document.
func extractPayload(body []byte) (string, error) {
	body = bytes.TrimPrefix(bytes.TrimSpace(body), []byte(xssiGuard))

	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "[") || !gjson.Valid(line) {
			continue
		}

		var payload string
		eachElem(gjson.Parse(line), func(row gjson.Result) {
			if payload != "" {
				return
			}
			if row.Get("0").String() == "wrb.fr" && row.Get("1").String() == rpcID {
				payload = row.Get("2").String()
			}
		})
		if payload != "" {
			return payload, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("gtranslate: scan response: %w", err)
	}
	return "", ErrNoPayload
}
