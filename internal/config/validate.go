package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validateBaseURL(c.Translate.BaseURL); err != nil {
		return fmt.Errorf("translate.base_url: %w", err)
	}
	if c.Translate.SourceLang == "" || c.Translate.TargetLang == "" {
		return fmt.Errorf("translate: source_lang and target_lang are required")
	}
	if c.Translate.Timeout < 0 {
		return fmt.Errorf("translate.timeout must be >= 0 (got %v)", c.Translate.Timeout)
	}

	if err := validateBaseURL(c.Wiktionary.BaseURL); err != nil {
		return fmt.Errorf("wiktionary.base_url: %w", err)
	}
	if c.Wiktionary.Timeout < 0 {
		return fmt.Errorf("wiktionary.timeout must be >= 0 (got %v)", c.Wiktionary.Timeout)
	}

	if strings.TrimSpace(c.Output.File) == "" {
		return fmt.Errorf("output.file is required")
	}

	if c.Database.Enabled() {
		if c.Database.MaxConns <= 0 {
			return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
		}
		if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns must be within [0, max_conns] (got %d)", c.Database.MinConns)
		}
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required (got %q)", raw)
	}
	return nil
}
