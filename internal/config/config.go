package config

import (
	"path/filepath"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Translate  TranslateConfig  `yaml:"translate"`
	Wiktionary WiktionaryConfig `yaml:"wiktionary"`
	Output     OutputConfig     `yaml:"output"`
	Session    SessionConfig    `yaml:"session"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
}

// TranslateConfig holds translation provider settings.
// A zero Timeout disables the client-side deadline.
type TranslateConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"TRANSLATE_BASE_URL"    env-default:"https://translate.google.com"`
	SourceLang string        `yaml:"source_lang" env:"TRANSLATE_SOURCE_LANG" env-default:"ru"`
	TargetLang string        `yaml:"target_lang" env:"TRANSLATE_TARGET_LANG" env-default:"en"`
	Timeout    time.Duration `yaml:"timeout"     env:"TRANSLATE_TIMEOUT"     env-default:"15s"`
	UserAgent  string        `yaml:"user_agent"  env:"TRANSLATE_USER_AGENT"  env-default:"Mozilla/5.0 (X11; Linux x86_64) anki-russian-cards"`
}

// WiktionaryConfig holds dictionary wiki settings.
type WiktionaryConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"WIKTIONARY_BASE_URL"   env-default:"https://ru.wiktionary.org"`
	Timeout   time.Duration `yaml:"timeout"    env:"WIKTIONARY_TIMEOUT"    env-default:"15s"`
	UserAgent string        `yaml:"user_agent" env:"WIKTIONARY_USER_AGENT" env-default:"anki-russian-cards/1.0 (flashcard builder)"`
}

// OutputConfig holds Anki import file settings.
type OutputConfig struct {
	Dir       string `yaml:"dir"        env:"OUTPUT_DIR"        env-default:"."`
	File      string `yaml:"file"       env:"OUTPUT_FILE"       env-default:"anki_cards.txt"`
	StripHTML bool   `yaml:"strip_html" env:"OUTPUT_STRIP_HTML" env-default:"true"`
}

// Path returns the full path of the Anki import file.
func (c OutputConfig) Path() string {
	return filepath.Join(c.Dir, c.File)
}

// SessionConfig holds interactive session settings.
// An empty QuitCommand leaves EOF and interrupts as the only ways out.
type SessionConfig struct {
	QuitCommand string `yaml:"quit_command" env:"SESSION_QUIT_COMMAND" env-default:":q"`
}

// DatabaseConfig holds PostgreSQL deck store settings.
// The store is disabled when DSN is empty.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// Enabled reports whether the deck store is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.DSN != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
