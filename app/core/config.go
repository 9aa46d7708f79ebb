package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/postpilot-ai/postpilot/app/core/srv"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}
	conf.ApplyDefaults()

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.ApplyDefaults()
	return c
}

type CoreConfig struct {
	Addr     string      `toml:"addr"`
	Log      Log         `toml:"log"`
	Postgres PGConfig    `toml:"postgres"`
	Redis    RedisConfig `toml:"redis"`

	AI        srv.AIConfig    `toml:"ai"`
	Knowledge KnowledgeConfig `toml:"knowledge"`
	Retrieval RetrievalConfig `toml:"retrieval"`

	Security Security     `toml:"security"`
	Limits   LimitsConfig `toml:"limits"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("POSTPILOT_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
	c.AI.FromENV()
	c.Knowledge.FromENV()
	c.Security.JWTSecret = os.Getenv("POSTPILOT_API_JWT_SECRET")
}

func (c *CoreConfig) ApplyDefaults() {
	c.Retrieval.ApplyDefaults()
	if c.Limits.GeneratePerMinute == 0 {
		c.Limits.GeneratePerMinute = 10
	}
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("POSTPILOT_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (m *RedisConfig) FromENV() {
	m.Addr = os.Getenv("POSTPILOT_API_REDIS_ADDR")
	m.Password = os.Getenv("POSTPILOT_API_REDIS_PASSWORD")
	if db, err := strconv.Atoi(os.Getenv("POSTPILOT_API_REDIS_DB")); err == nil {
		m.DB = db
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("POSTPILOT_API_LOG_LEVEL")
	l.Path = os.Getenv("POSTPILOT_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

type Security struct {
	JWTSecret string `toml:"jwt_secret"`
}

type LimitsConfig struct {
	GeneratePerMinute int `toml:"generate_per_minute"`
}

type KnowledgeConfig struct {
	// Dir holds the markdown source documents.
	Dir string `toml:"dir"`
	// Strict fails processing when a document yields fewer chunks than its
	// section table expects, instead of silently skipping renamed headings.
	Strict bool `toml:"strict"`
}

func (k *KnowledgeConfig) FromENV() {
	k.Dir = os.Getenv("POSTPILOT_API_KNOWLEDGE_DIR")
}

// CategoryPriority is one row of the ordered compression table: which chunk
// category lands in the context block, in which position, and how many chunks
// it may contribute.
type CategoryPriority struct {
	Category  types.ChunkCategory `toml:"category"`
	MaxChunks int                 `toml:"max_chunks"`
}

type RetrievalConfig struct {
	// TopK bounds prompt token cost; the compression table bounds it again.
	TopK int `toml:"top_k"`
	// MaxContextTokens caps the assembled knowledge block.
	MaxContextTokens int `toml:"max_context_tokens"`
	// DiversityInstruction is appended to every context block. Configuration,
	// not retrieved content; empty means use the built-in default.
	DiversityInstruction string `toml:"diversity_instruction"`
	// Priorities is the ordered category table. New categories are added here,
	// not in control flow.
	Priorities []CategoryPriority `toml:"priorities"`
}

func (r *RetrievalConfig) ApplyDefaults() {
	if r.TopK == 0 {
		r.TopK = 3
	}
	if r.MaxContextTokens == 0 {
		r.MaxContextTokens = 1200
	}
	if len(r.Priorities) == 0 {
		r.Priorities = []CategoryPriority{
			{Category: types.CHUNK_CATEGORY_POST_TYPE, MaxChunks: 1},
			{Category: types.CHUNK_CATEGORY_STYLE, MaxChunks: 1},
			{Category: types.CHUNK_CATEGORY_HOOK, MaxChunks: 1},
		}
	}
}
