package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the research assistant.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Search    SearchConfig    `mapstructure:"search"`
	Crawl     CrawlConfig     `mapstructure:"crawl"`
	Research  ResearchConfig  `mapstructure:"research"`
	Report    ReportConfig    `mapstructure:"report"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	Debug          bool          `mapstructure:"debug"`
	LogLevel       string        `mapstructure:"log_level"`
	OutputDir      string        `mapstructure:"output_dir"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// LLMConfig contains LLM provider configuration.
type LLMConfig struct {
	Providers map[string]LLMProvider `mapstructure:"providers"`
	Routing   LLMRoutingConfig       `mapstructure:"routing"`
}

// LLMProvider represents a single LLM provider configuration.
type LLMProvider struct {
	Type    string              `mapstructure:"type"` // openai, anthropic, etc.
	APIKey  string              `mapstructure:"api_key"`
	BaseURL string              `mapstructure:"base_url"`
	Models  map[string]LLMModel `mapstructure:"models"`
	Timeout time.Duration       `mapstructure:"timeout"`
}

// LLMModel represents a specific model configuration.
type LLMModel struct {
	Name        string  `mapstructure:"name"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// LLMRoutingConfig defines which configured model serves each model class,
// plus the embedding model name.
type LLMRoutingConfig struct {
	Reasoning   string `mapstructure:"reasoning"`   // query generation, ToC planning
	Summarizing string `mapstructure:"summarizing"` // crawl summaries, report sections
	Drafting    string `mapstructure:"drafting"`    // general drafting tasks
	Embedding   string `mapstructure:"embedding"`   // text embedding model
}

// SearchConfig controls web-search behaviour.
type SearchConfig struct {
	Provider           string `mapstructure:"provider"` // serper or brave
	SerperAPIKey       string `mapstructure:"serper_api_key"`
	BraveAPIKey        string `mapstructure:"brave_api_key"`
	ResultsPerQuery    int    `mapstructure:"results_per_query"`
	MaxQueriesResearch int    `mapstructure:"max_queries_research"`
	MaxQueriesEvidence int    `mapstructure:"max_queries_evidence"`
}

// CrawlConfig controls page fetching and content filtering.
type CrawlConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxChars        int           `mapstructure:"max_chars"`
	MinSectionWords int           `mapstructure:"min_section_words"`
}

// ResearchConfig controls the recursive research loop.
type ResearchConfig struct {
	Depth                int `mapstructure:"depth"`
	MaxFollowupQuestions int `mapstructure:"max_followup_questions"`
	EmbedWindow          int `mapstructure:"embed_window"` // max in-flight embedding calls
}

// ReportConfig controls report assembly.
type ReportConfig struct {
	BlockSentences   int `mapstructure:"block_sentences"`    // sentences per block
	TopKReferences   int `mapstructure:"top_k_references"`   // similarity-selected refs per block
	MaxEvidenceRefs  int `mapstructure:"max_evidence_refs"`  // refs the evidence prompt may keep
	MaxTocSections   int `mapstructure:"max_toc_sections"`   // main sections in the ToC
	SectionMinWords  int `mapstructure:"section_min_words"`  // target length per drafted section
	AppendixLinkCap  int `mapstructure:"appendix_link_cap"`  // 0 = unlimited
	AnnotateParallel int `mapstructure:"annotate_parallel"`  // 0 = unbounded fan-out
}

// StorageConfig contains session-store settings.
type StorageConfig struct {
	Store    string      `mapstructure:"store"` // inmemory or redis
	Redis    RedisConfig `mapstructure:"redis"`
	TTLHours int         `mapstructure:"ttl_hours"`
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Pass string `mapstructure:"password"`
	DB   int    `mapstructure:"db"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// TelemetryConfig contains metrics settings.
type TelemetryConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MetricsPort int  `mapstructure:"metrics_port"`
}

func (t TelemetryConfig) Validate() error {
	if t.Enabled && t.MetricsPort <= 0 {
		return fmt.Errorf("telemetry.metrics_port must be > 0 when telemetry is enabled")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.output_dir", "output")
	viper.SetDefault("general.default_timeout", "90s")

	viper.SetDefault("llm.routing.reasoning", "reasoning")
	viper.SetDefault("llm.routing.summarizing", "summarizing")
	viper.SetDefault("llm.routing.drafting", "summarizing")
	viper.SetDefault("llm.routing.embedding", "text-embedding-3-small")

	viper.SetDefault("search.provider", "serper")
	viper.SetDefault("search.results_per_query", 5)
	viper.SetDefault("search.max_queries_research", 5)
	viper.SetDefault("search.max_queries_evidence", 3)

	viper.SetDefault("crawl.timeout", "15s")
	viper.SetDefault("crawl.max_chars", 20000)
	viper.SetDefault("crawl.min_section_words", 20)

	viper.SetDefault("research.depth", 2)
	viper.SetDefault("research.max_followup_questions", 5)
	viper.SetDefault("research.embed_window", 2000)

	viper.SetDefault("report.block_sentences", 3)
	viper.SetDefault("report.top_k_references", 5)
	viper.SetDefault("report.max_evidence_refs", 5)
	viper.SetDefault("report.max_toc_sections", 8)
	viper.SetDefault("report.section_min_words", 3000)

	viper.SetDefault("storage.store", "inmemory")
	viper.SetDefault("storage.redis.host", "localhost")
	viper.SetDefault("storage.redis.port", "6379")
	viper.SetDefault("storage.ttl_hours", 48)
}

// LoadConfig loads config from file, with RESEARCHPAL_* env overrides.
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	setDefaults()

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("RESEARCHPAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional: defaults plus env vars are enough to run.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Telemetry.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
