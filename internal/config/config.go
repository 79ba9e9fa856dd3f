package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Prompts struct {
	Colors string `toml:"colors"`
	Advice string `toml:"advice"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	// Timeout bounds each completion call, e.g. "15s".
	Timeout string `toml:"timeout"`

	ColorMaxTokens  int `toml:"color_max_tokens"`
	AdviceMaxTokens int `toml:"advice_max_tokens"`
	// Temperatures are pointers so an explicit 0 survives ApplyDefaults.
	ColorTemperature  *float32 `toml:"color_temperature"`
	AdviceTemperature *float32 `toml:"advice_temperature"`
}

const (
	defaultColorTemperature  float32 = 0.7
	defaultAdviceTemperature float32 = 0.8
)

// ColorTemp returns the sampling temperature for color suggestions.
func (c LLMConfig) ColorTemp() float32 {
	if c.ColorTemperature == nil {
		return defaultColorTemperature
	}
	return *c.ColorTemperature
}

// AdviceTemp returns the sampling temperature for styling advice.
func (c LLMConfig) AdviceTemp() float32 {
	if c.AdviceTemperature == nil {
		return defaultAdviceTemperature
	}
	return *c.AdviceTemperature
}

// TimeoutDuration parses Timeout, returning zero when it is empty or invalid.
func (c LLMConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

type CatalogConfig struct {
	// Driver is one of "sqlite", "postgres", "memgraph" or "memory".
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ServerConfig struct {
	Port         string   `toml:"port"`
	AllowOrigins []string `toml:"allow_origins"`
}

type LogConfig struct {
	Mode string `toml:"mode"`
}

type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Prompts  Prompts        `toml:"prompts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.Prompts.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides file values with environment variables when present.
func (c *Config) ApplyEnv() {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	override(&c.LLM.Provider, "LLM_PROVIDER")
	override(&c.LLM.Model, "LLM_MODEL")
	override(&c.LLM.APIKey, "LLM_API_KEY")
	override(&c.LLM.BaseURL, "LLM_BASE_URL")
	override(&c.LLM.Timeout, "LLM_TIMEOUT")
	override(&c.Catalog.Driver, "CATALOG_DRIVER")
	override(&c.Catalog.DSN, "CATALOG_DSN")
	override(&c.Memgraph.URI, "MEMGRAPH_URI")
	override(&c.Memgraph.User, "MEMGRAPH_USER")
	override(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")
	override(&c.Server.Port, "PORT")
	override(&c.Log.Mode, "LOG_MODE")

	if v := os.Getenv("LLM_ADVICE_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LLM.AdviceMaxTokens = n
		}
	}
}

// ApplyDefaults fills every value the service cannot run without.
func (c *Config) ApplyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "ollama"
		c.LLM.Model = "gpt-oss:latest"
		c.LLM.BaseURL = "http://localhost:11434"
	}
	if c.LLM.Timeout == "" {
		c.LLM.Timeout = "20s"
	}
	if c.LLM.ColorMaxTokens <= 0 {
		c.LLM.ColorMaxTokens = 60
	}
	if c.LLM.ColorTemperature == nil {
		t := defaultColorTemperature
		c.LLM.ColorTemperature = &t
	}
	if c.LLM.AdviceMaxTokens <= 0 {
		c.LLM.AdviceMaxTokens = 200
	}
	if c.LLM.AdviceTemperature == nil {
		t := defaultAdviceTemperature
		c.LLM.AdviceTemperature = &t
	}

	if c.Catalog.Driver == "" {
		c.Catalog.Driver = "sqlite"
	}
	if c.Catalog.Driver == "sqlite" && c.Catalog.DSN == "" {
		c.Catalog.DSN = "wardrobe.db"
	}
	if c.Memgraph.URI == "" {
		c.Memgraph.URI = "bolt://localhost:7687"
	}

	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"*"}
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "dev"
	}

	if c.Prompts.Colors == "" {
		c.Prompts.Colors = DefaultColorsPrompt
	}
	if c.Prompts.Advice == "" {
		c.Prompts.Advice = DefaultAdvicePrompt
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}
