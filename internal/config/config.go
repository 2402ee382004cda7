package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "INFOHUB_CONFIG"
	modelEnv      = "INFOHUB_MODEL"
	logLevelEnv   = "INFOHUB_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	LLM     LLMConfig     `yaml:"llm"`
	Sources SourcesConfig `yaml:"sources"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LLMConfig selects the provider/model string consumed by the agent framework
// (e.g. "gemini-2.5-flash", "openai/gpt-4o-mini", "mock"). Provider API keys
// come from the framework's own environment variables.
type LLMConfig struct {
	Model string `yaml:"model"`
}

// SourcesConfig groups the fixed upstream endpoints the extractors hit.
type SourcesConfig struct {
	HackerNews HackerNewsConfig `yaml:"hackernews"`
	Trending   TrendingConfig   `yaml:"trending"`
	Feed       FeedConfig       `yaml:"feed"`
}

// HackerNewsConfig describes the news-aggregator front page.
type HackerNewsConfig struct {
	URL string `yaml:"url"`
}

// TrendingConfig describes the trending-repositories page. LinkHost is the
// prefix used to absolutize the relative repository hrefs found on the page.
type TrendingConfig struct {
	URL      string `yaml:"url"`
	LinkHost string `yaml:"linkHost"`
}

// FeedConfig describes the RSS feed endpoint and its single alternate URL
// tried once when the primary responds with a non-200 status.
type FeedConfig struct {
	URL            string `yaml:"url"`
	AlternateURL   string `yaml:"alternateUrl"`
	Referer        string `yaml:"referer"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	MaxItems       int    `yaml:"maxItems"`
}

// Timeout resolves the request timeout, defaulting to 10 seconds.
func (f FeedConfig) Timeout() time.Duration {
	if f.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(modelEnv); v != "" {
		c.LLM.Model = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.LLM.Model != "" {
		base.LLM.Model = override.LLM.Model
	}

	if override.Sources.HackerNews.URL != "" {
		base.Sources.HackerNews.URL = override.Sources.HackerNews.URL
	}

	if override.Sources.Trending.URL != "" {
		base.Sources.Trending.URL = override.Sources.Trending.URL
	}
	if override.Sources.Trending.LinkHost != "" {
		base.Sources.Trending.LinkHost = override.Sources.Trending.LinkHost
	}

	if override.Sources.Feed.URL != "" {
		base.Sources.Feed.URL = override.Sources.Feed.URL
	}
	if override.Sources.Feed.AlternateURL != "" {
		base.Sources.Feed.AlternateURL = override.Sources.Feed.AlternateURL
	}
	if override.Sources.Feed.Referer != "" {
		base.Sources.Feed.Referer = override.Sources.Feed.Referer
	}
	if override.Sources.Feed.TimeoutSeconds > 0 {
		base.Sources.Feed.TimeoutSeconds = override.Sources.Feed.TimeoutSeconds
	}
	if override.Sources.Feed.MaxItems > 0 {
		base.Sources.Feed.MaxItems = override.Sources.Feed.MaxItems
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		LLM:     LLMConfig{Model: "gemini-2.5-flash"},
		Sources: SourcesConfig{
			HackerNews: HackerNewsConfig{URL: "https://news.ycombinator.com/"},
			Trending: TrendingConfig{
				URL:      "https://github.com/trending",
				LinkHost: "https://github.com",
			},
			Feed: FeedConfig{
				URL:            "https://www.deped.gov.ph/feed/",
				AlternateURL:   "https://www.deped.gov.ph/feed",
				Referer:        "https://www.deped.gov.ph/",
				TimeoutSeconds: 10,
				MaxItems:       10,
			},
		},
	}
}
