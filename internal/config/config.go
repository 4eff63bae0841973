package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "NEWSPULSE_CONFIG"
	listenAddrEnv  = "NEWSPULSE_ADDR"
	newsAPIKeyEnv  = "NEWSAPI_KEY"
	gnewsAPIKeyEnv = "GNEWS_API_KEY"

	defaultCacheTTL     = 3 * time.Minute
	defaultFetchTimeout = 8 * time.Second
)

// Duration unmarshals YAML strings like "3m" or "8s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds high-level settings required across the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Cache     CacheConfig     `yaml:"cache"`
	Providers ProvidersConfig `yaml:"providers"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CacheConfig controls feed cache freshness.
type CacheConfig struct {
	TTL Duration `yaml:"ttl"`
}

// ProvidersConfig groups per-provider credentials and endpoints.
type ProvidersConfig struct {
	Timeout Duration      `yaml:"timeout"` // per upstream sub-call
	NewsAPI NewsAPIConfig `yaml:"newsapi"`
	GNews   GNewsConfig   `yaml:"gnews"`
	RSS     RSSConfig     `yaml:"rss"`
}

// NewsAPIConfig wires the newsapi.org adapter.
type NewsAPIConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

// GNewsConfig wires the gnews.io adapter.
type GNewsConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

// RSSConfig lists the wire feeds polled in global dashboard mode.
type RSSConfig struct {
	Feeds []FeedConfig `yaml:"feeds"`
}

// FeedConfig describes one RSS wire feed. Slug doubles as the sourceId
// used by geo resolution.
type FeedConfig struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
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

	if len(cfg.Providers.RSS.Feeds) == 0 {
		cfg.Providers.RSS.Feeds = defaultConfig().Providers.RSS.Feeds
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(newsAPIKeyEnv); v != "" {
		c.Providers.NewsAPI.APIKey = v
	}

	if v := os.Getenv(gnewsAPIKeyEnv); v != "" {
		c.Providers.GNews.APIKey = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server = override.Server
	}

	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Cache.TTL > 0 {
		base.Cache = override.Cache
	}

	if override.Providers.Timeout > 0 {
		base.Providers.Timeout = override.Providers.Timeout
	}
	if override.Providers.NewsAPI.BaseURL != "" {
		base.Providers.NewsAPI.BaseURL = override.Providers.NewsAPI.BaseURL
	}
	if override.Providers.NewsAPI.APIKey != "" {
		base.Providers.NewsAPI.APIKey = override.Providers.NewsAPI.APIKey
	}
	if override.Providers.GNews.BaseURL != "" {
		base.Providers.GNews.BaseURL = override.Providers.GNews.BaseURL
	}
	if override.Providers.GNews.APIKey != "" {
		base.Providers.GNews.APIKey = override.Providers.GNews.APIKey
	}
	if len(override.Providers.RSS.Feeds) > 0 {
		base.Providers.RSS.Feeds = override.Providers.RSS.Feeds
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Logging: LoggingConfig{Level: "info"},
		Cache:   CacheConfig{TTL: Duration(defaultCacheTTL)},
		Providers: ProvidersConfig{
			Timeout: Duration(defaultFetchTimeout),
			NewsAPI: NewsAPIConfig{BaseURL: "https://newsapi.org/v2"},
			GNews:   GNewsConfig{BaseURL: "https://gnews.io/api/v4"},
			RSS: RSSConfig{
				Feeds: []FeedConfig{
					{Slug: "bbc-news", Name: "BBC News", URL: "https://feeds.bbci.co.uk/news/world/rss.xml"},
					{Slug: "al-jazeera-english", Name: "Al Jazeera English", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
					{Slug: "the-guardian-uk", Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
				},
			},
		},
	}
}
