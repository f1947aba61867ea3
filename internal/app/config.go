package app

import (
	"fmt"
	"strings"

	coreconfig "github.com/m3rciful/guidebot/core/config"
	coredatabase "github.com/m3rciful/guidebot/core/database"
)

const (
	// SourceFile reads the guide catalog from a JSON or YAML file.
	SourceFile = "file"
	// SourcePostgres reads the guide catalog from the guides table.
	SourcePostgres = "postgres"
)

// ChannelConfig identifies the channel whose members may download guides.
type ChannelConfig struct {
	// ID is "@username" or a numeric id such as -1001234567890.
	ID string `yaml:"id" envconfig:"CHANNEL_ID"`
	// URL is the public link; derived from ID when it is a username.
	URL string `yaml:"url" envconfig:"CHANNEL_URL"`
}

// GuidesConfig locates the guide catalog and the files it references.
type GuidesConfig struct {
	Source     string `yaml:"source" envconfig:"GUIDES_SOURCE"`
	Catalog    string `yaml:"catalog" envconfig:"GUIDES_CATALOG"`
	StorageDir string `yaml:"storage_dir" envconfig:"GUIDES_STORAGE_DIR"`
}

// Config is the full bot configuration.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Channel  ChannelConfig       `yaml:"channel"`
	Guides   GuidesConfig        `yaml:"guides"`
	Database coredatabase.Config `yaml:"database"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// DatabaseConfig returns the database settings, or nil when the catalog does not live in Postgres.
func (c *Config) DatabaseConfig() *coredatabase.Config {
	if c.Guides.Source != SourcePostgres {
		return nil
	}
	return &c.Database
}

// LoadConfig reads the YAML file at path (optional), .env and the environment, then validates.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.LoadInto(path, &cfg); err != nil {
		return nil, err
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.Channel.ID = strings.TrimSpace(c.Channel.ID)
	if c.Channel.ID == "" {
		return fmt.Errorf("channel id is required (CHANNEL_ID: @your_channel or -100<id>)")
	}
	c.Channel.URL = strings.TrimSpace(c.Channel.URL)
	if c.Channel.URL == "" && strings.HasPrefix(c.Channel.ID, "@") {
		c.Channel.URL = "https://t.me/" + strings.TrimPrefix(c.Channel.ID, "@")
	}

	c.Guides.Source = strings.ToLower(strings.TrimSpace(c.Guides.Source))
	switch c.Guides.Source {
	case "":
		c.Guides.Source = SourceFile
	case SourceFile, SourcePostgres:
	default:
		return fmt.Errorf("invalid guides.source %q; allowed: file, postgres", c.Guides.Source)
	}
	if c.Guides.Catalog == "" {
		c.Guides.Catalog = "guides.json"
	}
	if c.Guides.StorageDir == "" {
		c.Guides.StorageDir = "storage/guides"
	}

	if c.Guides.Source == SourcePostgres {
		if err := c.Database.Normalize(); err != nil {
			return fmt.Errorf("guides.source is postgres: %w", err)
		}
	}
	return nil
}
