package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("CHANNEL_ID", "@nutri_channel")
	t.Setenv("TELEGRAM_ADMIN_ID", "42")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Channel.URL != "https://t.me/nutri_channel" {
		t.Fatalf("channel url = %q", cfg.Channel.URL)
	}
	if cfg.Telegram.AdminID != 42 || cfg.CoreConfig().Telegram.Token != "123:abc" {
		t.Fatalf("core config = %+v", cfg.Telegram)
	}
	if cfg.Guides.Source != SourceFile || cfg.Guides.Catalog != "guides.json" || cfg.Guides.StorageDir != "storage/guides" {
		t.Fatalf("guides defaults = %+v", cfg.Guides)
	}
	if cfg.DatabaseConfig() != nil {
		t.Fatalf("file source must not require a database")
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `telegram:
  token: "1:x"
channel:
  id: "-1001234567890"
guides:
  source: Postgres
database:
  host: localhost
  name: guides
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Channel.URL != "" {
		t.Fatalf("numeric channel must not derive a url, got %q", cfg.Channel.URL)
	}
	db := cfg.DatabaseConfig()
	if db == nil || db.Port != "5432" || db.MigrationsDir != "migrations" {
		t.Fatalf("database = %+v", db)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"no token", map[string]string{"CHANNEL_ID": "@c"}, "BOT_TOKEN"},
		{"no channel", map[string]string{"BOT_TOKEN": "1:x"}, "CHANNEL_ID"},
		{"bad source", map[string]string{"BOT_TOKEN": "1:x", "CHANNEL_ID": "@c", "GUIDES_SOURCE": "s3"}, "guides.source"},
		{"postgres without db", map[string]string{"BOT_TOKEN": "1:x", "CHANNEL_ID": "@c", "GUIDES_SOURCE": "postgres"}, "database"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"BOT_TOKEN", "CHANNEL_ID", "GUIDES_SOURCE", "DB_HOST", "DB_NAME"} {
				t.Setenv(k, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want containing %q", err, tc.want)
			}
		})
	}
}
