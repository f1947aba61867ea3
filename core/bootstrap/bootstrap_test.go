package bootstrap

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/m3rciful/guidebot/core/config"
	coredatabase "github.com/m3rciful/guidebot/core/database"
)

func noopLogger(*coreconfig.Config) error { return nil }

func TestRunWithoutDatabase(t *testing.T) {
	connected := false
	res, err := Run(Options{
		Config:     &coreconfig.Config{},
		LoggerInit: noopLogger,
		Connect: func(coredatabase.Config) (*sqlx.DB, error) {
			connected = true
			return nil, nil
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if connected {
		t.Fatal("connect must not be called without database config")
	}
	if res.DB != nil {
		t.Fatal("expected nil DB")
	}
	if err := res.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestRunMigrateBeforeConnect(t *testing.T) {
	var order []string
	_, err := Run(Options{
		Config:     &coreconfig.Config{},
		Database:   &coredatabase.Config{Migrate: true},
		LoggerInit: noopLogger,
		Migrate: func(coredatabase.Config) error {
			order = append(order, "migrate")
			return nil
		},
		Connect: func(coredatabase.Config) (*sqlx.DB, error) {
			order = append(order, "connect")
			return nil, errors.New("unreachable")
		},
	})
	if err == nil {
		t.Fatal("expected connect error")
	}
	if len(order) != 2 || order[0] != "migrate" || order[1] != "connect" {
		t.Fatalf("order = %v", order)
	}
}

func TestRunNilConfig(t *testing.T) {
	if _, err := Run(Options{}); err == nil {
		t.Fatal("expected error for nil config")
	}
}
