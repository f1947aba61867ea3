package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	coreconfig "github.com/m3rciful/guidebot/core/config"
	coretelegram "github.com/m3rciful/guidebot/core/telegram"
)

type carrier struct{ cfg *coreconfig.Config }

func (c carrier) CoreConfig() *coreconfig.Config { return c.cfg }

type fakeApp struct {
	stopped bool
}

func (a *fakeApp) TelegramRunOptions() (coretelegram.RunOptions, error) {
	return coretelegram.RunOptions{
		OnStop: func(context.Context, coretelegram.Runtime) error {
			a.stopped = true
			return nil
		},
	}, nil
}

func TestRunWiresLifecycle(t *testing.T) {
	t.Setenv("GUIDEBOT_CONFIG", "from-env.yaml")
	app := &fakeApp{}
	var loadedPath string
	var flushed bool

	err := Run(Options{
		ConfigEnvVar:      "GUIDEBOT_CONFIG",
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (ConfigCarrier, error) {
			loadedPath = path
			return carrier{cfg: &coreconfig.Config{}}, nil
		},
		Bootstrap:      func(ConfigCarrier) (TelegramApp, error) { return app, nil },
		ShutdownLogger: func() error { flushed = true; return nil },
		RunTelegram: func(ctx context.Context, opts coretelegram.RunOptions) error {
			if err := opts.OnStart(ctx, coretelegram.Runtime{}); err != nil {
				return err
			}
			return opts.OnStop(ctx, coretelegram.Runtime{})
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if loadedPath != "from-env.yaml" {
		t.Fatalf("config path = %q", loadedPath)
	}
	if !app.stopped || !flushed {
		t.Fatalf("stopped=%v flushed=%v", app.stopped, flushed)
	}
}

func TestRunBootstrapFailureFlushesLogger(t *testing.T) {
	var flushed bool
	err := Run(Options{
		LoadConfig: func(string) (ConfigCarrier, error) {
			return carrier{cfg: &coreconfig.Config{}}, nil
		},
		Bootstrap:      func(ConfigCarrier) (TelegramApp, error) { return nil, errors.New("no token") },
		ShutdownLogger: func() error { flushed = true; return nil },
	})
	if err == nil || !strings.Contains(err.Error(), "bootstrap failed") {
		t.Fatalf("err = %v", err)
	}
	if !flushed {
		t.Fatalf("logger must be flushed on bootstrap failure")
	}
}

func TestRunConfigErrors(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Fatalf("expected error without callbacks")
	}
	err := Run(Options{
		LoadConfig: func(string) (ConfigCarrier, error) { return nil, errors.New("CHANNEL_ID missing") },
		Bootstrap:  func(ConfigCarrier) (TelegramApp, error) { return nil, nil },
	})
	if err == nil || !strings.Contains(err.Error(), "CHANNEL_ID") {
		t.Fatalf("err = %v", err)
	}
}
