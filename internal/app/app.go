// Package app wires configuration, infrastructure and the dispatcher into a runnable bot.
package app

import (
	"context"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/guidebot/core/bootstrap"
	corecmd "github.com/m3rciful/guidebot/core/cmd"
	"github.com/m3rciful/guidebot/core/logger"
	coretelegram "github.com/m3rciful/guidebot/core/telegram"
	"github.com/m3rciful/guidebot/core/telegram/router"
	"github.com/m3rciful/guidebot/internal/dispatch"
	"github.com/m3rciful/guidebot/internal/guides"
	"github.com/m3rciful/guidebot/internal/membership"
	"github.com/m3rciful/guidebot/internal/render"
	"github.com/m3rciful/guidebot/internal/screens"
	"github.com/m3rciful/guidebot/internal/tgtransport"
)

// App holds the wired bot.
type App struct {
	cfg        *Config
	infra      *bootstrap.Result
	bot        *tele.Bot
	registry   *coretelegram.Registry
	dispatcher *dispatch.Dispatcher
}

// Bootstrap initialises logging, the optional database and the bot, and wires the dispatcher.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	infra, err := bootstrap.Run(bootstrap.Options{
		Config:   &cfg.Config,
		Database: cfg.DatabaseConfig(),
	})
	if err != nil {
		return nil, err
	}

	bot, err := coretelegram.NewBot(&cfg.Config)
	if err != nil {
		_ = infra.Close()
		return nil, err
	}

	a, err := wire(cfg, infra, bot, tgtransport.New(bot))
	if err != nil {
		_ = infra.Close()
		return nil, err
	}
	return a, nil
}

// wire builds everything above the transport.
func wire(cfg *Config, infra *bootstrap.Result, bot *tele.Bot, tr *tgtransport.Client) (*App, error) {
	ctx := logger.Background()

	var source guides.Source = guides.FileSource{Path: cfg.Guides.Catalog}
	if cfg.Guides.Source == SourcePostgres {
		source = guides.PostgresSource{DB: infra.DB}
	}
	catalog := guides.NewRegistry(source, cfg.Guides.StorageDir)
	logger.Info(ctx, "app", "guides.source",
		slog.String("source", source.Name()),
		slog.String("storage", cfg.Guides.StorageDir),
		slog.Int("count", len(catalog.List(ctx))),
	)

	if cfg.Telegram.AdminID == 0 {
		logger.Warn(ctx, "app", "admin.disabled",
			slog.String("cause", "TELEGRAM_ADMIN_ID not set; consultation requests are not forwarded"),
		)
	}
	if cfg.Channel.URL == "" {
		logger.Warn(ctx, "app", "channel.url_missing",
			slog.String("cause", "numeric CHANNEL_ID without CHANNEL_URL; subscribe buttons are hidden"),
		)
	}

	d, err := dispatch.New(dispatch.Options{
		Config:  dispatch.Config{ChannelID: cfg.Channel.ID, AdminID: cfg.Telegram.AdminID},
		Catalog: catalog,
		Members: membership.NewVerifier(tr),
		Builder: screens.Builder{ChannelURL: cfg.Channel.URL},
		Out:     render.NewAdapter(tr),
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{
		cfg:        cfg,
		infra:      infra,
		bot:        bot,
		registry:   coretelegram.NewRegistry(),
		dispatcher: d,
	}
	a.registerCommands()
	return a, nil
}

// TelegramRunOptions implements corecmd.TelegramApp.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{AdminID: a.cfg.Telegram.AdminID})
	routes = append(routes, router.TextRoutes(a.registry, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(a.onCallback))

	return coretelegram.RunOptions{
		Config:      &a.cfg.Config,
		Bot:         a.bot,
		Registry:    a.registry,
		Middlewares: coretelegram.DefaultMiddlewares(&a.cfg.Config, onRateLimited),
		Routes:      routes,
		OnStop: func(context.Context, coretelegram.Runtime) error {
			return a.infra.Close()
		},
	}, nil
}
