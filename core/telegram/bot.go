package telegram

import (
	"fmt"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	coreconfig "github.com/m3rciful/guidebot/core/config"
	"github.com/m3rciful/guidebot/core/logger"
)

// NewBot builds a telebot instance with the configured poller and HTTP client.
// Errors escaping handlers are logged through OnError.
func NewBot(cfg *coreconfig.Config) (*tele.Bot, error) {
	if cfg == nil {
		return nil, fmt.Errorf("telegram: nil config provided")
	}

	poller := BuildPoller(PollerOptions{
		RunMode:                cfg.Telegram.RunMode,
		LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
		Webhook: WebhookOptions{
			Listen: cfg.Webhook.Listen,
			Port:   cfg.Webhook.Port,
			URL:    cfg.Webhook.URL,
		},
	})

	start := time.Now()
	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.Telegram.Token,
		Poller:  poller,
		Client:  BuildHTTPClient(longPollTimeout(cfg.Telegram.LongPollTimeoutSeconds)),
		OnError: logHandlerError,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: bot initialization failed: %s", logger.RedactToken(err.Error()))
	}

	logger.TG.Info("bot initialized",
		slog.String("event", "init"),
		slog.String("username", bot.Me.Username),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return bot, nil
}

func logHandlerError(err error, c tele.Context) {
	attrs := []slog.Attr{logger.Err(err)}
	if c != nil {
		if chat := c.Chat(); chat != nil {
			attrs = append(attrs, slog.Int64("chat_id", chat.ID))
		}
		attrs = append(attrs, slog.Int("update_id", c.Update().ID))
	}
	logger.Error(logger.Background(), "tg", "handler.error", attrs...)
}
