package router

import (
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	tg "github.com/m3rciful/guidebot/core/telegram"
	"github.com/m3rciful/guidebot/core/telegram/callbacks"
)

// CallbackRoute sends every callback query to a single handler.
// The handler owns the callback answer; the router does not respond on its behalf.
func CallbackRoute(handler tele.HandlerFunc) tg.Route {
	h := func(c tele.Context) error {
		start := time.Now()
		cb := c.Callback()
		if cb == nil || handler == nil {
			return nil
		}
		name := "callback." + normalizeHandlerName(callbacks.Key(cb))
		return handleWithSummary(c, name, start, func() error {
			return handler(c)
		}, slog.String("cb_key", callbacks.Data(cb)))
	}
	return tg.Route{Endpoint: tele.OnCallback, Handler: h}
}
