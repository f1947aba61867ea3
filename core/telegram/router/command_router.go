package router

import (
	"context"
	"log/slog"
	"sort"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/guidebot/core/logger"
	tg "github.com/m3rciful/guidebot/core/telegram"
	"github.com/m3rciful/guidebot/core/telegram/commands"
	"github.com/m3rciful/guidebot/core/telegram/middleware"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
}

// CommandRoutes prepares one route per registered command.
// Admin-only commands are guarded by AdminOnlyMiddleware.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	names := make([]string, 0, len(reg.Commands()))
	for name := range reg.Commands() {
		names = append(names, name)
	}
	sort.Strings(names)

	routes := make([]tg.Route, 0, len(names))
	for _, name := range names {
		routes = append(routes, tg.Route{
			Endpoint: name,
			Handler:  commandHandler(name, reg.Commands()[name], opts),
		})
	}

	logger.TWire.LogAttrs(context.Background(), slog.LevelInfo, "tg.wire",
		slog.String("event", "complete"),
		slog.Int("commands", len(routes)),
	)
	return routes
}

func commandHandler(name string, def commands.Command, opts CommandRouteOptions) tele.HandlerFunc {
	h := def.Handler
	if def.AdminOnly {
		h = middleware.AdminOnlyMiddleware(middleware.AdminOptions{
			AdminID:  opts.AdminID,
			OnReject: opts.OnAdminReject,
		})(h)
	}
	handlerName := "command." + normalizeHandlerName(name)
	return func(c tele.Context) error {
		return handleWithSummary(c, handlerName, time.Now(), func() error {
			return h(c)
		})
	}
}
