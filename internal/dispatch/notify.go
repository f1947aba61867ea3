package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m3rciful/guidebot/core/logger"
	"github.com/m3rciful/guidebot/core/telegram/format"
	"github.com/m3rciful/guidebot/internal/screens"
)

type requestKind int

const (
	requestInterest requestKind = iota
	requestBooking
)

func (k requestKind) String() string {
	if k == requestBooking {
		return "booking"
	}
	return "interest"
}

// consultationText describes the requesting user for the administrator.
func consultationText(kind requestKind, u User) string {
	header := "👀 Интерес к консультации"
	if kind == requestBooking {
		header = "🆕 Заявка на консультацию"
	}
	lines := []string{header, ""}
	if name := u.DisplayName(); name != "" {
		lines = append(lines, "Имя: "+format.EscapeHTML(name))
	}
	if u.Username != "" {
		lines = append(lines, "Username: @"+format.EscapeHTML(u.Username))
	}
	lines = append(lines,
		fmt.Sprintf("ID: <code>%d</code>", u.ID),
		fmt.Sprintf(`<a href="tg://user?id=%d">Открыть профиль</a>`, u.ID),
	)
	return format.Lines(lines...)
}

// notifyAdmin forwards a consultation request once. Failures are logged and never
// affect the user's flow.
func (d *Dispatcher) notifyAdmin(ctx context.Context, kind requestKind, u User) {
	if d.cfg.AdminID == 0 {
		logger.Debug(ctx, "dispatch", "admin.notify",
			slog.String("status", "skip"),
			slog.String("kind", kind.String()),
		)
		return
	}
	view := screens.View{Text: consultationText(kind, u), ParseMode: format.ParseModeHTML}
	if err := d.out.Reply(ctx, d.cfg.AdminID, view); err != nil {
		logger.Warn(ctx, "dispatch", "admin.notify",
			slog.String("status", "fail"),
			slog.String("kind", kind.String()),
			logger.Err(err),
		)
		return
	}
	logger.Info(ctx, "dispatch", "admin.notify",
		slog.String("status", "ok"),
		slog.String("kind", kind.String()),
	)
}
