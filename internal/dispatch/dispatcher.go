// Package dispatch maps inbound updates to screen transitions and gated guide delivery.
// It keeps no state between updates: every transition is derived from the event
// and freshly loaded catalog data.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/m3rciful/guidebot/core/logger"
	"github.com/m3rciful/guidebot/internal/action"
	"github.com/m3rciful/guidebot/internal/guides"
	"github.com/m3rciful/guidebot/internal/membership"
	"github.com/m3rciful/guidebot/internal/render"
	"github.com/m3rciful/guidebot/internal/screens"
)

const (
	answerNotFound    = "Гайд не найден"
	answerFileMissing = "Файл гайда не найден на сервере"
	answerSending     = "Отправляю файл…"
	answerBookingSent = "Отправляю заявку…"
	answerFailure     = "Ошибка. Попробуйте позже."
)

// Catalog is the read side of the guide registry.
type Catalog interface {
	List(ctx context.Context) []guides.Guide
	Find(ctx context.Context, slug string) (guides.Guide, error)
	AssetExists(g guides.Guide) bool
	OpenAsset(g guides.Guide) (*guides.Asset, error)
}

// Checker resolves channel membership.
type Checker interface {
	Check(ctx context.Context, channelID string, userID int64) membership.Status
}

// Config holds dispatcher settings.
type Config struct {
	ChannelID string
	// AdminID receives consultation requests and may run /catalog; 0 disables both.
	AdminID int64
}

// Options groups the dispatcher collaborators.
type Options struct {
	Config  Config
	Catalog Catalog
	Members Checker
	Builder screens.Builder
	Out     *render.Adapter
}

// Dispatcher handles one update at a time and is safe for concurrent use.
type Dispatcher struct {
	cfg     Config
	catalog Catalog
	members Checker
	builder screens.Builder
	out     *render.Adapter
}

// New creates a Dispatcher.
func New(opts Options) (*Dispatcher, error) {
	switch {
	case opts.Catalog == nil:
		return nil, errors.New("dispatch: catalog is required")
	case opts.Members == nil:
		return nil, errors.New("dispatch: membership checker is required")
	case opts.Out == nil:
		return nil, errors.New("dispatch: render adapter is required")
	case strings.TrimSpace(opts.Config.ChannelID) == "":
		return nil, errors.New("dispatch: channel id is required")
	}
	return &Dispatcher{
		cfg:     opts.Config,
		catalog: opts.Catalog,
		members: opts.Members,
		builder: opts.Builder,
		out:     opts.Out,
	}, nil
}

// acker guarantees a callback is answered exactly once.
type acker struct {
	out  *render.Adapter
	id   string
	done bool
}

func (a *acker) send(ctx context.Context, answer render.Answer) {
	if a.id == "" || a.done {
		return
	}
	a.done = true
	if err := a.out.Ack(ctx, a.id, answer); err != nil {
		logger.Warn(ctx, "dispatch", "callback.ack",
			slog.String("status", "fail"),
			logger.Err(err),
		)
	}
}

// Handle processes one update. Errors and panics are logged here; an unanswered
// callback is answered with a generic alert on failure and silently otherwise.
func (d *Dispatcher) Handle(ctx context.Context, u Update) (err error) {
	start := time.Now()
	ack := &acker{out: d.out}
	if cb, ok := u.Event.(CallbackAction); ok {
		ack.id = cb.ID
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "dispatch", "dispatch.panic",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("dispatch panic: %v", r)
		}
		if err != nil {
			ack.send(ctx, render.Answer{Text: answerFailure, Alert: true})
			logger.Error(ctx, "dispatch", "dispatch.failed",
				slog.String("status", "fail"),
				slog.String("kind", eventName(u.Event)),
				slog.Duration("duration", logger.RoundMS(time.Since(start))),
				logger.Err(err),
			)
			return
		}
		ack.send(ctx, render.Answer{})
	}()

	switch ev := u.Event.(type) {
	case StartCommand:
		return d.start(ctx, u, ev)
	case SlashCommand:
		return d.command(ctx, u, ev)
	case CallbackAction:
		return d.callback(ctx, u, ev, ack)
	default:
		return fmt.Errorf("dispatch: unsupported event %T", u.Event)
	}
}

func eventName(ev Event) string {
	if ev == nil {
		return "none"
	}
	return ev.eventName()
}

func (d *Dispatcher) start(ctx context.Context, u Update, ev StartCommand) error {
	if payload := strings.TrimSpace(ev.Payload); payload != "" {
		g, err := d.catalog.Find(ctx, payload)
		if err == nil {
			return d.reply(ctx, u.ChatID, screens.GuideDetail(g.Slug), screens.Context{Guide: &g, Greeting: true})
		}
		logger.Debug(ctx, "dispatch", "start.payload",
			slog.String("status", "skip"),
			slog.String("slug", logger.SanitizeLimit(payload, 64)),
			logger.Err(err),
		)
	}
	return d.reply(ctx, u.ChatID, screens.MainMenu(), screens.Context{Greeting: true})
}

func (d *Dispatcher) command(ctx context.Context, u Update, ev SlashCommand) error {
	switch ev.Name {
	case CommandPrice:
		return d.reply(ctx, u.ChatID, screens.Price(), screens.Context{})
	case CommandGuides:
		return d.reply(ctx, u.ChatID, screens.GuideList(), screens.Context{Guides: d.catalog.List(ctx)})
	case CommandAbout:
		return d.reply(ctx, u.ChatID, screens.About(), screens.Context{})
	case CommandCatalog:
		return d.catalogReport(ctx, u)
	default:
		return d.reply(ctx, u.ChatID, screens.MainMenu(), screens.Context{})
	}
}

func (d *Dispatcher) catalogReport(ctx context.Context, u Update) error {
	if d.cfg.AdminID == 0 || u.From.ID != d.cfg.AdminID {
		logger.Warn(ctx, "dispatch", "catalog.denied",
			slog.String("status", "skip"),
			slog.Int64("user_id", u.From.ID),
		)
		return nil
	}
	list := d.catalog.List(ctx)
	entries := make([]screens.CatalogEntry, 0, len(list))
	for _, g := range list {
		entries = append(entries, screens.CatalogEntry{Guide: g, Asset: d.catalog.AssetExists(g)})
	}
	return d.out.Reply(ctx, u.ChatID, d.builder.Catalog(entries))
}

func (d *Dispatcher) callback(ctx context.Context, u Update, ev CallbackAction, ack *acker) error {
	target := render.Target{ChatID: u.ChatID, MessageID: ev.MessageID}
	switch ev.Action.Kind {
	case action.KindMainMenu:
		ack.send(ctx, render.Answer{})
		return d.show(ctx, target, screens.MainMenu(), screens.Context{})
	case action.KindPrice:
		ack.send(ctx, render.Answer{})
		return d.show(ctx, target, screens.Price(), screens.Context{})
	case action.KindAbout:
		ack.send(ctx, render.Answer{})
		return d.show(ctx, target, screens.About(), screens.Context{})
	case action.KindGift:
		ack.send(ctx, render.Answer{})
		return d.show(ctx, target, screens.GuideList(), screens.Context{Guides: d.catalog.List(ctx)})
	case action.KindBookingInfo:
		ack.send(ctx, render.Answer{})
		d.notifyAdmin(ctx, requestInterest, u.From)
		return d.show(ctx, target, screens.BookingInfo(), screens.Context{})
	case action.KindBooking:
		ack.send(ctx, render.Answer{Text: answerBookingSent})
		d.notifyAdmin(ctx, requestBooking, u.From)
		return d.show(ctx, target, screens.BookingConfirmed(), screens.Context{})
	case action.KindOpen:
		g, ok := d.resolve(ctx, ev.Action.Slug, ack)
		if !ok {
			return nil
		}
		ack.send(ctx, render.Answer{})
		return d.show(ctx, target, screens.GuideDetail(g.Slug), screens.Context{Guide: &g})
	case action.KindDownload:
		return d.download(ctx, u, target, ev.Action.Slug, ack)
	default:
		logger.Debug(ctx, "dispatch", "callback.unknown",
			slog.String("status", "skip"),
			slog.String("cb_key", logger.SanitizeLimit(ev.Action.Raw, 64)),
		)
		ack.send(ctx, render.Answer{})
		return nil
	}
}

// resolve looks up slug and answers with a "not found" alert when it is absent.
func (d *Dispatcher) resolve(ctx context.Context, slug string, ack *acker) (guides.Guide, bool) {
	g, err := d.catalog.Find(ctx, slug)
	if err != nil {
		logger.Info(ctx, "dispatch", "guide.resolve",
			slog.String("status", "skip"),
			slog.String("slug", logger.SanitizeLimit(slug, 64)),
			logger.Err(err),
		)
		ack.send(ctx, render.Answer{Text: answerNotFound, Alert: true})
		return guides.Guide{}, false
	}
	return g, true
}

// download is the gated delivery: membership first, then the file, then the thank-you screen.
func (d *Dispatcher) download(ctx context.Context, u Update, target render.Target, slug string, ack *acker) error {
	g, ok := d.resolve(ctx, slug, ack)
	if !ok {
		return nil
	}

	status := d.members.Check(ctx, d.cfg.ChannelID, u.From.ID)
	if !status.Subscribed() {
		ack.send(ctx, render.Answer{})
		logger.Info(ctx, "dispatch", "guide.gated",
			slog.String("status", "skip"),
			slog.String("slug", g.Slug),
			slog.String("membership", status.String()),
		)
		return d.out.Reply(ctx, u.ChatID, d.builder.SubscribePrompt(g))
	}

	asset, err := d.catalog.OpenAsset(g)
	if err != nil {
		if errors.Is(err, guides.ErrAssetMissing) {
			logger.Error(ctx, "dispatch", "guide.asset",
				slog.String("status", "fail"),
				slog.String("slug", g.Slug),
				logger.Err(err),
			)
			ack.send(ctx, render.Answer{Text: answerFileMissing, Alert: true})
			return nil
		}
		return fmt.Errorf("open guide %s: %w", g.Slug, err)
	}
	defer asset.Close()

	ack.send(ctx, render.Answer{Text: answerSending})
	start := time.Now()
	err = d.out.Deliver(ctx, u.ChatID, render.Document{Reader: asset, FileName: asset.Name, Caption: g.Title})
	if err != nil {
		if rerr := d.out.Reply(ctx, u.ChatID, d.builder.DeliveryFailure()); rerr != nil {
			logger.Warn(ctx, "dispatch", "guide.failure_notice",
				slog.String("status", "fail"),
				logger.Err(rerr),
			)
		}
		return err
	}
	logger.Info(ctx, "dispatch", "guide.delivered",
		slog.String("status", "ok"),
		slog.String("slug", g.Slug),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return d.show(ctx, target, screens.GiftUnlocked(g.Slug), screens.Context{Guide: &g})
}

func (d *Dispatcher) show(ctx context.Context, t render.Target, s screens.Screen, c screens.Context) error {
	logger.Debug(ctx, "dispatch", "screen.show", slog.String("screen", s.String()))
	return d.out.Show(ctx, t, d.builder.Build(s, c))
}

func (d *Dispatcher) reply(ctx context.Context, chatID int64, s screens.Screen, c screens.Context) error {
	logger.Debug(ctx, "dispatch", "screen.reply", slog.String("screen", s.String()))
	return d.out.Reply(ctx, chatID, d.builder.Build(s, c))
}
