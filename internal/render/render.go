// Package render delivers screens through the chat transport.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/m3rciful/guidebot/core/logger"
	"github.com/m3rciful/guidebot/internal/screens"
)

// Answer is a callback acknowledgement. An empty Text acknowledges silently.
type Answer struct {
	Text  string
	Alert bool
}

// Document is a file sent as an attachment.
type Document struct {
	Reader   io.Reader
	FileName string
	Caption  string
}

// Transport is the subset of the chat API the bot renders through.
type Transport interface {
	SendMessage(ctx context.Context, chatID int64, view screens.View) error
	EditMessage(ctx context.Context, chatID int64, messageID int, view screens.View) error
	AnswerCallback(ctx context.Context, callbackID string, answer Answer) error
	SendDocument(ctx context.Context, chatID int64, doc Document) error
}

// Target is the message a screen is shown in. A zero MessageID means "send a new message".
type Target struct {
	ChatID    int64
	MessageID int
}

// Adapter decides between editing in place and sending a new message.
type Adapter struct {
	tr Transport
}

// NewAdapter wraps tr.
func NewAdapter(tr Transport) *Adapter {
	return &Adapter{tr: tr}
}

// Show renders view into the target message when it has one, falling back to a new message
// when the edit fails for any reason.
func (a *Adapter) Show(ctx context.Context, t Target, view screens.View) error {
	if t.MessageID != 0 {
		err := a.tr.EditMessage(ctx, t.ChatID, t.MessageID, view)
		if err == nil {
			return nil
		}
		logger.Debug(ctx, "render", "render.edit_fallback",
			slog.String("status", "skip"),
			slog.Int("message_id", t.MessageID),
			logger.Err(err),
		)
	}
	return a.Reply(ctx, t.ChatID, view)
}

// Reply always sends view as a new message.
func (a *Adapter) Reply(ctx context.Context, chatID int64, view screens.View) error {
	if err := a.tr.SendMessage(ctx, chatID, view); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Ack answers a callback query.
func (a *Adapter) Ack(ctx context.Context, callbackID string, answer Answer) error {
	if err := a.tr.AnswerCallback(ctx, callbackID, answer); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

// Deliver streams doc to the chat as a document attachment.
func (a *Adapter) Deliver(ctx context.Context, chatID int64, doc Document) error {
	if err := a.tr.SendDocument(ctx, chatID, doc); err != nil {
		return fmt.Errorf("send document %s: %w", doc.FileName, err)
	}
	return nil
}
