// Package tgtransport adapts telebot to the render and membership interfaces.
package tgtransport

import (
	"context"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/guidebot/core/telegram/keyboard"
	"github.com/m3rciful/guidebot/internal/render"
	"github.com/m3rciful/guidebot/internal/screens"
)

// API is the part of *tele.Bot the transport uses.
type API interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
	Respond(c *tele.Callback, resp ...*tele.CallbackResponse) error
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// Client implements render.Transport and membership.Lookup on top of telebot.
type Client struct {
	api API
}

// New wraps api, usually a *tele.Bot.
func New(api API) *Client {
	return &Client{api: api}
}

// channelRef addresses a chat by "@username" or by its numeric id in text form.
type channelRef string

func (c channelRef) Recipient() string { return string(c) }

// SendMessage implements render.Transport.
func (c *Client) SendMessage(ctx context.Context, chatID int64, view screens.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.api.Send(tele.ChatID(chatID), view.Text, sendOptions(view))
	return err
}

// EditMessage implements render.Transport.
func (c *Client) EditMessage(ctx context.Context, chatID int64, messageID int, view screens.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tele.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chatID}
	_, err := c.api.Edit(msg, view.Text, sendOptions(view))
	return err
}

// AnswerCallback implements render.Transport.
func (c *Client) AnswerCallback(ctx context.Context, callbackID string, answer render.Answer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.api.Respond(&tele.Callback{ID: callbackID}, &tele.CallbackResponse{
		Text:      answer.Text,
		ShowAlert: answer.Alert,
	})
}

// SendDocument implements render.Transport.
func (c *Client) SendDocument(ctx context.Context, chatID int64, doc render.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file := &tele.Document{
		File:     tele.FromReader(doc.Reader),
		FileName: doc.FileName,
		Caption:  doc.Caption,
	}
	_, err := c.api.Send(tele.ChatID(chatID), file)
	return err
}

// ChatMemberStatus implements membership.Lookup.
func (c *Client) ChatMemberStatus(ctx context.Context, channelID string, userID int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	member, err := c.api.ChatMemberOf(channelRef(channelID), &tele.User{ID: userID})
	if err != nil {
		return "", err
	}
	if member == nil {
		return "", fmt.Errorf("empty chat member response")
	}
	return string(member.Role), nil
}

func sendOptions(view screens.View) *tele.SendOptions {
	opts := &tele.SendOptions{ParseMode: tele.ParseMode(view.ParseMode)}
	if len(view.Rows) > 0 {
		opts.ReplyMarkup = Markup(view.Rows)
	}
	return opts
}

// Markup converts a button layout to an inline keyboard.
func Markup(rows [][]screens.Button) *tele.ReplyMarkup {
	out := make([][]keyboard.InlineBtn, 0, len(rows))
	for _, row := range rows {
		r := make([]keyboard.InlineBtn, 0, len(row))
		for _, b := range row {
			btn := keyboard.InlineBtn{Text: b.Label, URL: b.URL}
			if b.URL == "" {
				btn.Data = b.Action.Data()
			}
			r = append(r, btn)
		}
		out = append(out, r)
	}
	return keyboard.InlineButtonsRows(out...)
}
