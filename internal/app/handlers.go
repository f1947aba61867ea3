package app

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/guidebot/core/telegram/callbacks"
	"github.com/m3rciful/guidebot/core/telegram/commands"
	tghelpers "github.com/m3rciful/guidebot/core/telegram/helpers"
	"github.com/m3rciful/guidebot/internal/action"
	"github.com/m3rciful/guidebot/internal/dispatch"
)

func (a *App) registerCommands() {
	a.registry.RegisterCommand("/start", commands.Command{
		Handler: a.onStart,
		Hidden:  true,
	})
	a.registry.RegisterCommand("/"+dispatch.CommandPrice, commands.Command{
		Handler:     a.onCommand(dispatch.CommandPrice),
		Description: "Цены",
	})
	a.registry.RegisterCommand("/"+dispatch.CommandGuides, commands.Command{
		Handler:     a.onCommand(dispatch.CommandGuides),
		Description: "Получить подарок 🎁",
	})
	a.registry.RegisterCommand("/"+dispatch.CommandAbout, commands.Command{
		Handler:     a.onCommand(dispatch.CommandAbout),
		Description: "Обо мне",
		Aliases:     []string{"about-me", "about"},
	})
	a.registry.RegisterCommand("/"+dispatch.CommandCatalog, commands.Command{
		Handler:     a.onCommand(dispatch.CommandCatalog),
		Description: "Проверка каталога гайдов",
		AdminOnly:   true,
	})
}

func (a *App) onStart(c tele.Context) error {
	var payload string
	if msg := c.Message(); msg != nil {
		payload = msg.Payload
	}
	return a.dispatch(c, dispatch.StartCommand{Payload: payload})
}

func (a *App) onCommand(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		return a.dispatch(c, dispatch.SlashCommand{Name: name})
	}
}

func (a *App) onCallback(c tele.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}
	ev := dispatch.CallbackAction{ID: cb.ID, Action: action.Parse(callbacks.Data(cb))}
	if cb.Message != nil {
		ev.MessageID = cb.Message.ID
	}
	return a.dispatch(c, ev)
}

// dispatch converts the telebot update into a dispatcher Update.
func (a *App) dispatch(c tele.Context, ev dispatch.Event) error {
	upd := toUpdate(c, ev)
	return a.dispatcher.Handle(tghelpers.BuildContext(c), upd)
}

func toUpdate(c tele.Context, ev dispatch.Event) dispatch.Update {
	upd := dispatch.Update{Event: ev}
	if u := c.Sender(); u != nil {
		upd.From = dispatch.User{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
		}
	}
	if chat := c.Chat(); chat != nil {
		upd.ChatID = chat.ID
	}
	if upd.ChatID == 0 {
		upd.ChatID = upd.From.ID
	}
	return upd
}

// onRateLimited answers throttled callbacks so the button does not keep spinning.
func onRateLimited(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond()
	}
	return nil
}
