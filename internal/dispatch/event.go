package dispatch

import (
	"strings"

	"github.com/m3rciful/guidebot/internal/action"
)

// Command names handled by the dispatcher, without the leading slash.
const (
	CommandPrice   = "price"
	CommandGuides  = "guides"
	CommandAbout   = "about_me"
	CommandCatalog = "catalog"
)

// User is the sender of an update.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// DisplayName joins the first and last name.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Event is one of StartCommand, SlashCommand or CallbackAction.
type Event interface {
	eventName() string
}

// StartCommand is /start with an optional deep-link payload.
type StartCommand struct {
	Payload string
}

// SlashCommand is any other registered command.
type SlashCommand struct {
	Name string
}

// CallbackAction is an inline button press. MessageID is the message carrying the button.
type CallbackAction struct {
	ID        string
	MessageID int
	Action    action.Action
}

func (StartCommand) eventName() string   { return "start" }
func (c SlashCommand) eventName() string { return "command." + c.Name }
func (c CallbackAction) eventName() string {
	if c.Action.Kind == action.KindUnknown {
		return "callback.unknown"
	}
	return "callback." + string(c.Action.Kind)
}

// Update is an event together with where it came from.
type Update struct {
	ChatID int64
	From   User
	Event  Event
}
