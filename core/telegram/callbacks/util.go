package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// ParseCallbackData splits Telebot's "\f<unique>|<payload>" encoding.
// Data without the prefix is returned whole as unique.
func ParseCallbackData(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	raw := cb.Data
	if !strings.HasPrefix(raw, "\f") {
		return strings.TrimSpace(raw), ""
	}
	unique, payload, _ := strings.Cut(raw[1:], "|")
	return strings.TrimSpace(unique), payload
}

// Data returns the button payload as it was put on the inline keyboard.
func Data(cb *tele.Callback) string {
	unique, payload := ParseCallbackData(cb)
	if payload == "" {
		return unique
	}
	return unique + "|" + payload
}

// Key returns the routing key of a callback: the part before the first ':'.
func Key(cb *tele.Callback) string {
	key, _, _ := strings.Cut(Data(cb), ":")
	return key
}
