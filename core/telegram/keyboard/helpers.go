package keyboard

import tele "gopkg.in/telebot.v4"

// InlineBtn describes one inline button: either a raw callback payload or a link.
// URL wins when both are set.
type InlineBtn struct {
	Text string
	Data string
	URL  string
}

// InlineButtonsRows builds an inline keyboard from rows of InlineBtn.
// Callback data is passed through verbatim, without telebot's unique prefix,
// so handlers registered on tele.OnCallback receive it unchanged.
func InlineButtonsRows(rows ...[]InlineBtn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	if len(rows) == 0 {
		return markup
	}
	inline := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := make([]tele.InlineButton, 0, len(row))
		for _, btn := range row {
			ib := tele.InlineButton{Text: btn.Text}
			if btn.URL != "" {
				ib.URL = btn.URL
			} else {
				ib.Data = btn.Data
			}
			r = append(r, ib)
		}
		inline = append(inline, r)
	}
	markup.InlineKeyboard = inline
	return markup
}

// InlineButtons builds an inline keyboard where each provided button is placed on its own row.
func InlineButtons(buttons []InlineBtn) *tele.ReplyMarkup {
	rows := make([][]InlineBtn, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []InlineBtn{b})
	}
	return InlineButtonsRows(rows...)
}

// RemoveKeyboard returns a markup that hides the keyboard.
func RemoveKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}
