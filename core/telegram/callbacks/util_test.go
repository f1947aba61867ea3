package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestData(t *testing.T) {
	cases := []struct {
		cb   *tele.Callback
		data string
		key  string
	}{
		{nil, "", ""},
		{&tele.Callback{Data: "dl:detox"}, "dl:detox", "dl"},
		{&tele.Callback{Data: " show_main_menu "}, "show_main_menu", "show_main_menu"},
		{&tele.Callback{Data: "\fpick|42"}, "pick|42", "pick|42"},
		{&tele.Callback{Unique: "pick", Data: "7"}, "pick|7", "pick|7"},
	}
	for _, tc := range cases {
		if got := Data(tc.cb); got != tc.data {
			t.Errorf("Data(%+v) = %q, want %q", tc.cb, got, tc.data)
		}
		if got := Key(tc.cb); got != tc.key {
			t.Errorf("Key(%+v) = %q, want %q", tc.cb, got, tc.key)
		}
	}
}
