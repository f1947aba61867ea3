package action

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		slug string
	}{
		{"show_main_menu", KindMainMenu, ""},
		{"menu:price", KindPrice, ""},
		{"menu:about-me", KindAbout, ""},
		{"menu:get-gift", KindGift, ""},
		{"menu:guides", KindGift, ""},
		{"book_consultation_info", KindBookingInfo, ""},
		{"book_consultation", KindBooking, ""},
		{"open:detox", KindOpen, "detox"},
		{"dl:detox", KindDownload, "detox"},
		{"dl:Detox:v2", KindDownload, "Detox:v2"},
		{"dl:", KindDownload, ""},
		{"menu:unknown", KindUnknown, ""},
		{"", KindUnknown, ""},
		{"noop", KindUnknown, ""},
	}
	for _, tc := range cases {
		got := Parse(tc.in)
		if got.Kind != tc.kind || got.Slug != tc.slug {
			t.Errorf("Parse(%q) = %+v, want kind=%q slug=%q", tc.in, got, tc.kind, tc.slug)
		}
	}
}

func TestDataRoundTrip(t *testing.T) {
	for _, a := range []Action{Simple(KindMainMenu), Simple(KindBooking), Open("detox"), Download("detox")} {
		got := Parse(a.Data())
		if got.Kind != a.Kind || got.Slug != a.Slug {
			t.Errorf("round trip %+v -> %q -> %+v", a, a.Data(), got)
		}
	}
	if Parse("menu:guides").Data() != "menu:get-gift" {
		t.Fatalf("legacy alias must re-encode to the canonical kind")
	}
}
