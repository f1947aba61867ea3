package format

import "testing"

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<Detox & "Reset"> it's`)
	want := "&lt;Detox &amp; &quot;Reset&quot;&gt; it&#39;s"
	if got != want {
		t.Fatalf("EscapeHTML = %q, want %q", got, want)
	}
	if Bold("a<b") != "<b>a&lt;b</b>" {
		t.Fatalf("Bold = %q", Bold("a<b"))
	}
}
