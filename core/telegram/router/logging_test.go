package router

import (
	"errors"
	"fmt"
	"testing"
)

type codedErr struct{}

func (codedErr) Error() string { return "coded" }
func (codedErr) Code() string  { return "membership lookup" }

type plainErr struct{}

func (*plainErr) Error() string { return "plain" }

func TestNormalizeHandlerName(t *testing.T) {
	cases := map[string]string{
		"":           "unknown",
		"/about-me":  "about_me",
		"menu:price": "menu_price",
		" Start ":    "start",
	}
	for in, want := range cases {
		if got := normalizeHandlerName(in); got != want {
			t.Errorf("normalizeHandlerName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDeriveErrorCode(t *testing.T) {
	if got := deriveErrorCode(fmt.Errorf("wrap: %w", codedErr{})); got != "MEMBERSHIP_LOOKUP" {
		t.Fatalf("coded = %q", got)
	}
	if got := deriveErrorCode(fmt.Errorf("wrap: %w", &plainErr{})); got != "PLAINERR" {
		t.Fatalf("plain = %q", got)
	}
	if got := deriveErrorCode(errors.New("x")); got != "ERRORSTRING" {
		t.Fatalf("errors.New = %q", got)
	}
	if deriveErrorCode(nil) != "" {
		t.Fatalf("nil error must have empty code")
	}
}
