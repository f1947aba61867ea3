package membership

import (
	"context"
	"errors"
	"testing"
)

type fakeLookup struct {
	role  string
	err   error
	calls int
}

func (f *fakeLookup) ChatMemberStatus(_ context.Context, channelID string, userID int64) (string, error) {
	f.calls++
	return f.role, f.err
}

func TestClassify(t *testing.T) {
	for _, role := range []string{"member", "administrator", "creator"} {
		if Classify(role) != Member {
			t.Errorf("Classify(%q) should be Member", role)
		}
	}
	for _, role := range []string{"left", "kicked", "restricted", "", "Member"} {
		if Classify(role) != NotMember {
			t.Errorf("Classify(%q) should be NotMember", role)
		}
	}
}

func TestVerifierCheck(t *testing.T) {
	ctx := context.Background()

	ok := &fakeLookup{role: "creator"}
	if got := NewVerifier(ok).Check(ctx, "@channel", 1); got != Member || !got.Subscribed() {
		t.Fatalf("creator -> %v", got)
	}

	left := &fakeLookup{role: "left"}
	if got := NewVerifier(left).Check(ctx, "@channel", 1); got != NotMember || got.Subscribed() {
		t.Fatalf("left -> %v", got)
	}

	failing := &fakeLookup{err: errors.New("chat not found")}
	if got := NewVerifier(failing).Check(ctx, "@channel", 1); got != Unknown || got.Subscribed() {
		t.Fatalf("error -> %v", got)
	}
	if failing.calls != 1 {
		t.Fatalf("lookup calls = %d, want exactly 1", failing.calls)
	}

	var nilVerifier *Verifier
	if nilVerifier.Check(ctx, "@channel", 1) != Unknown {
		t.Fatalf("nil verifier must fail closed")
	}
}
