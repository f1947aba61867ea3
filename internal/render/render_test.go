package render

import (
	"context"
	"errors"
	"testing"

	"github.com/m3rciful/guidebot/internal/screens"
)

type call struct {
	op        string
	chatID    int64
	messageID int
}

type fakeTransport struct {
	calls   []call
	editErr error
	sendErr error
}

func (f *fakeTransport) SendMessage(_ context.Context, chatID int64, _ screens.View) error {
	f.calls = append(f.calls, call{op: "send", chatID: chatID})
	return f.sendErr
}

func (f *fakeTransport) EditMessage(_ context.Context, chatID int64, messageID int, _ screens.View) error {
	f.calls = append(f.calls, call{op: "edit", chatID: chatID, messageID: messageID})
	return f.editErr
}

func (f *fakeTransport) AnswerCallback(context.Context, string, Answer) error {
	f.calls = append(f.calls, call{op: "ack"})
	return nil
}

func (f *fakeTransport) SendDocument(_ context.Context, chatID int64, _ Document) error {
	f.calls = append(f.calls, call{op: "document", chatID: chatID})
	return nil
}

func ops(calls []call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.op
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShow(t *testing.T) {
	view := screens.View{Text: "menu"}
	cases := []struct {
		name    string
		target  Target
		editErr error
		want    []string
	}{
		{"command sends new", Target{ChatID: 1}, nil, []string{"send"}},
		{"callback edits in place", Target{ChatID: 1, MessageID: 9}, nil, []string{"edit"}},
		{"failed edit falls back", Target{ChatID: 1, MessageID: 9}, errors.New("message is not modified"), []string{"edit", "send"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := &fakeTransport{editErr: tc.editErr}
			if err := NewAdapter(tr).Show(context.Background(), tc.target, view); err != nil {
				t.Fatalf("show: %v", err)
			}
			if got := ops(tr.calls); !equal(got, tc.want) {
				t.Fatalf("calls = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShowSendFailure(t *testing.T) {
	tr := &fakeTransport{editErr: errors.New("edit"), sendErr: errors.New("blocked")}
	err := NewAdapter(tr).Show(context.Background(), Target{ChatID: 1, MessageID: 2}, screens.View{})
	if err == nil || !errors.Is(err, tr.sendErr) {
		t.Fatalf("err = %v, want wrapped send error", err)
	}
}
