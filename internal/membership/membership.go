// Package membership decides whether a user counts as subscribed to the channel.
package membership

import (
	"context"
	"log/slog"
	"time"

	"github.com/m3rciful/guidebot/core/logger"
)

// Status is the outcome of a membership check.
type Status int

const (
	// Unknown means the lookup failed; it gates exactly like NotMember.
	Unknown Status = iota
	NotMember
	Member
)

func (s Status) String() string {
	switch s {
	case Member:
		return "member"
	case NotMember:
		return "not_member"
	default:
		return "unknown"
	}
}

// Subscribed reports whether gated content may be released.
func (s Status) Subscribed() bool { return s == Member }

// Lookup fetches the raw chat member status ("member", "left", ...) of a user in a channel.
type Lookup interface {
	ChatMemberStatus(ctx context.Context, channelID string, userID int64) (string, error)
}

// Classify maps a raw chat member status to a Status.
func Classify(role string) Status {
	switch role {
	case "member", "administrator", "creator":
		return Member
	default:
		return NotMember
	}
}

// Verifier checks channel membership through a Lookup.
type Verifier struct {
	lookup Lookup
}

// NewVerifier creates a Verifier.
func NewVerifier(lookup Lookup) *Verifier {
	return &Verifier{lookup: lookup}
}

// Check performs exactly one lookup, without retry. Lookup errors yield Unknown.
func (v *Verifier) Check(ctx context.Context, channelID string, userID int64) Status {
	if v == nil || v.lookup == nil {
		return Unknown
	}
	start := time.Now()
	role, err := v.lookup.ChatMemberStatus(ctx, channelID, userID)
	if err != nil {
		logger.Warn(ctx, "membership", "membership.check",
			slog.String("status", "fail"),
			slog.Int64("user_id", userID),
			slog.String("membership", Unknown.String()),
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
			logger.Err(err),
		)
		return Unknown
	}
	status := Classify(role)
	logger.Debug(ctx, "membership", "membership.check",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("role", role),
		slog.String("membership", status.String()),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return status
}
