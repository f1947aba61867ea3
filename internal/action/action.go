// Package action decodes inline button payloads into structured actions.
package action

import "strings"

// Kind identifies what a button press asks for.
type Kind string

const (
	KindUnknown     Kind = ""
	KindMainMenu    Kind = "show_main_menu"
	KindPrice       Kind = "menu:price"
	KindAbout       Kind = "menu:about-me"
	KindGift        Kind = "menu:get-gift"
	KindBookingInfo Kind = "book_consultation_info"
	KindBooking     Kind = "book_consultation"
	KindOpen        Kind = "open"
	KindDownload    Kind = "dl"
)

// legacyGift is still carried by buttons on messages sent by older builds.
const legacyGift = "menu:guides"

var fixed = map[string]Kind{
	string(KindMainMenu):    KindMainMenu,
	string(KindPrice):       KindPrice,
	string(KindAbout):       KindAbout,
	string(KindGift):        KindGift,
	legacyGift:              KindGift,
	string(KindBookingInfo): KindBookingInfo,
	string(KindBooking):     KindBooking,
}

// Action is a decoded callback payload. Slug is set only for KindOpen and KindDownload;
// Raw keeps the original payload for logging.
type Action struct {
	Kind Kind
	Slug string
	Raw  string
}

// Parse decodes callback data. Unrecognised payloads yield KindUnknown.
func Parse(data string) Action {
	raw := strings.TrimSpace(data)
	if kind, ok := fixed[raw]; ok {
		return Action{Kind: kind, Raw: raw}
	}
	if prefix, slug, ok := strings.Cut(raw, ":"); ok {
		switch Kind(prefix) {
		case KindOpen, KindDownload:
			return Action{Kind: Kind(prefix), Slug: slug, Raw: raw}
		}
	}
	return Action{Kind: KindUnknown, Raw: raw}
}

// Data encodes the action back into callback data.
func (a Action) Data() string {
	switch a.Kind {
	case KindOpen, KindDownload:
		return string(a.Kind) + ":" + a.Slug
	case KindUnknown:
		return a.Raw
	default:
		return string(a.Kind)
	}
}

// HasSlug reports whether the kind carries a guide slug.
func (a Action) HasSlug() bool {
	return a.Kind == KindOpen || a.Kind == KindDownload
}

// Simple returns a slug-less action of the given kind.
func Simple(kind Kind) Action { return Action{Kind: kind} }

// Open returns the preview action for a guide.
func Open(slug string) Action { return Action{Kind: KindOpen, Slug: slug} }

// Download returns the gated download action for a guide.
func Download(slug string) Action { return Action{Kind: KindDownload, Slug: slug} }
