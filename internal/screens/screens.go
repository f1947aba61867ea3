// Package screens builds the text and keyboard of every conversational screen.
// Building is pure: the same screen and catalog always produce the same View.
package screens

import (
	"fmt"
	"strings"

	"github.com/m3rciful/guidebot/core/telegram/format"
	"github.com/m3rciful/guidebot/internal/action"
	"github.com/m3rciful/guidebot/internal/guides"
)

// Kind enumerates the screens.
type Kind int

const (
	KindMainMenu Kind = iota
	KindPrice
	KindAbout
	KindGuideList
	KindGuideDetail
	KindBookingInfo
	KindBookingConfirmed
	KindGiftUnlocked
)

var kindNames = [...]string{
	KindMainMenu:         "main_menu",
	KindPrice:            "price",
	KindAbout:            "about",
	KindGuideList:        "guide_list",
	KindGuideDetail:      "guide_detail",
	KindBookingInfo:      "booking_info",
	KindBookingConfirmed: "booking_confirmed",
	KindGiftUnlocked:     "gift_unlocked",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("screen(%d)", int(k))
}

// Screen is a conversational state. Slug is set for GuideDetail and GiftUnlocked.
type Screen struct {
	Kind Kind
	Slug string
}

func (s Screen) String() string {
	if s.Slug == "" {
		return s.Kind.String()
	}
	return s.Kind.String() + ":" + s.Slug
}

func MainMenu() Screen         { return Screen{Kind: KindMainMenu} }
func Price() Screen            { return Screen{Kind: KindPrice} }
func About() Screen            { return Screen{Kind: KindAbout} }
func GuideList() Screen        { return Screen{Kind: KindGuideList} }
func BookingInfo() Screen      { return Screen{Kind: KindBookingInfo} }
func BookingConfirmed() Screen { return Screen{Kind: KindBookingConfirmed} }

func GuideDetail(slug string) Screen  { return Screen{Kind: KindGuideDetail, Slug: slug} }
func GiftUnlocked(slug string) Screen { return Screen{Kind: KindGiftUnlocked, Slug: slug} }

// Button is a callback button when URL is empty, a link button otherwise.
type Button struct {
	Label  string
	Action action.Action
	URL    string
}

// Callback returns a button that sends a back to the bot when pressed.
func Callback(label string, a action.Action) Button { return Button{Label: label, Action: a} }

// Link returns a button that opens url.
func Link(label, url string) Button { return Button{Label: label, URL: url} }

// View is a rendered screen.
type View struct {
	Text      string
	Rows      [][]Button
	ParseMode string
}

// Context carries the data a screen depends on.
type Context struct {
	// Guides is the catalog snapshot for GuideList.
	Guides []guides.Guide
	// Guide is the resolved record for GuideDetail and GiftUnlocked.
	Guide *guides.Guide
	// Gift adds a claim button for a deep-linked guide to the main menu.
	Gift *guides.Guide
	// Greeting selects the /start wording of MainMenu and GuideDetail.
	Greeting bool
}

// Builder renders screens. ChannelURL may be empty when the channel has no public link.
type Builder struct {
	ChannelURL string
}

// Build renders s. It never fails; missing optional data is left out.
func (b Builder) Build(s Screen, c Context) View {
	switch s.Kind {
	case KindPrice:
		return html(textPrice,
			row(Callback(labelBook, action.Simple(action.KindBookingInfo))),
			backRow(),
		)
	case KindAbout:
		return html(textAbout,
			row(Callback(labelPrice, action.Simple(action.KindPrice))),
			row(Callback(labelGift, action.Simple(action.KindGift))),
			backRow(),
		)
	case KindGuideList:
		return b.guideList(c.Guides)
	case KindGuideDetail:
		return b.guideDetail(c.Guide, c.Greeting)
	case KindBookingInfo:
		return html(textBookingInfo,
			row(Callback(labelBook, action.Simple(action.KindBooking))),
			row(Callback(labelPrice, action.Simple(action.KindPrice))),
			backRow(),
		)
	case KindBookingConfirmed:
		return html(textBookingDone, backRow())
	case KindGiftUnlocked:
		return html(textGiftUnlocked, menuRows()...)
	default:
		return b.mainMenu(c)
	}
}

func (b Builder) mainMenu(c Context) View {
	text := textMainMenu
	if c.Greeting {
		text = textGreeting
	}
	var rows [][]Button
	if c.Gift != nil && c.Gift.Slug != "" {
		rows = append(rows, row(Callback(labelClaimGift, action.Open(c.Gift.Slug))))
	}
	return html(text, append(rows, menuRows()...)...)
}

func (b Builder) guideList(list []guides.Guide) View {
	if len(list) == 0 {
		return html(textGuideListEmpty, row(Callback(labelMainMenu, action.Simple(action.KindMainMenu))))
	}
	lines := []string{textGuideListHeader, ""}
	rows := make([][]Button, 0, len(list)+1)
	for _, g := range list {
		lines = append(lines, guideItem(g))
		rows = append(rows, row(Callback(title(g), action.Open(g.Slug))))
	}
	return html(format.Lines(lines...), append(rows, backRow())...)
}

func guideItem(g guides.Guide) string {
	item := "• " + format.EscapeHTML(title(g))
	if g.Description != "" {
		item += " — " + format.EscapeHTML(g.Description)
	}
	return item
}

func (b Builder) guideDetail(g *guides.Guide, greeting bool) View {
	if g == nil {
		return html(textGuideMissing, backRow())
	}
	lines := []string{}
	if greeting {
		lines = append(lines, textGuideGreeting, "")
	}
	lines = append(lines, "Гайд: "+format.Bold(title(*g)))
	if g.Description != "" {
		lines = append(lines, "", format.EscapeHTML(g.Description))
	}
	lines = append(lines, "", b.subscribeLine(textGuideSubscribe))
	return html(format.Lines(lines...), b.gateRow(g.Slug), backRow())
}

// SubscribePrompt is sent when a download is requested without channel membership.
func (b Builder) SubscribePrompt(g guides.Guide) View {
	text := textNotSubscribed + "\n" + textOpenChannel
	if b.ChannelURL != "" {
		text = textNotSubscribed + "\n" + format.EscapeHTML(b.ChannelURL)
	}
	return html(text, b.gateRow(g.Slug))
}

// DeliveryFailure is sent when the guide file could not be streamed.
func (b Builder) DeliveryFailure() View {
	return View{Text: textDeliveryFailure}
}

// CatalogEntry is one line of the admin catalog report.
type CatalogEntry struct {
	Guide guides.Guide
	Asset bool
}

// Catalog renders the admin report of guides and their files.
func (b Builder) Catalog(entries []CatalogEntry) View {
	if len(entries) == 0 {
		return html(textCatalogEmpty)
	}
	lines := []string{fmt.Sprintf("%s: %d", textCatalogHeader, len(entries)), ""}
	for _, e := range entries {
		mark := "✅"
		if !e.Asset {
			mark = "❌"
		}
		lines = append(lines, fmt.Sprintf("%s <code>%s</code> — %s (%s)",
			mark,
			format.EscapeHTML(e.Guide.Slug),
			format.EscapeHTML(title(e.Guide)),
			format.EscapeHTML(e.Guide.File),
		))
	}
	return html(format.Lines(lines...))
}

func (b Builder) subscribeLine(prefix string) string {
	if b.ChannelURL == "" {
		return prefix + ". " + textOpenChannel
	}
	return prefix + ": " + format.EscapeHTML(b.ChannelURL)
}

func (b Builder) gateRow(slug string) []Button {
	check := Callback(labelCheckSubscribe, action.Download(slug))
	if b.ChannelURL == "" {
		return row(check)
	}
	return row(Link(labelSubscribe, b.ChannelURL), check)
}

func menuRows() [][]Button {
	return [][]Button{
		row(Callback(labelPrice, action.Simple(action.KindPrice))),
		row(Callback(labelGift, action.Simple(action.KindGift))),
		row(Callback(labelAbout, action.Simple(action.KindAbout))),
		row(Callback(labelBookingInfo, action.Simple(action.KindBookingInfo))),
	}
}

func backRow() []Button {
	return row(Callback(labelBackToMenu, action.Simple(action.KindMainMenu)))
}

func row(buttons ...Button) []Button { return buttons }

func html(text string, rows ...[]Button) View {
	return View{Text: text, Rows: rows, ParseMode: format.ParseModeHTML}
}

func title(g guides.Guide) string {
	if t := strings.TrimSpace(g.Title); t != "" {
		return t
	}
	return textUntitled
}
