package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chirp"
	"github.com/mattn/go-runewidth"
)

var _ MessageBlock = (*RawBlock)(nil)

// RawBlock renders a line the classifier could not handle. It starts
// collapsed, showing the reason and a one-line preview of the raw text.
type RawBlock struct {
	raw       string
	err       error
	collapsed bool
	styles    Styles
}

// NewRawBlock creates a RawBlock.
func NewRawBlock(m chirp.RawMessage, styles Styles) *RawBlock {
	return &RawBlock{raw: m.RawJSON, err: m.Err, collapsed: true, styles: styles}
}

// Collapsed reports whether the raw text is hidden.
func (b *RawBlock) Collapsed() bool { return b.collapsed }

func (b *RawBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	if _, ok := msg.(ToggleMsg); ok {
		b.collapsed = !b.collapsed
	}
	return b, nil
}

func (b *RawBlock) View(width int) string {
	reason := "unparsed"
	if b.err != nil {
		reason = b.err.Error()
	}
	if b.collapsed {
		header := b.styles.Notice.Render("▶ raw") + " " + b.styles.Error.Render(reason)
		room := width - runewidth.StringWidth("▶ raw "+reason) - 4
		if room > 8 {
			header += "  " + b.styles.Muted.Render(runewidth.Truncate(b.raw, room, "…"))
		}
		return b.styles.RawBg.Width(width).Render(header)
	}
	header := b.styles.Notice.Render("▼ raw") + " " + b.styles.Error.Render(reason)
	return b.styles.RawBg.Width(width).Render(header + "\n" + b.raw)
}
