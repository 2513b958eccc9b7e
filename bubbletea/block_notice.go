package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chirp"
)

var _ MessageBlock = (*NoticeBlock)(nil)

// NoticeBlock renders stream bookkeeping such as limits, warnings, deletes
// and disconnects as a single summary line.
type NoticeBlock struct {
	kind   chirp.Kind
	text   string
	styles Styles
}

// NewNoticeBlock creates a NoticeBlock.
func NewNoticeBlock(m chirp.Message, styles Styles) *NoticeBlock {
	return &NoticeBlock{kind: m.Kind(), text: chirp.Summary(m), styles: styles}
}

func (b *NoticeBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *NoticeBlock) View(width int) string {
	style := b.styles.Notice
	switch b.kind {
	case chirp.KindDisconnect:
		style = b.styles.Error
	case chirp.KindFriends, chirp.KindControl:
		style = b.styles.Muted
	}
	return lipgloss.NewStyle().Width(width).Render(style.Render("· " + b.text))
}
