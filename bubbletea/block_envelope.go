package bubbletea

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chirp"
)

var _ MessageBlock = (*EnvelopeBlock)(nil)

// EnvelopeBlock renders the message of a site stream envelope under a
// "for <user id>" header.
type EnvelopeBlock struct {
	forUser int64
	inner   MessageBlock
	styles  Styles
}

// NewEnvelopeBlock creates an EnvelopeBlock.
func NewEnvelopeBlock(m chirp.Envelope, styles Styles) *EnvelopeBlock {
	b := &EnvelopeBlock{forUser: m.ForUser, styles: styles}
	if m.Message != nil {
		b.inner = NewBlock(m.Message, styles)
	}
	return b
}

func (b *EnvelopeBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	if b.inner == nil {
		return b, nil
	}
	var cmd tea.Cmd
	b.inner, cmd = b.inner.Update(msg)
	return b, cmd
}

func (b *EnvelopeBlock) View(width int) string {
	header := b.styles.Accent.Render("for " + strconv.FormatInt(b.forUser, 10))
	if b.inner == nil {
		return header
	}
	return header + "\n" + b.inner.View(width)
}
