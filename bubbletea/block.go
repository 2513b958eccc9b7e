package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chirp"
)

// MessageBlock is a renderable element in the message list.
// Unlike tea.Model, View takes a width parameter so the root model
// controls layout and blocks are testable in isolation.
type MessageBlock interface {
	Update(tea.Msg) (MessageBlock, tea.Cmd)
	View(width int) string
}

// ToggleMsg tells a collapsible block to toggle its collapsed state.
// Sent by the root model when the user presses the toggle key on a focused block.
type ToggleMsg struct{}

// NewBlock returns the block that renders msg.
func NewBlock(msg chirp.Message, styles Styles) MessageBlock {
	switch m := msg.(type) {
	case chirp.StatusCreate:
		return NewStatusBlock(m, styles)
	case chirp.DirectMessage:
		return NewDirectMessageBlock(m, styles)
	case chirp.Event:
		return NewEventBlock(m, styles)
	case chirp.Envelope:
		return NewEnvelopeBlock(m, styles)
	case chirp.RawMessage:
		return NewRawBlock(m, styles)
	default:
		return NewNoticeBlock(msg, styles)
	}
}
