package bubbletea

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock renders the transport error that ended a subscription: a
// highlighted header followed by the wrapped error text.
type ErrorBlock struct {
	err    error
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(err error, styles Styles) *ErrorBlock {
	return &ErrorBlock{err: err, styles: styles}
}

func (b *ErrorBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *ErrorBlock) View(width int) string {
	header := "stream error"
	if errors.Is(b.err, io.ErrUnexpectedEOF) {
		header = "stream cut off"
	}
	body := lipgloss.NewStyle().Width(width).Render(b.styles.Error.Render(b.err.Error()))
	return b.styles.ErrorBg.Render("✗ "+header) + "\n" + body
}
