package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chirp"
)

var (
	_ MessageBlock = (*StatusBlock)(nil)
	_ MessageBlock = (*DirectMessageBlock)(nil)
)

// StatusBlock renders a status as "@screen_name: text".
type StatusBlock struct {
	screenName string
	text       string
	styles     Styles
}

// NewStatusBlock creates a StatusBlock.
func NewStatusBlock(m chirp.StatusCreate, styles Styles) *StatusBlock {
	b := &StatusBlock{text: chirp.TweetText(m.Status), styles: styles}
	if m.Status != nil && m.Status.User != nil {
		b.screenName = m.Status.User.ScreenName
	}
	return b
}

func (b *StatusBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *StatusBlock) View(width int) string {
	content := b.styles.Handle.Render(handle(b.screenName)+":") + " " + b.text
	return lipgloss.NewStyle().Width(width).Render(content)
}

// DirectMessageBlock renders a direct message with sender and recipient.
type DirectMessageBlock struct {
	sender    string
	recipient string
	text      string
	styles    Styles
}

// NewDirectMessageBlock creates a DirectMessageBlock.
func NewDirectMessageBlock(m chirp.DirectMessage, styles Styles) *DirectMessageBlock {
	b := &DirectMessageBlock{styles: styles}
	if dm := m.DirectMessage; dm != nil {
		b.sender = dm.SenderScreenName
		b.recipient = dm.RecipientScreenName
		b.text = dm.Text
	}
	return b
}

func (b *DirectMessageBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *DirectMessageBlock) View(width int) string {
	header := b.styles.Accent.Render("DM") + " " +
		b.styles.Handle.Render(handle(b.sender)) + " → " +
		b.styles.Handle.Render(handle(b.recipient)+":")
	return lipgloss.NewStyle().Width(width).Render(header + " " + b.text)
}

func handle(name string) string {
	if name == "" {
		return "@?"
	}
	return "@" + name
}
