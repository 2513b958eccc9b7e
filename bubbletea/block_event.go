package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chirp"
)

var _ MessageBlock = (*EventBlock)(nil)

// EventBlock renders a social event as "source → event → target", followed by
// the target status or list when the event carries one.
type EventBlock struct {
	source string
	name   string
	target string
	object string
	styles Styles
}

// NewEventBlock creates an EventBlock.
func NewEventBlock(m chirp.Event, styles Styles) *EventBlock {
	b := &EventBlock{name: string(m.Code), styles: styles}
	if m.Source != nil {
		b.source = m.Source.ScreenName
	}
	if m.Target != nil {
		b.target = m.Target.ScreenName
	}
	switch {
	case m.TargetStatus != nil:
		b.object = chirp.TweetText(m.TargetStatus)
	case m.TargetList != nil:
		b.object = m.TargetList.FullName
		if b.object == "" {
			b.object = m.TargetList.Name
		}
	}
	return b
}

func (b *EventBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *EventBlock) View(width int) string {
	content := b.styles.Handle.Render(handle(b.source)) + " → " +
		b.styles.Event.Render(b.name) + " → " +
		b.styles.Handle.Render(handle(b.target))
	if b.object != "" {
		content += "\n" + b.styles.Muted.Render(b.object)
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}
