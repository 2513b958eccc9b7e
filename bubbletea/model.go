package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fwojciec/chirp"
)

// MaxBlocks is the number of blocks kept on screen. Older blocks are dropped.
const MaxBlocks = 500

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the stream viewer.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	source SubscribeFunc
	styles Styles

	blocks     []MessageBlock
	blockFocus int // index of focused collapsible block (-1 = none)
	count      int

	ctx    context.Context
	cancel context.CancelFunc
	msgCh  chan chirp.Message
	doneCh chan StreamDoneMsg

	state chirp.SubscriptionState
	err   error
	ready bool
}

// New creates a viewer that subscribes through source when the program starts.
func New(source SubscribeFunc, theme chirp.Theme) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		source:     source,
		styles:     NewStyles(theme),
		blockFocus: -1,
		ctx:        ctx,
		cancel:     cancel,
		msgCh:      make(chan chirp.Message, 256),
		doneCh:     make(chan StreamDoneMsg, 1),
		state:      chirp.SubscriptionRunning,
	}
}

// Done reports whether the subscription has ended.
func (m Model) Done() bool { return m.state != chirp.SubscriptionRunning }

// State returns the subscription state as last reported to the model.
func (m Model) State() chirp.SubscriptionState { return m.state }

// Count returns the number of messages received.
func (m Model) Count() int { return m.count }

// Err returns the terminal error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		startSubscription(m.ctx, m.source, m.msgCh, m.doneCh),
		listenForMessage(m.msgCh, m.doneCh),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StreamMessageMsg:
		atBottom := m.Viewport.AtBottom()
		m = m.appendMessage(msg.Message)
		m.Viewport.SetContent(m.renderContent())
		if atBottom {
			m.Viewport.GotoBottom()
		}
		return m, listenForMessage(m.msgCh, m.doneCh)

	case StreamDoneMsg:
		m.state = msg.State
		if msg.Err != nil {
			m.err = msg.Err
			m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
			m.Viewport.SetContent(m.renderContent())
			m.Viewport.GotoBottom()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Connecting..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1 // newline between sections
	vpHeight := msg.Height - statusHeight - borderHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.cancel()
		return m, tea.Quit

	case tea.KeyTab:
		if m.blockFocus >= 0 {
			block, cmd := m.blocks[m.blockFocus].Update(ToggleMsg{})
			m.blocks[m.blockFocus] = block
			m.Viewport.SetContent(m.renderContent())
			return m, cmd
		}
		return m, nil

	case tea.KeyShiftTab:
		m = m.cycleFocusPrev()
		m.Viewport.SetContent(m.renderContent())
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// appendMessage adds the block for msg, dropping the oldest blocks beyond
// MaxBlocks.
func (m Model) appendMessage(msg chirp.Message) Model {
	m.count++
	m.blocks = append(m.blocks, NewBlock(msg, m.styles))
	if over := len(m.blocks) - MaxBlocks; over > 0 {
		m.blocks = append([]MessageBlock(nil), m.blocks[over:]...)
	}
	return m.updateBlockFocus()
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

// updateBlockFocus scans backwards to find the last collapsible block.
// Only the focused block responds to Tab. ShiftTab cycles to the previous
// collapsible block.
func (m Model) updateBlockFocus() Model {
	m.blockFocus = -1
	for i := len(m.blocks) - 1; i >= 0; i-- {
		if collapsible(m.blocks[i]) {
			m.blockFocus = i
			return m
		}
	}
	return m
}

// cycleFocusPrev moves blockFocus to the previous collapsible block, wrapping around.
func (m Model) cycleFocusPrev() Model {
	if len(m.blocks) == 0 {
		return m
	}
	start := m.blockFocus - 1
	if start < 0 {
		start = len(m.blocks) - 1
	}
	for i := range len(m.blocks) {
		idx := (start - i + len(m.blocks)) % len(m.blocks)
		if collapsible(m.blocks[idx]) {
			m.blockFocus = idx
			return m
		}
	}
	m.blockFocus = -1
	return m
}

func collapsible(b MessageBlock) bool {
	_, ok := b.(*RawBlock)
	return ok
}

func (m Model) statusLine() string {
	count := humanize.Comma(int64(m.count)) + " messages"
	switch m.state {
	case chirp.SubscriptionRunning:
		return m.styles.Muted.Render(fmt.Sprintf("%s · streaming · Tab toggles raw lines, Ctrl+C to quit", count))
	case chirp.SubscriptionErrored:
		return m.styles.Error.Render(fmt.Sprintf("%s · errored: %v", count, m.err))
	case chirp.SubscriptionCompleted:
		return m.styles.Success.Render(fmt.Sprintf("%s · completed · Ctrl+C to quit", count))
	default:
		return m.styles.Muted.Render(fmt.Sprintf("%s · %s · Ctrl+C to quit", count, m.state))
	}
}

// startSubscription subscribes through source and forwards delivered messages
// to msgCh. It blocks until the subscription ends, then closes msgCh and
// reports the outcome on doneCh.
func startSubscription(ctx context.Context, source SubscribeFunc, msgCh chan<- chirp.Message, doneCh chan<- StreamDoneMsg) tea.Cmd {
	return func() tea.Msg {
		sub := source(ctx, chirp.ObserverFuncs{
			NextFn: func(msg chirp.Message) {
				select {
				case msgCh <- msg:
				case <-ctx.Done():
				}
			},
		})
		<-sub.Done()
		close(msgCh)
		doneCh <- StreamDoneMsg{State: sub.State(), Err: sub.Err()}
		return nil
	}
}

// listenForMessage waits for the next message from the channel.
// When the channel closes, it reads the outcome from doneCh.
func listenForMessage(ch <-chan chirp.Message, doneCh <-chan StreamDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return <-doneCh
		}
		return StreamMessageMsg{Message: msg}
	}
}
