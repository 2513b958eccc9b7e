// Package bubbletea provides a Bubble Tea viewer for a live stream.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chirp"
)

// SubscribeFunc starts a subscription that delivers to obs. The viewer
// cancels ctx when the user quits. Typically it wraps chirp.Subscribe with a
// fixed streamer and request.
type SubscribeFunc func(ctx context.Context, obs chirp.Observer) *chirp.Subscription

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. When ctx is cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// StreamMessageMsg wraps a delivered message for the Bubble Tea model.
type StreamMessageMsg struct {
	Message chirp.Message
}

// StreamDoneMsg signals that the subscription has ended.
type StreamDoneMsg struct {
	State chirp.SubscriptionState
	Err   error
}
