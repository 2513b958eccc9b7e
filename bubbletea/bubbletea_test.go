package bubbletea_test

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chirp"
	bt "github.com/fwojciec/chirp/bubbletea"
	"github.com/fwojciec/chirp/mock"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T) bt.Model {
	t.Helper()
	return initModelWithSize(t, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, width, height int) bt.Model {
	t.Helper()
	m := bt.New(sliceSource(), chirp.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// sliceSource subscribes to a stream that yields msgs and then ends with end,
// or io.EOF when end is nil.
func sliceSource(msgs ...chirp.Message) bt.SubscribeFunc {
	return errSource(nil, msgs...)
}

func errSource(end error, msgs ...chirp.Message) bt.SubscribeFunc {
	if end == nil {
		end = io.EOF
	}
	streamer := &mock.Streamer{
		StreamFn: func(ctx context.Context, req chirp.Request) (chirp.Stream, error) {
			i := 0
			return &mock.Stream{
				NextFn: func() (chirp.Message, error) {
					if i < len(msgs) {
						i++
						return msgs[i-1], nil
					}
					return nil, end
				},
			}, nil
		},
	}
	return func(ctx context.Context, obs chirp.Observer) *chirp.Subscription {
		return chirp.Subscribe(ctx, streamer, chirp.Request{Kind: chirp.StreamSample}, obs)
	}
}
