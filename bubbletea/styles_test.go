package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chirp"
	bt "github.com/fwojciec/chirp/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(chirp.DefaultTheme())

	assert.Equal(t, lipgloss.Color("4"), styles.Handle.GetForeground())
	assert.True(t, styles.Handle.GetBold())

	assert.Equal(t, lipgloss.Color("5"), styles.Event.GetForeground())
	assert.Equal(t, lipgloss.Color("3"), styles.Notice.GetForeground())
	assert.Equal(t, lipgloss.Color("1"), styles.Error.GetForeground())
	assert.Equal(t, lipgloss.Color("2"), styles.Success.GetForeground())

	assert.Equal(t, lipgloss.Color("8"), styles.Muted.GetForeground())
	assert.True(t, styles.Muted.GetFaint())

	assert.Equal(t, lipgloss.Color("6"), styles.Accent.GetForeground())
	assert.True(t, styles.Accent.GetBold())

	assert.Equal(t, lipgloss.Color("0"), styles.RawBg.GetBackground())
	assert.Equal(t, lipgloss.Color("1"), styles.ErrorBg.GetBackground())
}

func TestNewStylesNegativeIndexYieldsNoColor(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(chirp.Theme{Handle: -1})

	assert.Equal(t, lipgloss.NoColor{}, styles.Handle.GetForeground())
}
