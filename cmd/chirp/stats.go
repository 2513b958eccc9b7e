package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/chirp"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// stats counts delivered messages by kind.
type stats struct {
	mu     sync.Mutex
	start  time.Time
	counts map[chirp.Kind]int
	total  int
}

func newStats(start time.Time) *stats {
	return &stats{start: start, counts: make(map[chirp.Kind]int)}
}

func (s *stats) add(m chirp.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[m.Kind()]++
	s.total++
}

// observe returns an Observer that counts each message before passing it on.
func (s *stats) observe(next chirp.Observer) chirp.Observer {
	return chirp.ObserverFuncs{
		NextFn: func(m chirp.Message) {
			s.add(m)
			next.OnNext(m)
		},
		ErrorFn:     next.OnError,
		CompletedFn: next.OnCompleted,
	}
}

// render writes the per-kind summary table.
func (s *stats) render(w io.Writer, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	// The caption is printed unwrapped below the table; a title would wrap
	// at the two-column width.
	tw.SetCaption(fmt.Sprintf("%s messages in %s", humanize.Comma(int64(s.total)), end.Sub(s.start).Round(time.Millisecond)))
	tw.AppendHeader(table.Row{"Kind", "Count"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, k := range chirp.Kinds() {
		if n := s.counts[k]; n > 0 {
			tw.AppendRow(table.Row{k.String(), humanize.Comma(int64(n))})
		}
	}
	tw.AppendFooter(table.Row{"Total", humanize.Comma(int64(s.total))})
	tw.Render()
}
