package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/chirp"
	"github.com/mattn/go-runewidth"
)

// kindColumn is the display width of the kind column in text output.
const kindColumn = 22

// printer writes one line per delivered message.
type printer struct {
	w      io.Writer
	format string
	width  int // maximum line width in text output; 0 means unlimited
}

var _ chirp.Observer = (*printer)(nil)

func (p *printer) OnNext(m chirp.Message) {
	if p.format == outputJSON {
		fmt.Fprintln(p.w, m.Raw())
		return
	}
	line := runewidth.FillRight(m.Kind().String(), kindColumn) + chirp.Summary(m)
	if p.width > 0 {
		line = runewidth.Truncate(line, p.width, "…")
	}
	fmt.Fprintln(p.w, line)
}

func (p *printer) OnError(error) {}

func (p *printer) OnCompleted() {}
