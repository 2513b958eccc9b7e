package http

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// ErrLineTooLong is returned by Lines.Next for a line longer than the size
// limit. The line is truncated to the limit and the rest of it is discarded,
// so reading can continue with the following line.
var ErrLineTooLong = errors.New("http: line exceeds size limit")

// Lines reads the non-blank lines of a streaming response body. Blank and
// whitespace-only lines are keep-alives and are never returned.
//
// Lines is not safe for concurrent use, except that Close may be called from
// any goroutine. Close releases the connection exactly once.
type Lines struct {
	body   io.ReadCloser
	gz     *gzipBody
	reader *bufio.Reader

	once     sync.Once
	closeErr error
}

// NewLines returns Lines reading from body. When gzipped is true the body is
// decompressed; the gzip header is not read until the first call to Next, so
// construction never blocks on the network.
func NewLines(body io.ReadCloser, gzipped bool) *Lines {
	l := &Lines{body: body}
	var r io.Reader = body
	if gzipped {
		l.gz = &gzipBody{body: body}
		r = l.gz
	}
	l.reader = bufio.NewReaderSize(r, 64*1024)
	return l
}

// Next returns the next non-blank line without its line terminator.
// It returns io.EOF when the body ends cleanly. An oversized line is
// returned truncated together with ErrLineTooLong; the body stays usable.
func (l *Lines) Next() (string, error) {
	for {
		line, err := l.readLine()
		if err != nil {
			return line, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, nil
	}
}

func (l *Lines) readLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		frag, err := l.reader.ReadSlice('\n')
		switch {
		case tooLong:
		case len(buf)+len(frag) > maxLineSize:
			buf = append(buf, frag[:maxLineSize-len(buf)]...)
			tooLong = true
		default:
			buf = append(buf, frag...)
		}
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(buf) == 0 {
				return "", io.EOF
			}
			break
		}
		return "", fmt.Errorf("http: read stream: %w", err)
	}
	line := strings.TrimRight(string(buf), "\r\n")
	if tooLong {
		return line, ErrLineTooLong
	}
	return line, nil
}

// Close releases the response body and the gzip reader. Subsequent calls
// return the result of the first.
func (l *Lines) Close() error {
	l.once.Do(func() {
		l.closeErr = l.body.Close()
		if l.gz != nil {
			l.gz.close()
		}
	})
	return l.closeErr
}

// gzipBody defers reading the gzip header until data is first requested.
// mu is held across reads so close never races a pending Read; Lines.Close
// closes the body first, which unblocks that Read.
type gzipBody struct {
	mu     sync.Mutex
	body   io.Reader
	zr     *gzip.Reader
	closed bool
}

func (g *gzipBody) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, io.ErrClosedPipe
	}
	if g.zr == nil {
		zr, err := gzip.NewReader(g.body)
		if err != nil {
			return 0, err
		}
		g.zr = zr
	}
	return g.zr.Read(p)
}

func (g *gzipBody) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	if g.zr != nil {
		g.zr.Close()
	}
}
