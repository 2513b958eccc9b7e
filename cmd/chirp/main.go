// Command chirp connects to a streaming endpoint and shows what arrives.
//
// Usage:
//
//	CHIRP_BEARER_TOKEN=... chirp [flags]
//
// Flags:
//
//	--stream string      Stream kind: user, site, filter, sample, firehose (default "sample")
//	--track string       Phrases to track (filter)
//	--follow string      User ids to follow (filter, site)
//	--locations string   Bounding boxes (filter)
//	--with string        user or followings (user, site)
//	--param key=value    Extra request parameter (repeatable)
//	--config string      Path to YAML config file
//	--output string      tui, text or json
//	--endpoint string    Override the stream endpoint URL
//	--log-level string   debug, info, warn, error (default "warn")
//
// On exit a per-kind summary table is written to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/fwojciec/chirp"
	bt "github.com/fwojciec/chirp/bubbletea"
	chirphttp "github.com/fwojciec/chirp/http"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Getenv(tokenEnv), os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if isHelp(err) {
			return
		}
		fmt.Fprintf(os.Stderr, "chirp: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and streams until the stream ends or ctx is cancelled.
// Environment values are passed in; env is only read in main.
func run(ctx context.Context, args []string, token string, stdout, stderr io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}
	file, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	s, err := resolveSettings(file, flags, token, defaultOutput(stdout))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: s.logLevel}))
	if s.output == outputTUI {
		// The viewer owns the terminal.
		logger = slog.New(slog.DiscardHandler)
	}
	client := chirphttp.New(clientOptions(s, logger)...)

	st := newStats(time.Now())
	defer func() { st.render(stderr, time.Now()) }()

	if s.output == outputTUI {
		source := func(viewCtx context.Context, obs chirp.Observer) *chirp.Subscription {
			sub := chirp.Subscribe(viewCtx, client, s.req, st.observe(obs))
			context.AfterFunc(ctx, sub.Unsubscribe)
			return sub
		}
		if err := bt.Run(ctx, bt.New(source, chirp.DefaultTheme())); err != nil {
			return fmt.Errorf("TUI: %w", err)
		}
		return nil
	}

	p := &printer{w: stdout, format: s.output, width: terminalWidth(stdout)}
	sub := chirp.Subscribe(ctx, client, s.req, st.observe(p))
	logger.Info("subscribed", "stream", s.req.Kind)
	if err := sub.Wait(); err != nil {
		return err
	}
	logger.Info("stream ended", "state", sub.State())
	return nil
}

func clientOptions(s settings, logger *slog.Logger) []chirphttp.Option {
	opts := []chirphttp.Option{chirphttp.WithLogger(logger)}
	if s.token != "" {
		opts = append(opts, chirphttp.WithBearerToken(s.token))
	}
	if s.endpoint != "" {
		opts = append(opts, chirphttp.WithEndpoint(s.req.Kind, s.endpoint))
	}
	if s.userAgent != "" {
		opts = append(opts, chirphttp.WithUserAgent(s.userAgent))
	}
	return opts
}

// defaultOutput picks the viewer on an interactive terminal and plain lines
// otherwise.
func defaultOutput(w io.Writer) string {
	if isTerminal(w) {
		return outputTUI
	}
	return outputText
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// terminalWidth returns the line width for text output. Lines written to
// pipes and files are not truncated.
func terminalWidth(w io.Writer) int {
	if !isTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(w.(*os.File).Fd())
	if err != nil {
		return 0
	}
	return width
}
