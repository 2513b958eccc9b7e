package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/chirp"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// tokenEnv names the environment variable holding the bearer token.
const tokenEnv = "CHIRP_BEARER_TOKEN"

// Output formats.
const (
	outputTUI  = "tui"
	outputText = "text"
	outputJSON = "json"
)

// fileConfig is the YAML config file layout.
type fileConfig struct {
	Stream    string            `yaml:"stream"`
	Params    map[string]string `yaml:"params"`
	Endpoint  string            `yaml:"endpoint"`
	UserAgent string            `yaml:"user_agent"`
	Output    string            `yaml:"output"`
}

// flagValues holds parsed command-line flags. changed records which flags
// were set explicitly so they can override the config file.
type flagValues struct {
	stream     string
	track      string
	follow     string
	locations  string
	with       string
	params     []string
	configPath string
	output     string
	endpoint   string
	userAgent  string
	logLevel   string
	changed    func(name string) bool
}

// settings is the fully resolved configuration for one run.
type settings struct {
	req       chirp.Request
	endpoint  string
	userAgent string
	output    string
	token     string
	logLevel  slog.Level
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("chirp", pflag.ContinueOnError)
	fs.StringVar(&v.stream, "stream", "sample", "stream kind: user, site, filter, sample, firehose")
	fs.StringVar(&v.track, "track", "", "comma-separated phrases to track (filter)")
	fs.StringVar(&v.follow, "follow", "", "comma-separated user ids to follow (filter, site)")
	fs.StringVar(&v.locations, "locations", "", "comma-separated bounding boxes (filter)")
	fs.StringVar(&v.with, "with", "", "user or followings (user, site)")
	fs.StringArrayVar(&v.params, "param", nil, "extra request parameter as key=value (repeatable)")
	fs.StringVar(&v.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&v.output, "output", "", "output format: tui, text, json (default tui on a terminal, else text)")
	fs.StringVar(&v.endpoint, "endpoint", "", "override the stream endpoint URL")
	fs.StringVar(&v.userAgent, "user-agent", "", "User-Agent header")
	fs.StringVar(&v.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	v.changed = fs.Changed
	return fs
}

func parseFlags(args []string) (flagValues, error) {
	var v flagValues
	fs := newFlagSet(&v)
	if err := fs.Parse(args); err != nil {
		return flagValues{}, err
	}
	if fs.NArg() > 0 {
		return flagValues{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return v, nil
}

// loadConfig reads the YAML config file at path. An empty path yields an
// empty config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSettings merges the config file, flags and environment. Flags set
// explicitly win over the file; the token only comes from the environment.
// defaultOutput is used when neither flags nor the file pick a format.
func resolveSettings(file fileConfig, flags flagValues, token, defaultOutput string) (settings, error) {
	s := settings{token: token}

	streamName := flags.stream
	if !flags.changed("stream") && file.Stream != "" {
		streamName = file.Stream
	}
	kind, err := chirp.ParseStreamKind(streamName)
	if err != nil {
		return settings{}, err
	}

	params := url.Values{}
	for k, v := range file.Params {
		params.Set(k, v)
	}
	for name, value := range map[string]string{
		"track":     flags.track,
		"follow":    flags.follow,
		"locations": flags.locations,
		"with":      flags.with,
	} {
		if value != "" {
			params.Set(name, value)
		}
	}
	for _, p := range flags.params {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return settings{}, fmt.Errorf("invalid --param %q: want key=value", p)
		}
		params.Add(k, v)
	}
	s.req = chirp.Request{Kind: kind, Params: params}
	if err := s.req.Validate(); err != nil {
		return settings{}, err
	}

	s.endpoint = pick(flags.endpoint, file.Endpoint)
	s.userAgent = pick(flags.userAgent, file.UserAgent)
	s.output = pick(flags.output, pick(file.Output, defaultOutput))
	switch s.output {
	case outputTUI, outputText, outputJSON:
	default:
		return settings{}, fmt.Errorf("unknown output %q: must be tui, text or json", s.output)
	}

	if err := s.logLevel.UnmarshalText([]byte(flags.logLevel)); err != nil {
		return settings{}, fmt.Errorf("invalid --log-level: %w", err)
	}
	return s, nil
}

func pick(first, fallback string) string {
	if first != "" {
		return first
	}
	return fallback
}

// isHelp reports whether err is the request for usage output.
func isHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}
