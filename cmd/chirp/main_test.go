package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamServer(t *testing.T, lines ...string) (*httptest.Server, <-chan *http.Request) {
	t.Helper()
	reqs := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		reqs <- r.Clone(context.Background())
		w.WriteHeader(http.StatusOK)
		for _, line := range lines {
			fmt.Fprintf(w, "%s\r\n", line)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, reqs
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	srv, reqs := streamServer(t,
		`{"id":1,"text":"hello","user":{"screen_name":"jack"}}`,
		``,
		`{"limit":{"track":7}}`,
		`{nope`,
	)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--stream", "filter",
		"--track", "golang",
		"--endpoint", srv.URL + "/stream",
		"--output", "text",
	}, "secret", &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "status"))
	assert.Contains(t, lines[0], "@jack: hello")
	assert.Contains(t, lines[1], "limit: 7 undelivered")
	assert.True(t, strings.HasPrefix(lines[2], "raw"))

	got := <-reqs
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/stream", got.URL.Path)
	assert.Equal(t, "golang", got.PostForm.Get("track"))
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))

	summary := stderr.String()
	assert.Contains(t, summary, "3 messages in")
	assert.Contains(t, summary, "status")
	assert.Contains(t, summary, "limit")
	assert.Contains(t, summary, "Total")
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	line := `{"friends":[1,2,3]}`
	srv, _ := streamServer(t, line)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--stream", "user",
		"--endpoint", srv.URL,
		"--output", "json",
	}, "", &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, line+"\n", stdout.String())
}

func TestRun_StatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--endpoint", srv.URL,
		"--output", "text",
	}, "", &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestRun_InvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown stream", []string{"--stream", "everything"}, "unknown stream kind"},
		{"filter without predicate", []string{"--stream", "filter", "--output", "text"}, "filter stream requires"},
		{"bad param", []string{"--param", "novalue", "--output", "text"}, "invalid --param"},
		{"bad output", []string{"--output", "xml"}, "unknown output"},
		{"extra argument", []string{"extra"}, "unexpected argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, "", &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--help"}, "", &stdout, &stderr)
	assert.True(t, isHelp(err))
}
