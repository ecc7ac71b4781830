package main

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/testsession"
	"github.com/google/go-cmp/cmp"
	"github.com/tomz197/asteroid-board/internal/asset"
	"github.com/tomz197/asteroid-board/internal/board/config"
	gossh "golang.org/x/crypto/ssh"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.New(asset.Default())
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	return cfg
}

func newTestSession(t *testing.T, cfg *config.Config) *gossh.Session {
	t.Helper()
	srv := &ssh.Server{
		Handler: reportMiddleware(cfg, log.New(io.Discard))(func(ssh.Session) {}),
	}
	return testsession.New(t, srv, nil)
}

func TestSessionGetsTextReport(t *testing.T) {
	sess := newTestSession(t, newTestConfig(t))

	out, err := sess.Output("")
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !strings.HasPrefix(string(out), "Asteroid board configuration") {
		t.Errorf("Expected text report, got:\n%s", out)
	}
	if !strings.Contains(string(out), "ASTEROID_GENERATE_RATE") {
		t.Errorf("Expected report to list ASTEROID_GENERATE_RATE, got:\n%s", out)
	}
}

func TestSessionJSONCommand(t *testing.T) {
	cfg := newTestConfig(t)
	sess := newTestSession(t, cfg)

	out, err := sess.Output("json")
	if err != nil {
		t.Fatalf("Output: %v", err)
	}

	var got struct {
		Tuning map[config.Name]int `json:"tuning"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out)
	}
	if diff := cmp.Diff(cfg.Tuning(), got.Tuning); diff != "" {
		t.Errorf("tuning mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionPtyWidth(t *testing.T) {
	sess := newTestSession(t, newTestConfig(t))
	if err := sess.RequestPty("xterm", 24, 60, gossh.TerminalModes{}); err != nil {
		t.Fatalf("RequestPty: %v", err)
	}

	out, err := sess.Output("")
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(out), "\r", ""), "\n")
	if len(lines) < 2 {
		t.Fatalf("Expected a title and a rule, got:\n%s", out)
	}
	if expected := strings.Repeat("=", 60); lines[1] != expected {
		t.Errorf("Expected rule of 60 columns, got %d: %q", len(lines[1]), lines[1])
	}
}

// failingSession rejects every write and records the exit code.
type failingSession struct {
	ssh.Session
	exitCode int
	exited   bool
}

func (s *failingSession) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func (s *failingSession) Command() []string { return nil }

func (s *failingSession) User() string { return "tester" }

func (s *failingSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{}, nil, false
}

func (s *failingSession) Exit(code int) error {
	s.exitCode = code
	s.exited = true
	return nil
}

func TestSessionWriteErrorExits(t *testing.T) {
	nextCalled := false
	handler := reportMiddleware(newTestConfig(t), log.New(io.Discard))(func(ssh.Session) {
		nextCalled = true
	})

	sess := &failingSession{}
	handler(sess)

	if !sess.exited || sess.exitCode != 1 {
		t.Errorf("Expected exit code 1, got exited=%v code=%d", sess.exited, sess.exitCode)
	}
	if nextCalled {
		t.Error("Expected next handler to be skipped after a write error")
	}
}
