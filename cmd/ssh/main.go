package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/asteroid-board/internal/asset"
	"github.com/tomz197/asteroid-board/internal/board/config"
	envconfig "github.com/tomz197/asteroid-board/internal/config"
	"github.com/tomz197/asteroid-board/internal/draw"
)

const (
	defaultHost            = "::"
	defaultPort            = "2222"
	defaultHostKeyPath     = "/app/keys/host_key"
	defaultShutdownTimeout = 5 * time.Second
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ssh",
	})

	host := envconfig.GetEnv("SSH_HOST", defaultHost)
	port := envconfig.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := envconfig.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	shutdownTimeout := envconfig.GetEnvDuration("SSH_SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "shutdownTimeout", shutdownTimeout)

	// One surface for the whole process, shared by every session.
	cfg, err := config.New(asset.Default())
	if err != nil {
		logger.Fatal("failed to build board config", "err", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			reportMiddleware(cfg, logger),
			logging.MiddlewareWithLogger(logger),
		),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// reportMiddleware writes the board configuration to each session.
// A session started with the command "json" receives JSON instead of the table.
func reportMiddleware(cfg *config.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			var err error
			if cmd := sess.Command(); len(cmd) > 0 && cmd[0] == "json" {
				err = draw.WriteJSON(sess, cfg)
			} else {
				width := 0
				if pty, _, ok := sess.Pty(); ok {
					width = draw.ReportWidth(func() (int, int, error) {
						return pty.Window.Width, pty.Window.Height, nil
					})
				}
				err = draw.WriteReportWidth(sess, cfg, width)
			}
			if err != nil {
				logger.Error("failed to write report", "user", sess.User(), "err", err)
				_ = sess.Exit(1)
				return
			}
			next(sess)
		}
	}
}
