package main

import (
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-board/internal/asset"
	"github.com/tomz197/asteroid-board/internal/board/config"
	envconfig "github.com/tomz197/asteroid-board/internal/config"
	"github.com/tomz197/asteroid-board/internal/draw"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "web",
	})

	host := envconfig.GetEnv("WEB_HOST", defaultHost)
	port := envconfig.GetEnv("WEB_PORT", defaultPort)

	cfg, err := config.New(asset.Default())
	if err != nil {
		logger.Fatal("failed to build board config", "err", err)
	}

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, newMux(cfg, logger)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newMux serves the text report at / and JSON at /config.json.
func newMux(cfg *config.Config, logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := draw.WriteReport(w, cfg); err != nil {
			logger.Error("failed to write report", "remote", r.RemoteAddr, "err", err)
		}
	})

	mux.HandleFunc("GET /config.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := draw.WriteJSON(w, cfg); err != nil {
			logger.Error("failed to write json", "remote", r.RemoteAddr, "err", err)
		}
	})

	return mux
}
