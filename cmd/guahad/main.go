package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/tjflores/guaha"
	"github.com/tjflores/guaha/internal/lexicon"
	"github.com/tjflores/guaha/internal/server"
)

func main() {
	initLogger()

	addr := flag.String("addr", envOr("GUAHA_ADDR", ":8080"), "HTTP listen address")
	dictPath := flag.String("dict", envOr("GUAHA_DICT", "./ChamorroDictionary.json"), "Path to the dictionary JSON file")
	variantsPath := flag.String("variants", os.Getenv("GUAHA_VARIANTS"), "Path to the variants JSON file (default: ChamorroVariants.json next to the dictionary, when present)")
	reloadInterval := flag.Duration("reload-interval", 0, "Periodic reload on top of the file watcher (0 disables)")
	flag.Parse()

	vp := *variantsPath
	if vp == "" {
		// A variants file sitting next to the dictionary is picked up
		// automatically; anywhere else it must be named explicitly.
		probe := filepath.Join(filepath.Dir(*dictPath), "ChamorroVariants.json")
		if _, err := os.Stat(probe); err == nil {
			vp = probe
		}
	}

	lx, err := lexicon.Load(*dictPath, vp)
	if err != nil {
		slog.Error("Failed to load dictionary", "err", err)
		os.Exit(1)
	}
	slog.Info("Dictionary loaded", "name", lx.Name(), "entries", lx.Len(), "variants", lx.VariantCount())

	webFS, err := guaha.GetWebFS()
	if err != nil {
		slog.Error("Failed to load embedded web assets", "err", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Config{
		Lexicon:        lx,
		Addr:           *addr,
		WebFS:          webFS,
		ReloadInterval: *reloadInterval,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Signal received", "signal", sig.String())
		srv.Shutdown()
	case err := <-errChan:
		if err != nil {
			slog.Error("Server exited", "err", err)
			os.Exit(1)
		}
	}
}

// initLogger configures the process-wide slog default from GUAHA_LOG_FORMAT
// (text or json) and GUAHA_LOG_LEVEL (debug, info, warn, error).
func initLogger() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("GUAHA_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if strings.ToLower(os.Getenv("GUAHA_LOG_FORMAT")) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
