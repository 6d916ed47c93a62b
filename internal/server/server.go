package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tjflores/guaha/internal/lexicon"
)

// ReloadFunc returns a freshly loaded lexicon snapshot. The server calls it
// whenever the dictionary files change on disk or the reload ticker fires.
type ReloadFunc func() (*lexicon.Lexicon, error)

// Server serves a single lexicon over HTTP and WebSocket.
type Server struct {
	addr        string
	webFS       fs.FS
	rateLimiter *rateLimiter
	httpServer  *http.Server
	// logger is the structured logger for this server instance. It defaults
	// to slog.Default() in NewServer so that the global handler configured in
	// main.go (format, level) is inherited automatically, while still being
	// injectable in tests via a null-writer handler.
	logger *slog.Logger

	reloadFn       ReloadFunc
	reloadInterval time.Duration

	lexMu sync.RWMutex
	lex   *lexicon.Lexicon

	clientsMu sync.RWMutex
	// clients maps each WebSocket connection to its per-connection write mutex.
	// All writes to a conn (search results, broadcasts and pings) must hold the
	// per-conn mutex to satisfy gorilla/websocket's "one concurrent writer"
	// contract.
	clients map[*websocket.Conn]*sync.Mutex

	broadcast chan UpdateMessage

	// searchCache and renderCache are LRU caches bounded by cacheSize entries.
	// Keys are derived from queries against the live snapshot, so both caches
	// are cleared whenever the lexicon is reloaded.
	searchCache *LRUCache[[]lexicon.Match] // keyed by "n:strip:query"
	renderCache *LRUCache[string]          // keyed by headword

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	clientWg sync.WaitGroup // tracks clientReadPump/clientWritePump goroutines
}

// Config holds initialization parameters for a Server.
type Config struct {
	// Lexicon is the initial snapshot to serve. When nil the server starts
	// with an empty lexicon.
	Lexicon *lexicon.Lexicon

	// ReloadFn overrides how reloads fetch a fresh snapshot. When nil,
	// reloads re-read the lexicon's source files; lexicons without a source
	// path keep serving the initial snapshot.
	ReloadFn ReloadFunc

	// Addr is the listen address, e.g. ":8080".
	Addr string

	// WebFS holds the embedded web UI served at /.
	WebFS fs.FS

	// ReloadInterval adds a periodic reload on top of the file watcher,
	// catching edits the watcher cannot see (network mounts, atomic
	// directory swaps). Zero disables it.
	ReloadInterval time.Duration

	// CacheSize bounds each LRU cache. Values <= 0 fall back to the
	// GUAHA_CACHE_SIZE environment variable, then the package default.
	CacheSize int

	// Logger overrides slog.Default(), mainly for tests.
	Logger *slog.Logger
}

// NewServer constructs a Server ready to be started.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	// Allow operators to tune cache capacity via env var. Values that are
	// missing, zero, or negative fall back to the package default (500).
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		if raw := os.Getenv("GUAHA_CACHE_SIZE"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				cacheSize = n
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		addr:           cfg.Addr,
		webFS:          cfg.WebFS,
		rateLimiter:    newRateLimiter(100, 200, time.Second),
		logger:         cfg.Logger,
		reloadFn:       cfg.ReloadFn,
		reloadInterval: cfg.ReloadInterval,
		lex:            cfg.Lexicon,
		clients:        make(map[*websocket.Conn]*sync.Mutex),
		broadcast:      make(chan UpdateMessage, broadcastChannelSize),
		searchCache:    NewLRUCache[[]lexicon.Match](cacheSize),
		renderCache:    NewLRUCache[string](cacheSize),
		ctx:            ctx,
		cancel:         cancel,
	}

	if s.lex == nil {
		s.lex = lexicon.NewEmpty("empty")
	}
	if s.reloadFn == nil {
		s.reloadFn = s.defaultReload
	}

	return s
}

// defaultReload re-reads the dictionary files the current snapshot came from.
// In-memory lexicons have no source, so the current snapshot is returned
// unchanged.
func (s *Server) defaultReload() (*lexicon.Lexicon, error) {
	lx := s.Lexicon()
	if lx.Path() == "" {
		return lx, nil
	}
	return lexicon.Load(lx.Path(), lx.VariantsPath())
}

// Lexicon returns the current snapshot in a thread-safe manner.
func (s *Server) Lexicon() *lexicon.Lexicon {
	s.lexMu.RLock()
	lx := s.lex
	s.lexMu.RUnlock()
	return lx
}

// Start begins serving and blocks until the server exits or encounters a fatal error.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(s.webFS)))
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/lexicon", s.rateLimiter.middleware(s.handleLexicon))
	mux.HandleFunc("/api/search", s.rateLimiter.middleware(s.handleSearch))
	mux.HandleFunc("/api/entry/", s.rateLimiter.middleware(s.handleEntry))
	mux.HandleFunc("/api/complete", s.rateLimiter.middleware(s.handleComplete))
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Addr:        s.addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// WriteTimeout is intentionally 0: WebSocket connections are long-lived
		// and hijacked from net/http, so the HTTP-level write deadline does not
		// apply to them. Per-message write deadlines are enforced in websocket.go
		// via conn.SetWriteDeadline.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	s.wg.Add(1)
	go s.handleBroadcast()

	if s.Lexicon().Path() != "" {
		// Reserve the WaitGroup slot for the watchLoop goroutine here, before
		// the outer goroutine starts, so s.wg.Add cannot race with s.wg.Wait
		// in Shutdown.
		s.wg.Add(1)
		go func() {
			if err := s.startWatcher(); err != nil {
				s.logger.Error("Failed to start file watcher", "err", err)
				s.wg.Done() // watchLoop never started; release the reserved slot
			}
		}()
	}

	if s.reloadInterval > 0 {
		s.startReloadTicker()
	}

	s.logger.Info("guaha server starting", "addr", "http://"+s.addr, "entries", s.Lexicon().Len())
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server: drains in-flight HTTP requests, stops background
// goroutines, and closes WebSocket connections after a close frame. Safe to
// call more than once.
func (s *Server) Shutdown() {
	s.logger.Info("Server shutting down")

	// Gracefully drain in-flight HTTP requests before stopping goroutines.
	if s.httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("HTTP server shutdown error", "err", err)
		}
	}

	s.cancel()
	s.rateLimiter.Close()

	s.wg.Wait()

	// Send close frames so well-behaved clients see a clean goodbye instead
	// of a dropped TCP connection.
	s.clientsMu.RLock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.clientsMu.RUnlock()

	if len(conns) > 0 {
		s.logger.Info("Closing WebSocket connections", "count", len(conns))
		closeMsg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		deadline := time.Now().Add(1 * time.Second)
		for _, conn := range conns {
			//nolint:errcheck // best effort; the connection is force-closed below
			conn.WriteControl(websocket.CloseMessage, closeMsg, deadline)
		}

		// Brief grace period for clients to acknowledge the close frame.
		time.Sleep(500 * time.Millisecond)
	}

	s.clientsMu.Lock()
	for conn := range s.clients {
		if err := conn.Close(); err != nil {
			s.logger.Error("Failed to close client connection", "err", err)
		}
	}
	s.clients = make(map[*websocket.Conn]*sync.Mutex)
	s.clientsMu.Unlock()

	// Pump goroutines exit once their connections close.
	s.clientWg.Wait()

	s.logger.Info("Server shutdown complete")
}
