package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	// maxMessageSize must fit a search frame whose query is maxQueryRunes
	// runes of worst-case UTF-8, plus the JSON envelope.
	maxMessageSize = 2048
)

// CheckOrigin allows all origins; guaha is designed for local use only.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed", "err", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Error("Failed to set read deadline", "addr", conn.RemoteAddr(), "err", err)
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	s.logger.Info("WebSocket client connected", "addr", conn.RemoteAddr())

	// Send initial state before registering for broadcasts to prevent a race
	// where a broadcast arrives before the client knows its baseline state.
	s.sendInitialState(conn)

	writeMu := &sync.Mutex{}

	s.clientsMu.Lock()
	s.clients[conn] = writeMu
	clientCount := len(s.clients)
	s.clientsMu.Unlock()

	s.logger.Info("WebSocket client registered", "addr", conn.RemoteAddr(), "totalClients", clientCount)

	done := make(chan struct{})
	s.clientWg.Add(2)
	go s.clientReadPump(conn, done, writeMu)
	go s.clientWritePump(conn, done, writeMu)
}

func (s *Server) sendInitialState(conn *websocket.Conn) {
	message := UpdateMessage{
		Type:  "snapshot",
		Stats: buildLexiconStats(s.Lexicon()),
	}

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		s.logger.Error("Failed to set write deadline", "addr", conn.RemoteAddr(), "err", err)
		return
	}
	if err := conn.WriteJSON(message); err != nil {
		s.logger.Error("Failed to send initial state", "addr", conn.RemoteAddr(), "err", err)
		return
	}

	s.logger.Info("Initial state sent", "addr", conn.RemoteAddr())
}

// clientReadPump reads frames until the client disconnects, then closes the
// done channel to signal clientWritePump to stop. Frames carrying a search
// request are answered on this goroutine; anything else is ignored.
func (s *Server) clientReadPump(conn *websocket.Conn, done chan struct{}, writeMu *sync.Mutex) {
	defer s.clientWg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Recovered panic in clientReadPump", "addr", conn.RemoteAddr(), "panic", r)
		}
		close(done)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Error("WebSocket read error", "addr", conn.RemoteAddr(), "err", err)
			}
			return
		}

		var req searchRequest
		if err := json.Unmarshal(data, &req); err != nil || req.Type != "search" {
			s.logger.Debug("Ignoring unrecognized frame", "addr", conn.RemoteAddr())
			continue
		}
		if err := validateQuery(req.Query); err != nil {
			s.logger.Debug("Rejecting search frame", "addr", conn.RemoteAddr(), "err", err)
			continue
		}

		response := searchResponse{
			Type:    "results",
			ID:      req.ID,
			Query:   req.Query,
			Matches: s.searchCurrent(req.Query, clampResultCount(req.N), req.Strip),
		}

		writeMu.Lock()
		err1 := conn.SetWriteDeadline(time.Now().Add(writeWait))
		var err2 error
		if err1 == nil {
			err2 = conn.WriteJSON(response)
		}
		writeMu.Unlock()

		if err1 != nil {
			s.logger.Error("Failed to set write deadline", "addr", conn.RemoteAddr(), "err", err1)
			return
		}
		if err2 != nil {
			s.logger.Error("Failed to send search results", "addr", conn.RemoteAddr(), "err", err2)
			return
		}
	}
}

// clientWritePump sends keepalive pings. writeMu serializes writes with
// broadcasts and search responses.
func (s *Server) clientWritePump(conn *websocket.Conn, done chan struct{}, writeMu *sync.Mutex) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer s.clientWg.Done()
	defer s.removeClient(conn)

	for {
		select {
		case <-done:
			s.logger.Info("WebSocket client disconnected", "addr", conn.RemoteAddr())
			return

		case <-ticker.C:
			writeMu.Lock()
			err1 := conn.SetWriteDeadline(time.Now().Add(writeWait))
			var err2 error
			if err1 == nil {
				err2 = conn.WriteMessage(websocket.PingMessage, nil)
			}
			writeMu.Unlock()

			if err1 != nil {
				s.logger.Error("Failed to set write deadline", "addr", conn.RemoteAddr(), "err", err1)
			}
			if err2 != nil {
				s.logger.Error("WebSocket ping failed", "addr", conn.RemoteAddr(), "err", err2)
				return
			}
		}
	}
}

func (s *Server) removeClient(conn *websocket.Conn) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		if err := conn.Close(); err != nil {
			s.logger.Error("Failed to close connection", "addr", conn.RemoteAddr(), "err", err)
		}
		s.logger.Info("WebSocket client removed", "totalClients", len(s.clients))
	}
}
