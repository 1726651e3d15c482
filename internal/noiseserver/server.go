// Package noiseserver exposes noise streams over WebSocket for
// visualisation clients. Each connection gets its own stream seeded from
// query parameters and receives one sample frame per tick. The tick clock is
// injected so tests can drive time.
package noiseserver

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/wildgrid/noisekit/noise"
)

// Frame is one emitted sample: the cursor position it was drawn at, the raw
// noise word, and its [0,1) mapping.
type Frame struct {
	Position int32   `json:"position"`
	Value    uint32  `json:"value"`
	Unit     float64 `json:"unit"`
}

// Server streams noise samples to WebSocket clients.
type Server struct {
	addr     string
	interval time.Duration
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock
	ctx      context.Context
	cancel   context.CancelFunc

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// New creates a server. The interval paces sample emission per connection.
func New(addr string, interval time.Duration, logger *log.Logger, clock quartz.Clock) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:     addr,
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("noiseserver"),
		clock:  clock,
		ctx:    ctx,
		cancel: cancel,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the HTTP handler serving /ws and /health. Exposed
// separately from Start so tests can mount it on httptest servers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start serves until the listener fails.
func (s *Server) Start() error {
	s.logger.Info("Starting sample stream server", "addr", s.addr, "interval", s.interval)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Stop cancels all connection loops and closes open connections.
func (s *Server) Stop() {
	s.cancel()
	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	seed, position, err := streamParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("Client connected", "seed", seed, "position", position, "total", total)

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("Client disconnected", "seed", seed)
	}()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	// Read pump: discard client messages, cancel the stream on close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	stream := noise.NewStream(seed, position)

	// First frame goes out immediately; the ticker paces the rest.
	if err := s.writeFrame(conn, stream); err != nil {
		return
	}

	waiter := s.clock.TickerFunc(ctx, s.interval, func() error {
		return s.writeFrame(conn, stream)
	}, "stream")
	if err := waiter.Wait(); err != nil && ctx.Err() == nil {
		s.logger.Debug("Stream ended", "seed", seed, "error", err)
	}
}

func (s *Server) writeFrame(conn *websocket.Conn, stream *noise.Stream) error {
	pos := stream.Position()
	word := stream.NextUint32()
	return conn.WriteJSON(Frame{
		Position: pos,
		Value:    word,
		Unit:     float64(word) / (1 << 32),
	})
}

func streamParams(r *http.Request) (uint32, int32, error) {
	q := r.URL.Query()

	seed := uint64(noise.DefaultSeed)
	if raw := q.Get("seed"); raw != "" {
		var err error
		seed, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return 0, 0, err
		}
	}

	var position int64
	if raw := q.Get("position"); raw != "" {
		var err error
		position, err = strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return 0, 0, err
		}
	}

	return uint32(seed), int32(position), nil
}
