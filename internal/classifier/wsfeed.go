package classifier

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// FeedServer accepts WebSocket connections from a browser-side pose
// classifier at /feed and exposes the incoming readings as a Source.
//
// The readings channel holds only the most recent reading: a slow consumer
// sees the latest classification, never a backlog of stale ones.
type FeedServer struct {
	addr     string
	gate     Gate
	logger   *log.Logger
	readings chan Reading
	server   *http.Server
	upgrader websocket.Upgrader
}

// NewFeedServer creates a feed server listening on addr. Readings below
// minConfidence are dropped.
func NewFeedServer(addr string, minConfidence float64) *FeedServer {
	s := &FeedServer{
		addr: addr,
		gate: Gate{MinConfidence: minConfidence},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pose-feed",
		}),
		readings: make(chan Reading, 1),
		upgrader: websocket.Upgrader{
			// The classifier page is served from anywhere; the feed carries
			// no secrets.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", s.handleFeed)
	s.server = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start begins serving in the background.
func (s *FeedServer) Start() {
	s.logger.Info("listening for pose feed", "address", s.addr)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("feed server error", "error", err)
		}
	}()
}

// Readings implements Source.
func (s *FeedServer) Readings() <-chan Reading {
	return s.readings
}

// Close shuts the server down. The readings channel is left open; consumers
// simply stop receiving.
func (s *FeedServer) Close() error {
	return s.server.Close()
}

// handleFeed upgrades the connection and pumps readings into the channel.
func (s *FeedServer) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	s.logger.Info("classifier connected", "remote", conn.RemoteAddr().String())

	go s.readPump(conn)
}

func (s *FeedServer) readPump(conn *websocket.Conn) {
	defer func() {
		conn.Close()
		s.logger.Info("classifier disconnected", "remote", conn.RemoteAddr().String())
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	go func() {
		for range ping.C {
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("read error", "error", err)
			}
			return
		}

		var reading Reading
		if err := json.Unmarshal(message, &reading); err != nil {
			s.logger.Warn("unparseable reading", "error", err)
			continue
		}
		if !s.gate.Accept(reading) {
			continue
		}
		s.publish(reading)
	}
}

// publish replaces whatever reading is pending: latest wins.
func (s *FeedServer) publish(r Reading) {
	for {
		select {
		case s.readings <- r:
			return
		default:
			select {
			case <-s.readings:
			default:
			}
		}
	}
}
