// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview serves a live mirror of a designer session: websocket
// clients receive the full schema tree on connect and again after every
// structural change, and a watcher can reload the schema when the backing
// file is edited outside the designer. The engine itself does no network
// I/O; this package consumes the designer's change callback like any
// other host application.
package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pagecraft/pagecraft/designer"
	"github.com/pagecraft/pagecraft/schema"
)

// Server mirrors one designer session to any number of websocket clients.
type Server struct {
	des      *designer.Designer
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]*client
}

// client pairs a connection with the write mutex serializing it.
// At most one goroutine may write to a gorilla conn at a time, and the
// connect-time send and any number of broadcasts run on different ones.
type client struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

// NewServer returns a preview server for the given session. Pass
// [Server.Broadcast] to [designer.WithOnChange] (or call it from your own
// change callback) to push edits to connected clients.
func NewServer(d *designer.Designer) *Server {
	return &Server{
		des:     d,
		clients: map[*websocket.Conn]*client{},
	}
}

// Handler returns the HTTP handler: GET /schema serves the current tree
// as JSON, and /ws upgrades to the websocket mirror.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/schema", s.serveSchema)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// ListenAndServe runs the preview server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	slog.Info("preview: listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) serveSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := schema.WriteJSON(s.des.Schema(), w); err != nil {
		slog.Error("preview: writing schema", "err", err)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("preview: websocket upgrade", "err", err)
		return
	}
	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[conn] = c
	s.mu.Unlock()
	slog.Debug("preview: client connected", "remote", conn.RemoteAddr())

	if err := s.send(c, s.des.Schema()); err != nil {
		s.drop(conn)
		return
	}
	// the mirror is one-way; reads only serve to detect the close
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// Broadcast pushes the given tree to every connected client. It is safe
// to call from any number of goroutines; writes to each connection are
// serialized. Clients whose connection errors are dropped.
func (s *Server) Broadcast(root *schema.Node) {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()
	for _, c := range clients {
		if err := s.send(c, root); err != nil {
			s.drop(c.conn)
		}
	}
}

func (s *Server) send(c *client, root *schema.Node) error {
	b, err := json.Marshal(root)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// NumClients returns the number of connected clients.
func (s *Server) NumClients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
