//go:build !tinygo

package hal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// StreamFrame is one LED snapshot sent to stream viewers.
type StreamFrame struct {
	Seq  uint64   `json:"seq"`
	Rows []string `json:"rows"`
}

func encodeFrame(seq uint64, grid [GridSize][GridSize]bool) StreamFrame {
	f := StreamFrame{Seq: seq, Rows: make([]string, GridSize)}
	var row [GridSize]byte
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			row[x] = '0'
			if grid[y][x] {
				row[x] = '1'
			}
		}
		f.Rows[y] = string(row[:])
	}
	return f
}

// streamServer pushes the latched LED image to websocket clients on /ws.
type streamServer struct {
	latch *frameLatch
	hz    int
	log   Logger

	upgrader websocket.Upgrader
}

func newStreamServer(latch *frameLatch, hz int, log Logger) *streamServer {
	if hz <= 0 {
		hz = 30
	}
	return &streamServer{
		latch: latch,
		hz:    hz,
		log:   log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *streamServer) serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	s.log.WriteLineString("stream: listening on " + addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *streamServer) handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Viewers never send; reading only notices the close.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		t := time.NewTicker(time.Second / time.Duration(s.hz))
		defer t.Stop()

		var last uint64
		var sent bool
		for {
			seq, grid := s.latch.Snapshot()
			if !sent || seq != last {
				b, err := json.Marshal(encodeFrame(seq, grid))
				if err != nil {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					return
				}
				last, sent = seq, true
			}
			select {
			case <-closed:
				return
			case <-r.Context().Done():
				return
			case <-t.C:
			}
		}
	}
}
