package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	diag "github.com/coreman2200/funtimes-cracktro/internal/diagnostics"
	"github.com/coreman2200/funtimes-cracktro/internal/render"
)

// State mirrors the demo's frame stream to websocket clients so a frame
// can be eyeballed remotely while the terminal is busy drawing it.
type State struct {
	mu    sync.RWMutex
	fps   int
	scene string

	vp        render.Viewport
	frameID   uint64
	startTime time.Time

	clients     map[*websocket.Conn]bool
	diagClients map[*websocket.Conn]bool
}

func NewState(fps int, scene string) *State {
	return &State{
		fps:         fps,
		scene:       scene,
		startTime:   time.Now(),
		clients:     map[*websocket.Conn]bool{},
		diagClients: map[*websocket.Conn]bool{},
	}
}

// Broadcast pushes one rendered frame to every connected client.
func (s *State) Broadcast(frame []byte, vp render.Viewport) {
	s.mu.Lock()
	s.vp = vp
	s.frameID++
	id := s.frameID
	s.mu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()
	type wireFrame struct {
		T       int64  `json:"t"`
		FrameID uint64 `json:"frame_id"`
		Cols    int    `json:"cols"`
		Rows    int    `json:"rows"`
		Data    []byte `json:"data"` // raw frame, escapes included
	}
	b, _ := json.Marshal(wireFrame{T: time.Now().UnixNano(), FrameID: id, Cols: vp.Cols, Rows: vp.Rows, Data: frame})
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}

func (s *State) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	// Topology goes out before the conn joins the broadcast set; a frame
	// broadcast may not write to the same conn concurrently.
	s.sendTopology(conn)
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.PushDiag(diag.Diagnostic{Severity: diag.Info, Code: "CLIENT.JOIN", Summary: "Preview client connected"})

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *State) HandleDiagWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.diagClients[conn] = true
	s.mu.Unlock()
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.diagClients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := map[string]any{
		"frame_id": s.frameID,
		"uptime_s": time.Since(s.startTime).Seconds(),
		"fps":      s.fps,
		"scene":    s.scene,
		"cols":     s.vp.Cols,
		"rows":     s.vp.Rows,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *State) sendTopology(conn *websocket.Conn) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	top := map[string]any{
		"cols":  s.vp.Cols,
		"rows":  s.vp.Rows,
		"fps":   s.fps,
		"scene": s.scene,
	}
	b, _ := json.Marshal(top)
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

// PushDiag fans a diagnostic out to the diag channel clients.
func (s *State) PushDiag(d diag.Diagnostic) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, _ := json.Marshal(d)
	for c := range s.diagClients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		_ = c.WriteMessage(websocket.TextMessage, b)
	}
}
