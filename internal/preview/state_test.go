package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/coreman2200/funtimes-cracktro/internal/render"
)

func TestHandleHealth(t *testing.T) {
	s := NewState(10, "logo")
	s.Broadcast([]byte("frame"), render.Viewport{Cols: 80, Rows: 24})

	rec := httptest.NewRecorder()
	s.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["frame_id"].(float64) != 1 {
		t.Fatalf("frame_id = %v, want 1", resp["frame_id"])
	}
	if resp["cols"].(float64) != 80 || resp["rows"].(float64) != 24 {
		t.Fatalf("geometry = %vx%v, want 80x24", resp["cols"], resp["rows"])
	}
	if resp["scene"].(string) != "logo" {
		t.Fatalf("scene = %v", resp["scene"])
	}
}

func TestFramesWSReceivesTopologyThenFrames(t *testing.T) {
	s := NewState(10, "logo")
	srv := httptest.NewServer(http.HandlerFunc(s.HandleFramesWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// First message is the topology snapshot.
	var top map[string]any
	if err := conn.ReadJSON(&top); err != nil {
		t.Fatalf("read topology: %v", err)
	}
	if top["fps"].(float64) != 10 {
		t.Fatalf("topology fps = %v", top["fps"])
	}

	s.Broadcast([]byte("\x1b[Hhello"), render.Viewport{Cols: 5, Rows: 2})

	var frame struct {
		FrameID uint64 `json:"frame_id"`
		Cols    int    `json:"cols"`
		Rows    int    `json:"rows"`
		Data    []byte `json:"data"`
	}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if frame.FrameID != 1 || frame.Cols != 5 || frame.Rows != 2 {
		t.Fatalf("unexpected frame header: %+v", frame)
	}
	if string(frame.Data) != "\x1b[Hhello" {
		t.Fatalf("unexpected frame data %q", frame.Data)
	}
}

func TestTopologyPrecedesFramesUnderBroadcastLoad(t *testing.T) {
	s := NewState(10, "logo")
	srv := httptest.NewServer(http.HandlerFunc(s.HandleFramesWS))
	defer srv.Close()

	// Hammer broadcasts while clients join; the topology snapshot must
	// still be the first message every client sees, and it must never
	// interleave with a concurrent frame write on the same conn.
	stop := make(chan struct{})
	broadcastDone := make(chan struct{})
	go func() {
		defer close(broadcastDone)
		for {
			select {
			case <-stop:
				return
			default:
				s.Broadcast([]byte("frame"), render.Viewport{Cols: 80, Rows: 24})
			}
		}
	}()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	for i := 0; i < 5; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial %d: %v", i, err)
		}
		var first map[string]any
		if err := conn.ReadJSON(&first); err != nil {
			t.Fatalf("read first message %d: %v", i, err)
		}
		if _, isFrame := first["frame_id"]; isFrame {
			t.Fatalf("client %d saw a frame before the topology snapshot: %v", i, first)
		}
		if first["fps"].(float64) != 10 {
			t.Fatalf("client %d topology fps = %v", i, first["fps"])
		}
		conn.Close()
	}
	close(stop)
	<-broadcastDone
}
