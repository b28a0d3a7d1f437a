package printer

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"git.cotugno.family/kevin/stencil/exhibit"
)

const (
	KeyFrame   = "key"
	DeltaFrame = "delta"

	clientBuffer = 16
)

// Frame is the JSON message sent to stream clients. A key frame carries the
// whole matrix in Rows, a delta frame only the Cells that changed since the
// previous frame.
type Frame struct {
	Sequence int64        `json:"sequence"`
	Type     string       `json:"type"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Rows     []string     `json:"rows,omitempty"`
	Cells    []CellUpdate `json:"cells,omitempty"`
}

type CellUpdate struct {
	X     int16  `json:"x"`
	Y     int16  `json:"y"`
	Value string `json:"value"`
}

type client struct {
	conn *websocket.Conn
	send chan Frame

	// stale is set when a frame was dropped; the client needs a key frame.
	stale bool
}

// Streamer pushes published frames to websocket clients. Publish never
// blocks on a slow client: frames that do not fit the client's buffer are
// dropped and the client is resynchronised with a key frame.
type Streamer struct {
	upgrader websocket.Upgrader

	lock     sync.Mutex
	clients  map[*client]struct{}
	current  [][]rune
	sequence int64
	closed   bool
}

func NewStreamer() *Streamer {
	return &Streamer{
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 4096},
		clients:  make(map[*client]struct{}),
	}
}

func (s *Streamer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		exhibit.Logger().Debug("stream upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c := &client{conn: conn, send: make(chan Frame, clientBuffer)}

	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		conn.Close()
		return
	}
	s.clients[c] = struct{}{}
	if s.current != nil {
		c.send <- s.keyFrame()
	}
	s.lock.Unlock()

	exhibit.Logger().Debug("stream client connected", "remote", r.RemoteAddr)

	go s.write(c)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.remove(c)
	exhibit.Logger().Debug("stream client gone", "remote", r.RemoteAddr)
}

// Publish sends matrix to every connected client.
func (s *Streamer) Publish(matrix [][]rune) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return
	}

	prev := s.current
	s.current = clone(matrix)
	s.sequence++

	key := s.keyFrame()
	delta := key
	if prev != nil && sameSize(prev, s.current) {
		delta = Frame{
			Sequence: s.sequence,
			Type:     DeltaFrame,
			Width:    key.Width,
			Height:   key.Height,
			Cells:    updates(exhibit.Diff(prev, s.current)),
		}
	}

	for c := range s.clients {
		f := delta
		if c.stale {
			f = key
		}

		select {
		case c.send <- f:
			c.stale = false
		default:
			c.stale = true
			exhibit.Logger().Debug("stream frame dropped", "sequence", s.sequence)
		}
	}
}

// Close disconnects every client and rejects new ones.
func (s *Streamer) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.closed = true
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
}

func (s *Streamer) write(c *client) {
	for f := range c.send {
		if err := c.conn.WriteJSON(f); err != nil {
			c.conn.Close()
			return
		}
	}

	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

func (s *Streamer) remove(c *client) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
}

func (s *Streamer) keyFrame() Frame {
	f := Frame{
		Sequence: s.sequence,
		Type:     KeyFrame,
		Height:   len(s.current),
		Rows:     Lines(s.current),
	}
	if len(s.current) > 0 {
		f.Width = len(s.current[0])
	}

	return f
}

func clone(matrix [][]rune) [][]rune {
	c := make([][]rune, len(matrix))

	for i, row := range matrix {
		c[i] = append([]rune(nil), row...)
	}

	return c
}

func sameSize(a, b [][]rune) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
	}

	return true
}

func updates(cells []exhibit.Cell) []CellUpdate {
	u := make([]CellUpdate, len(cells))

	for i, c := range cells {
		u[i] = CellUpdate{X: c.Pos.X, Y: c.Pos.Y, Value: string(c.Value)}
	}

	return u
}
