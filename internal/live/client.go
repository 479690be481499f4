package live

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/teamfight/internal/metrics"
)

const writeTimeout = 10 * time.Second

// client is one browser connection. Frames are coalesced: a slow browser
// only ever receives the newest one.
type client struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	pending *Frame
	latest  uint64
	wake    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newClient(conn *websocket.Conn, logger *slog.Logger, m *metrics.Metrics) *client {
	return &client{
		conn:    conn,
		logger:  logger,
		metrics: m,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// push replaces the pending frame with f. Frames no newer than the last one
// accepted are ignored.
func (c *client) push(f Frame) {
	c.mu.Lock()
	if f.Seq <= c.latest {
		c.mu.Unlock()
		return
	}
	c.latest = f.Seq
	c.pending = &f
	c.mu.Unlock()
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// writeLoop sends pending frames until the client is closed.
func (c *client) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case <-c.wake:
		}

		c.mu.Lock()
		f := c.pending
		c.pending = nil
		c.mu.Unlock()
		if f == nil {
			continue
		}

		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteJSON(f); err != nil {
			c.logger.Warn("write failed", "seq", f.Seq, "error", err)
			c.close(websocket.CloseInternalServerErr, "write failed")
			return
		}
		c.metrics.FrameSent()
	}
}

// close sends a close frame and closes the connection. Only the first call
// has an effect.
func (c *client) close(code int, reason string) {
	c.once.Do(func() {
		close(c.done)
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(code, reason),
			time.Now().Add(time.Second))
		c.conn.Close()
	})
}
